package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ledgersim/ledgersim/internal/id"
	"github.com/ledgersim/ledgersim/internal/ledger"
)

// Header is the CSV header for statement files.
const Header = "date,kind,amount,transaction_id"

const (
	numFields  = 4
	dateFormat = time.RFC3339
	colDate    = 0
	colKind    = 1
	colAmount  = 2
	colTxID    = 3
)

// WriteStatement writes the statement lines (including header) as CSV.
func WriteStatement(w io.Writer, st Statement) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, line := range st.Lines {
		if err := cw.Write(MarshalLine(line)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalLine converts a Line to a CSV row ([]string).
func MarshalLine(line Line) []string {
	row := make([]string, numFields)
	row[colDate] = line.Date.Format(dateFormat)
	row[colKind] = string(line.Kind)
	row[colAmount] = line.Amount.StringFixed(2)
	row[colTxID] = line.TransactionID
	return row
}

// StatementFileName returns the file name used for an account's statement.
func StatementFileName(number int) string {
	return "statement-" + id.FormatAccountNumber(number) + ".csv"
}

// ExportStatements writes one statement CSV per account into dir and returns
// the written paths.
func ExportStatements(dir string, accts []ledger.Account) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating statements dir: %w", err)
	}

	paths := make([]string, 0, len(accts))
	for _, acct := range accts {
		path := filepath.Join(dir, StatementFileName(acct.Number()))
		if err := writeStatementFile(path, BuildStatement(acct)); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeStatementFile(path string, st Statement) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating statement %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteStatement(f, st); err != nil {
		return fmt.Errorf("writing statement %s: %w", path, err)
	}
	return nil
}
