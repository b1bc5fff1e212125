package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgersim/ledgersim/internal/id"
	"github.com/ledgersim/ledgersim/internal/ledger"
)

// Action is what a batch row asks for.
type Action string

const (
	ActionCustomer   Action = "customer"
	ActionAccount    Action = "account"
	ActionDeposit    Action = "deposit"
	ActionWithdrawal Action = "withdrawal"
)

// Header is the CSV header for batch files.
const Header = "action,tax_id,account,amount,name,birth_date,address"

const (
	numFields    = 7
	colAction    = 0
	colTaxID     = 1
	colAccount   = 2
	colAmount    = 3
	colName      = 4
	colBirthDate = 5
	colAddress   = 6
)

// Request is one parsed batch row.
type Request struct {
	Line      int
	Action    Action
	TaxID     string
	Account   int // 0 = customer's first account
	Amount    decimal.Decimal
	Name      string
	BirthDate string
	Address   string
}

// ReadRequests parses a batch CSV. The header row is required; lines
// starting with '#' are skipped.
func ReadRequests(r io.Reader) ([]Request, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading batch header: %w", err)
	}

	var reqs []Request
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading batch CSV: %w", err)
		}
		line, _ := cr.FieldPos(0)

		req, err := UnmarshalRequest(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		req.Line = line
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// UnmarshalRequest converts a CSV row to a Request.
func UnmarshalRequest(record []string) (Request, error) {
	if len(record) != numFields {
		return Request{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	action, err := parseAction(record[colAction])
	if err != nil {
		return Request{}, err
	}

	req := Request{
		Action:    action,
		TaxID:     strings.TrimSpace(record[colTaxID]),
		Name:      strings.TrimSpace(record[colName]),
		BirthDate: strings.TrimSpace(record[colBirthDate]),
		Address:   strings.TrimSpace(record[colAddress]),
	}
	if req.TaxID == "" {
		return Request{}, errors.New("tax_id is required")
	}

	if s := strings.TrimSpace(record[colAccount]); s != "" {
		req.Account, err = id.ParseAccountNumber(s)
		if err != nil {
			return Request{}, err
		}
	}

	if action == ActionDeposit || action == ActionWithdrawal {
		// Non-positive amounts parse fine; the ledger rejects them.
		req.Amount, err = ledger.ParseAmount(record[colAmount])
		if err != nil {
			return Request{}, err
		}
	}
	return req, nil
}

func parseAction(s string) (Action, error) {
	switch a := Action(strings.ToLower(strings.TrimSpace(s))); a {
	case ActionCustomer, ActionAccount, ActionDeposit, ActionWithdrawal:
		return a, nil
	case "withdraw":
		return ActionWithdrawal, nil
	default:
		return "", fmt.Errorf("unknown action %q", s)
	}
}
