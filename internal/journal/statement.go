package journal

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgersim/ledgersim/internal/ledger"
)

// Line is one movement on a statement.
type Line struct {
	Date          time.Time
	Kind          ledger.Kind
	Amount        decimal.Decimal
	TransactionID string
}

// Statement is a read-only view of an account's history and balance.
type Statement struct {
	Branch     string
	Number     int
	OwnerTaxID string
	Lines      []Line
	Balance    decimal.Decimal
}

// BuildStatement renders acct's history in insertion order.
func BuildStatement(acct ledger.Account) Statement {
	movements := acct.History().Movements()
	lines := make([]Line, 0, len(movements))
	for _, m := range movements {
		lines = append(lines, Line{
			Date:          m.RecordedAt,
			Kind:          m.Kind(),
			Amount:        m.Amount(),
			TransactionID: m.Transaction.ID().String(),
		})
	}
	return Statement{
		Branch:     acct.Branch(),
		Number:     acct.Number(),
		OwnerTaxID: acct.OwnerTaxID(),
		Lines:      lines,
		Balance:    acct.Balance(),
	}
}

// Empty reports the "no movements" state.
func (s Statement) Empty() bool {
	return len(s.Lines) == 0
}
