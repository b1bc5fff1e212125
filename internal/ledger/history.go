package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement is one recorded line of an account history.
type Movement struct {
	Transaction Transaction
	RecordedAt  time.Time
}

func (m Movement) Kind() Kind              { return m.Transaction.Kind() }
func (m Movement) Amount() decimal.Decimal { return m.Transaction.Amount() }

// History is the append-only log of transactions applied to one account.
type History struct {
	movements []Movement
	now       func() time.Time
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{now: time.Now}
}

// Append records tx at the end of the log. The caller guarantees tx has
// already been applied successfully.
func (h *History) Append(tx Transaction) {
	h.movements = append(h.movements, Movement{Transaction: tx, RecordedAt: h.now()})
}

// Movements returns the log in insertion order. An empty history returns an
// empty, non-nil slice.
func (h *History) Movements() []Movement {
	out := make([]Movement, len(h.movements))
	copy(out, h.movements)
	return out
}

// Len returns the number of recorded transactions.
func (h *History) Len() int { return len(h.movements) }

// Empty reports whether no movements have been recorded.
func (h *History) Empty() bool { return len(h.movements) == 0 }

// Totals sums the recorded deposits and withdrawals.
func (h *History) Totals() (deposits, withdrawals decimal.Decimal) {
	deposits, withdrawals = decimal.Zero, decimal.Zero
	for _, m := range h.movements {
		switch m.Kind() {
		case KindDeposit:
			deposits = deposits.Add(m.Amount())
		case KindWithdrawal:
			withdrawals = withdrawals.Add(m.Amount())
		}
	}
	return deposits, withdrawals
}

// Count returns how many movements of kind were recorded.
func (h *History) Count(kind Kind) int {
	n := 0
	for _, m := range h.movements {
		if m.Kind() == kind {
			n++
		}
	}
	return n
}
