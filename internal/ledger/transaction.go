package ledger

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind tags a transaction as a deposit or a withdrawal.
type Kind string

const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
)

// Label returns the display name used on statements.
func (k Kind) Label() string {
	switch k {
	case KindDeposit:
		return "Deposit"
	case KindWithdrawal:
		return "Withdrawal"
	default:
		return string(k)
	}
}

// ParseKind accepts a kind tag or its one-letter menu shortcut, ignoring case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deposit", "d":
		return KindDeposit, nil
	case "withdrawal", "w":
		return KindWithdrawal, nil
	}
	return "", fmt.Errorf("unknown transaction kind %q", s)
}

// Transaction is a request to move money into or out of an account.
// It is immutable once constructed.
type Transaction struct {
	id     uuid.UUID
	kind   Kind
	amount decimal.Decimal
}

// NewDeposit returns a deposit of amount. amount must be positive.
func NewDeposit(amount decimal.Decimal) (Transaction, error) {
	return newTransaction(KindDeposit, amount)
}

// NewWithdrawal returns a withdrawal of amount. amount must be positive.
func NewWithdrawal(amount decimal.Decimal) (Transaction, error) {
	return newTransaction(KindWithdrawal, amount)
}

// NewTransaction builds a transaction of the given kind.
func NewTransaction(kind Kind, amount decimal.Decimal) (Transaction, error) {
	if kind != KindDeposit && kind != KindWithdrawal {
		return Transaction{}, fmt.Errorf("unknown transaction kind %q", kind)
	}
	return newTransaction(kind, amount)
}

func newTransaction(kind Kind, amount decimal.Decimal) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, fmt.Errorf("%s of %s: %w", kind, amount.StringFixed(2), ErrInvalidAmount)
	}
	return Transaction{id: uuid.New(), kind: kind, amount: amount}, nil
}

func (t Transaction) ID() uuid.UUID           { return t.id }
func (t Transaction) Kind() Kind              { return t.kind }
func (t Transaction) Amount() decimal.Decimal { return t.amount }

// Apply performs the transaction against acct using the account's own
// deposit/withdraw rules. It does not touch the account's history.
func (t Transaction) Apply(acct Account) error {
	switch t.kind {
	case KindDeposit:
		return acct.Deposit(t.amount)
	case KindWithdrawal:
		return acct.Withdraw(t.amount)
	default:
		// Zero-value Transaction.
		return ErrInvalidAmount
	}
}
