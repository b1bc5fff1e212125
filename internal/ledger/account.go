package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultBranch is the branch code given to accounts opened without one.
const DefaultBranch = "0001"

// Account is the behavior shared by every account type.
//
// Deposit and Withdraw are the only ways to change a balance. Callers outside
// this package should go through Customer.PerformTransaction so the history
// stays in step with the balance.
type Account interface {
	Number() int
	Branch() string
	OwnerTaxID() string
	Balance() decimal.Decimal
	History() *History
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
}

// BaseAccount implements the plain deposit/withdraw rules.
type BaseAccount struct {
	number  int
	branch  string
	owner   string // tax id of the owning customer
	balance decimal.Decimal
	history *History
}

// NewAccount opens an account with a zero balance for the customer identified
// by ownerTaxID. An empty branch falls back to DefaultBranch.
func NewAccount(number int, ownerTaxID, branch string) *BaseAccount {
	if branch == "" {
		branch = DefaultBranch
	}
	return &BaseAccount{
		number:  number,
		branch:  branch,
		owner:   ownerTaxID,
		balance: decimal.Zero,
		history: NewHistory(),
	}
}

func (a *BaseAccount) Number() int              { return a.number }
func (a *BaseAccount) Branch() string           { return a.branch }
func (a *BaseAccount) OwnerTaxID() string       { return a.owner }
func (a *BaseAccount) Balance() decimal.Decimal { return a.balance }
func (a *BaseAccount) History() *History        { return a.history }

// Deposit adds amount to the balance. amount must be positive.
func (a *BaseAccount) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("deposit of %s: %w", amount.StringFixed(2), ErrInvalidAmount)
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw subtracts amount from the balance. amount must be positive and no
// greater than the current balance.
func (a *BaseAccount) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("withdrawal of %s: %w", amount.StringFixed(2), ErrInvalidAmount)
	}
	if amount.GreaterThan(a.balance) {
		return fmt.Errorf("withdrawal of %s with balance %s: %w",
			amount.StringFixed(2), a.balance.StringFixed(2), ErrInsufficientFunds)
	}
	a.balance = a.balance.Sub(amount)
	return nil
}
