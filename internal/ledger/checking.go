package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Checking account defaults.
var DefaultLimit = decimal.NewFromInt(500)

const DefaultMaxWithdrawals = 3

// CheckingAccount adds a per-withdrawal ceiling and a cap on the number of
// withdrawals on top of the base account rules. The withdrawal counter covers
// the whole life of the account; it is never reset.
type CheckingAccount struct {
	*BaseAccount
	limit          decimal.Decimal
	maxWithdrawals int
	withdrawals    int
}

// CheckingOptions overrides the checking defaults. Zero values keep the default.
type CheckingOptions struct {
	Branch         string
	Limit          decimal.Decimal
	MaxWithdrawals int
}

// NewCheckingAccount opens a checking account with a zero balance.
func NewCheckingAccount(number int, ownerTaxID string, opts CheckingOptions) *CheckingAccount {
	limit := opts.Limit
	if !limit.IsPositive() {
		limit = DefaultLimit
	}
	maxWithdrawals := opts.MaxWithdrawals
	if maxWithdrawals <= 0 {
		maxWithdrawals = DefaultMaxWithdrawals
	}
	return &CheckingAccount{
		BaseAccount:    NewAccount(number, ownerTaxID, opts.Branch),
		limit:          limit,
		maxWithdrawals: maxWithdrawals,
	}
}

func (c *CheckingAccount) Limit() decimal.Decimal { return c.limit }
func (c *CheckingAccount) MaxWithdrawals() int    { return c.maxWithdrawals }
func (c *CheckingAccount) Withdrawals() int       { return c.withdrawals }

// Withdraw checks, in order, the per-withdrawal ceiling, the withdrawal count
// and then the base balance rule. The first failing check wins. The counter
// only moves when the money actually leaves the account.
func (c *CheckingAccount) Withdraw(amount decimal.Decimal) error {
	if amount.GreaterThan(c.limit) {
		return fmt.Errorf("withdrawal of %s over limit %s: %w",
			amount.StringFixed(2), c.limit.StringFixed(2), ErrLimitExceeded)
	}
	if c.withdrawals >= c.maxWithdrawals {
		return fmt.Errorf("%d of %d withdrawals used: %w",
			c.withdrawals, c.maxWithdrawals, ErrWithdrawalCountExceeded)
	}
	if err := c.BaseAccount.Withdraw(amount); err != nil {
		return err
	}
	c.withdrawals++
	return nil
}
