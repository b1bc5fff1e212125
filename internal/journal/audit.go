package journal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgersim/ledgersim/internal/ledger"
)

// Check names a ledger invariant verified by Audit.
type Check string

const (
	CheckBalanceMatchesHistory Check = "balance-matches-history"
	CheckNonNegativeBalance    Check = "non-negative-balance"
	CheckPositiveAmounts       Check = "positive-amounts"
	CheckWithdrawalCap         Check = "withdrawal-cap"
	CheckWithdrawalCounter     Check = "withdrawal-counter"
)

// AuditError describes a single invariant violation on one account.
type AuditError struct {
	Check       Check
	Account     int
	Description string
}

func (e AuditError) Error() string {
	return fmt.Sprintf("%s [account %d]: %s", e.Check, e.Account, e.Description)
}

// counted is satisfied by accounts that track how many withdrawals they allowed.
type counted interface {
	Withdrawals() int
	MaxWithdrawals() int
}

// Audit verifies that each account's balance and counters agree with its
// history. It returns nil when the ledger is consistent.
func Audit(accts []ledger.Account) []AuditError {
	var errs []AuditError

	for _, acct := range accts {
		hist := acct.History()
		balance := acct.Balance()

		for i, m := range hist.Movements() {
			if !m.Amount().IsPositive() {
				errs = append(errs, AuditError{
					Check:       CheckPositiveAmounts,
					Account:     acct.Number(),
					Description: fmt.Sprintf("movement %d has amount %s", i+1, m.Amount().StringFixed(2)),
				})
			}
		}

		deposits, withdrawals := hist.Totals()
		expected := deposits.Sub(withdrawals)
		if !balance.Equal(expected) {
			errs = append(errs, AuditError{
				Check:       CheckBalanceMatchesHistory,
				Account:     acct.Number(),
				Description: fmt.Sprintf("balance %s != deposits %s - withdrawals %s", balance.StringFixed(2), deposits.StringFixed(2), withdrawals.StringFixed(2)),
			})
		}

		if balance.LessThan(decimal.Zero) {
			errs = append(errs, AuditError{
				Check:       CheckNonNegativeBalance,
				Account:     acct.Number(),
				Description: fmt.Sprintf("balance %s is negative", balance.StringFixed(2)),
			})
		}

		c, ok := acct.(counted)
		if !ok {
			continue
		}
		if c.Withdrawals() > c.MaxWithdrawals() {
			errs = append(errs, AuditError{
				Check:       CheckWithdrawalCap,
				Account:     acct.Number(),
				Description: fmt.Sprintf("%d withdrawals exceed cap of %d", c.Withdrawals(), c.MaxWithdrawals()),
			})
		}
		if n := hist.Count(ledger.KindWithdrawal); n != c.Withdrawals() {
			errs = append(errs, AuditError{
				Check:       CheckWithdrawalCounter,
				Account:     acct.Number(),
				Description: fmt.Sprintf("counter %d != %d withdrawals in history", c.Withdrawals(), n),
			})
		}
	}

	return errs
}
