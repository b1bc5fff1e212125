package journal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ledgersim/ledgersim/internal/ledger"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// newAccount opens a checking account for a fresh customer and applies the
// given signed amounts through PerformTransaction (positive = deposit).
func newAccount(t *testing.T, number int, amounts ...string) (*ledger.Customer, *ledger.CheckingAccount) {
	t.Helper()
	c := ledger.NewCustomer("Ana Souza", "01/02/1990", "12345678900", "Rua A, 10")
	acct := ledger.NewCheckingAccount(number, c.TaxID, ledger.CheckingOptions{})
	c.AddAccount(acct)

	for _, a := range amounts {
		amount := dec(a)
		var tx ledger.Transaction
		var err error
		if amount.IsNegative() {
			tx, err = ledger.NewWithdrawal(amount.Neg())
		} else {
			tx, err = ledger.NewDeposit(amount)
		}
		require.NoError(t, err)
		require.NoError(t, c.PerformTransaction(acct, tx))
	}
	return c, acct
}
