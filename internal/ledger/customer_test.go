package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCustomer() *Customer {
	return NewCustomer("Ana Souza", "01/02/1990", "12345678900", "Rua A, 10 - Centro - Recife/PE")
}

func deposit(t *testing.T, amount string) Transaction {
	t.Helper()
	tx, err := NewDeposit(dec(amount))
	require.NoError(t, err)
	return tx
}

func withdrawal(t *testing.T, amount string) Transaction {
	t.Helper()
	tx, err := NewWithdrawal(dec(amount))
	require.NoError(t, err)
	return tx
}

func TestCustomer_AddAccountKeepsOrder(t *testing.T) {
	c := newTestCustomer()
	assert.Empty(t, c.Accounts())

	first := NewCheckingAccount(1, c.TaxID, CheckingOptions{})
	second := NewCheckingAccount(2, c.TaxID, CheckingOptions{})
	c.AddAccount(first)
	c.AddAccount(second)

	accts := c.Accounts()
	require.Len(t, accts, 2)
	assert.Equal(t, 1, accts[0].Number())
	assert.Equal(t, 2, accts[1].Number())

	got, err := c.Account(2)
	require.NoError(t, err)
	assert.Same(t, second, got)

	_, err = c.Account(3)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestPerformTransaction_RecordsOnlySuccess(t *testing.T) {
	c := newTestCustomer()
	acct := NewCheckingAccount(1, c.TaxID, CheckingOptions{})
	c.AddAccount(acct)

	require.NoError(t, c.PerformTransaction(acct, deposit(t, "100")))
	assert.ErrorIs(t, c.PerformTransaction(acct, withdrawal(t, "150")), ErrInsufficientFunds)
	assert.ErrorIs(t, c.PerformTransaction(acct, withdrawal(t, "501")), ErrLimitExceeded)
	require.NoError(t, c.PerformTransaction(acct, withdrawal(t, "40")))

	assert.Equal(t, 2, acct.History().Len())
	assert.Equal(t, "60.00", acct.Balance().StringFixed(2))
}

func TestPerformTransaction_ForeignAccount(t *testing.T) {
	c := newTestCustomer()
	other := NewCustomer("Bruno Lima", "03/04/1985", "98765432100", "Rua B, 20")
	acct := NewCheckingAccount(1, other.TaxID, CheckingOptions{})
	other.AddAccount(acct)

	err := c.PerformTransaction(acct, deposit(t, "10"))
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.True(t, acct.Balance().IsZero())
	assert.True(t, acct.History().Empty())

	assert.ErrorIs(t, c.PerformTransaction(nil, deposit(t, "10")), ErrAccountNotFound)
}

func TestScenario_CheckingWithdrawalCount(t *testing.T) {
	c := newTestCustomer()
	acct := NewCheckingAccount(1, c.TaxID, CheckingOptions{Limit: dec("500"), MaxWithdrawals: 3})
	c.AddAccount(acct)

	require.NoError(t, c.PerformTransaction(acct, deposit(t, "1000")))
	assert.Equal(t, "1000.00", acct.Balance().StringFixed(2))
	assert.Equal(t, 1, acct.History().Len())

	for i := 0; i < 3; i++ {
		require.NoError(t, c.PerformTransaction(acct, withdrawal(t, "100")))
	}
	assert.Equal(t, "700.00", acct.Balance().StringFixed(2))
	assert.Equal(t, 4, acct.History().Len())
	assert.Equal(t, 3, acct.Withdrawals())

	err := c.PerformTransaction(acct, withdrawal(t, "50"))
	assert.ErrorIs(t, err, ErrWithdrawalCountExceeded)
	assert.Equal(t, "700.00", acct.Balance().StringFixed(2))
	assert.Equal(t, 4, acct.History().Len())
}

func TestScenario_CeilingReportedBeforeInsufficientFunds(t *testing.T) {
	c := newTestCustomer()
	acct := NewCheckingAccount(1, c.TaxID, CheckingOptions{})
	c.AddAccount(acct)

	err := c.PerformTransaction(acct, withdrawal(t, "600"))
	require.ErrorIs(t, err, ErrLimitExceeded)
	assert.NotErrorIs(t, err, ErrInsufficientFunds)
	assert.True(t, acct.History().Empty())
}

func TestHistoryLengthMatchesSuccesses(t *testing.T) {
	c := newTestCustomer()
	acct := NewCheckingAccount(1, c.TaxID, CheckingOptions{})
	c.AddAccount(acct)

	requests := []Transaction{
		deposit(t, "300"),
		withdrawal(t, "100"),
		withdrawal(t, "700"),
		withdrawal(t, "250"),
		deposit(t, "0.50"),
		withdrawal(t, "100"),
		withdrawal(t, "100"),
		withdrawal(t, "1"),
	}

	successes := 0
	for _, tx := range requests {
		if c.PerformTransaction(acct, tx) == nil {
			successes++
		}
	}
	assert.Equal(t, 5, successes)
	assert.Equal(t, successes, acct.History().Len())
	assert.Equal(t, "0.50", acct.Balance().StringFixed(2))
}
