package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount_Defaults(t *testing.T) {
	acct := NewAccount(7, "12345678900", "")
	assert.Equal(t, 7, acct.Number())
	assert.Equal(t, DefaultBranch, acct.Branch())
	assert.Equal(t, "12345678900", acct.OwnerTaxID())
	assert.True(t, acct.Balance().IsZero())
	assert.True(t, acct.History().Empty())

	assert.Equal(t, "0042", NewAccount(8, "1", "0042").Branch())
}

func TestDeposit(t *testing.T) {
	acct := NewAccount(1, "1", "")

	require.NoError(t, acct.Deposit(dec("10.25")))
	assert.Equal(t, "10.25", acct.Balance().StringFixed(2))

	for _, amount := range []string{"0", "-5"} {
		err := acct.Deposit(dec(amount))
		assert.ErrorIs(t, err, ErrInvalidAmount, "deposit %s", amount)
		assert.Equal(t, "10.25", acct.Balance().StringFixed(2), "balance unchanged after deposit %s", amount)
	}
}

func TestWithdraw(t *testing.T) {
	acct := NewAccount(1, "1", "")
	require.NoError(t, acct.Deposit(dec("50")))

	assert.ErrorIs(t, acct.Withdraw(dec("50.01")), ErrInsufficientFunds)
	assert.ErrorIs(t, acct.Withdraw(dec("0")), ErrInvalidAmount)
	assert.ErrorIs(t, acct.Withdraw(dec("-1")), ErrInvalidAmount)
	assert.Equal(t, "50.00", acct.Balance().StringFixed(2))

	require.NoError(t, acct.Withdraw(dec("50")))
	assert.True(t, acct.Balance().IsZero())
}

func TestBalanceNeverNegative(t *testing.T) {
	steps := []struct {
		deposit bool
		amount  string
	}{
		{true, "100"}, {false, "30"}, {false, "80"}, {true, "-10"},
		{false, "70"}, {false, "0.01"}, {true, "0"}, {true, "5.55"},
		{false, "5.56"}, {false, "5.55"},
	}

	base := NewAccount(1, "1", "")
	checking := NewCheckingAccount(2, "1", CheckingOptions{MaxWithdrawals: 100})

	for _, acct := range []Account{base, checking} {
		for _, s := range steps {
			if s.deposit {
				_ = acct.Deposit(dec(s.amount))
			} else {
				_ = acct.Withdraw(dec(s.amount))
			}
			assert.False(t, acct.Balance().IsNegative(), "balance went negative on account %d", acct.Number())
		}
		assert.True(t, acct.Balance().IsZero(), "account %d should end empty", acct.Number())
	}
}
