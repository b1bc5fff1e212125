package importer

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRequests_Testdata(t *testing.T) {
	f, err := os.Open("../../testdata/batch.csv")
	require.NoError(t, err)
	defer f.Close()

	reqs, err := ReadRequests(f)
	require.NoError(t, err)
	require.Len(t, reqs, 13)

	first := reqs[0]
	assert.Equal(t, ActionCustomer, first.Action)
	assert.Equal(t, "123.456.789-00", first.TaxID)
	assert.Equal(t, "Ana Souza", first.Name)
	assert.Equal(t, "Rua A, 10 - Centro - Recife/PE", first.Address)
	assert.Equal(t, 3, first.Line)

	assert.Equal(t, ActionWithdrawal, reqs[5].Action)
	assert.Equal(t, 1, reqs[5].Account)
	assert.Equal(t, "100.00", reqs[5].Amount.StringFixed(2))

	assert.Equal(t, "250.75", reqs[9].Amount.StringFixed(2))
	assert.Equal(t, 0, reqs[10].Account)
	assert.Equal(t, 16, reqs[12].Line)
}

func TestReadRequests_HeaderOnly(t *testing.T) {
	reqs, err := ReadRequests(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.Nil(t, reqs)
}

func TestReadRequests_Errors(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{"unknown action", "transfer,12345678900,,10,,,"},
		{"missing tax id", "deposit,,,10,,,"},
		{"bad amount", "deposit,12345678900,,ten,,,"},
		{"bad account", "deposit,12345678900,x,10,,,"},
		{"wrong field count", "deposit,12345678900,10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadRequests(strings.NewReader(Header + "\n" + tt.row + "\n"))
			require.Error(t, err)
		})
	}
}

func TestUnmarshalRequest_WithdrawAlias(t *testing.T) {
	req, err := UnmarshalRequest([]string{"Withdraw", "12345678900", "2", "0", "", "", ""})
	require.NoError(t, err)
	assert.Equal(t, ActionWithdrawal, req.Action)
	assert.Equal(t, 2, req.Account)
	assert.True(t, req.Amount.IsZero(), "zero amounts are left for the ledger to reject")
}
