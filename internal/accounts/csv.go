package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/ledgersim/ledgersim/internal/id"
	"github.com/ledgersim/ledgersim/internal/ledger"
)

// ListingHeader is the header row written by WriteListing.
var ListingHeader = []string{"branch", "number", "owner_tax_id", "balance", "movements", "withdrawals", "max_withdrawals", "limit"}

const (
	numFields      = 8
	colBranch      = 0
	colNumber      = 1
	colOwner       = 2
	colBalance     = 3
	colMovements   = 4
	colWithdrawals = 5
	colMaxWd       = 6
	colLimit       = 7
)

// withdrawalLimited is satisfied by accounts that cap withdrawals.
type withdrawalLimited interface {
	Withdrawals() int
	MaxWithdrawals() int
	Limit() decimal.Decimal
}

// WriteListing writes an account listing as CSV.
func WriteListing(w io.Writer, accounts []ledger.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(ListingHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalAccount converts an Account to a listing row. Checking-only columns
// are left empty for other account types.
func MarshalAccount(acct ledger.Account) []string {
	row := make([]string, numFields)
	row[colBranch] = acct.Branch()
	row[colNumber] = id.FormatAccountNumber(acct.Number())
	row[colOwner] = acct.OwnerTaxID()
	row[colBalance] = acct.Balance().StringFixed(2)
	row[colMovements] = strconv.Itoa(acct.History().Len())
	if c, ok := acct.(withdrawalLimited); ok {
		row[colWithdrawals] = strconv.Itoa(c.Withdrawals())
		row[colMaxWd] = strconv.Itoa(c.MaxWithdrawals())
		row[colLimit] = c.Limit().StringFixed(2)
	}
	return row
}
