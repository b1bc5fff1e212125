package teller

import (
	"errors"

	"github.com/ledgersim/ledgersim/internal/customers"
	"github.com/ledgersim/ledgersim/internal/ledger"
)

// Reason codes reported for rejected requests.
const (
	ReasonInvalidAmount           = "invalid_amount"
	ReasonInsufficientFunds       = "insufficient_funds"
	ReasonLimitExceeded           = "limit_exceeded"
	ReasonWithdrawalCountExceeded = "withdrawal_count_exceeded"
	ReasonNotFound                = "not_found"
	ReasonDuplicate               = "duplicate"
	ReasonOther                   = "error"
)

// Reason maps an error to its reason code. nil maps to "".
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ledger.ErrInvalidAmount):
		return ReasonInvalidAmount
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return ReasonInsufficientFunds
	case errors.Is(err, ledger.ErrLimitExceeded):
		return ReasonLimitExceeded
	case errors.Is(err, ledger.ErrWithdrawalCountExceeded):
		return ReasonWithdrawalCountExceeded
	case errors.Is(err, ledger.ErrAccountNotFound),
		errors.Is(err, customers.ErrCustomerNotFound),
		errors.Is(err, ErrNoAccounts):
		return ReasonNotFound
	case errors.Is(err, customers.ErrDuplicateTaxID):
		return ReasonDuplicate
	default:
		return ReasonOther
	}
}
