package ledger

import "errors"

// Rejection reasons. Every failed operation on an account returns one of these
// (possibly wrapped), and leaves the account untouched.
var (
	ErrInvalidAmount           = errors.New("amount must be greater than zero")
	ErrInsufficientFunds       = errors.New("insufficient funds")
	ErrLimitExceeded           = errors.New("withdrawal exceeds limit")
	ErrWithdrawalCountExceeded = errors.New("maximum number of withdrawals exceeded")
	ErrAccountNotFound         = errors.New("account not found")
)
