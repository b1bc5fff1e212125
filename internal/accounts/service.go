package accounts

import (
	"errors"

	"github.com/ledgersim/ledgersim/internal/ledger"
)

// Service is the in-memory account registry. It hands out sequential account
// numbers starting at 1.
type Service struct {
	opts     ledger.CheckingOptions
	accounts []ledger.Account
}

// NewService creates an empty registry that opens checking accounts with opts.
func NewService(opts ledger.CheckingOptions) *Service {
	return &Service{opts: opts}
}

// NextNumber returns the number the next opened account will get.
func (s *Service) NextNumber() int {
	return len(s.accounts) + 1
}

// Open creates a checking account for owner and attaches it to them.
func (s *Service) Open(owner *ledger.Customer) (*ledger.CheckingAccount, error) {
	if owner == nil {
		return nil, errors.New("opening account: no customer")
	}
	acct := ledger.NewCheckingAccount(s.NextNumber(), owner.TaxID, s.opts)
	owner.AddAccount(acct)
	s.accounts = append(s.accounts, acct)
	return acct, nil
}

// All returns all accounts in opening order.
func (s *Service) All() []ledger.Account {
	out := make([]ledger.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// ByOwner returns the accounts held by the customer with taxID, in opening
// order.
func (s *Service) ByOwner(taxID string) []ledger.Account {
	var result []ledger.Account
	for _, a := range s.accounts {
		if a.OwnerTaxID() == taxID {
			result = append(result, a)
		}
	}
	return result
}
