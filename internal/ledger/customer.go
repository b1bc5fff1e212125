package ledger

import "fmt"

// Customer is an account holder, identified by a unique tax id.
type Customer struct {
	Name      string
	BirthDate string
	TaxID     string
	Address   string

	accounts []Account
}

// NewCustomer creates a customer with no accounts.
func NewCustomer(name, birthDate, taxID, address string) *Customer {
	return &Customer{
		Name:      name,
		BirthDate: birthDate,
		TaxID:     taxID,
		Address:   address,
	}
}

// AddAccount attaches acct to the customer. Accounts keep creation order.
func (c *Customer) AddAccount(acct Account) {
	c.accounts = append(c.accounts, acct)
}

// Accounts returns the customer's accounts in creation order.
func (c *Customer) Accounts() []Account {
	out := make([]Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// Account returns the owned account with the given number.
func (c *Customer) Account(number int) (Account, error) {
	for _, a := range c.accounts {
		if a.Number() == number {
			return a, nil
		}
	}
	return nil, fmt.Errorf("account %d for %s: %w", number, c.TaxID, ErrAccountNotFound)
}

// owns reports whether acct is one of the customer's accounts.
func (c *Customer) owns(acct Account) bool {
	for _, a := range c.accounts {
		if a == acct {
			return true
		}
	}
	return false
}

// PerformTransaction applies tx to acct and records it in the account
// history. Nothing is recorded when the account rejects the transaction, and
// the rejection is returned as is.
func (c *Customer) PerformTransaction(acct Account, tx Transaction) error {
	if acct == nil || !c.owns(acct) {
		return fmt.Errorf("customer %s: %w", c.TaxID, ErrAccountNotFound)
	}
	if err := tx.Apply(acct); err != nil {
		return err
	}
	acct.History().Append(tx)
	return nil
}
