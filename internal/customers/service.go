package customers

import (
	"errors"
	"fmt"

	"github.com/ledgersim/ledgersim/internal/id"
	"github.com/ledgersim/ledgersim/internal/ledger"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrDuplicateTaxID   = errors.New("a customer with this tax id already exists")
)

// Service is the in-memory customer registry, keyed by normalized tax id.
type Service struct {
	customers []*ledger.Customer
	byTaxID   map[string]*ledger.Customer
}

// NewService creates an empty registry.
func NewService() *Service {
	return &Service{byTaxID: make(map[string]*ledger.Customer)}
}

// NewCustomerParams holds the fields asked for when registering a customer.
type NewCustomerParams struct {
	Name      string
	BirthDate string
	TaxID     string
	Address   string
}

// Register creates a customer and adds it to the registry. The tax id is
// normalized first and must not be registered already.
func (s *Service) Register(params NewCustomerParams) (*ledger.Customer, error) {
	taxID, err := id.NormalizeTaxID(params.TaxID)
	if err != nil {
		return nil, err
	}
	if _, ok := s.byTaxID[taxID]; ok {
		return nil, fmt.Errorf("registering %s: %w", id.FormatTaxID(taxID), ErrDuplicateTaxID)
	}

	c := ledger.NewCustomer(params.Name, params.BirthDate, taxID, params.Address)
	s.customers = append(s.customers, c)
	s.byTaxID[taxID] = c
	return c, nil
}

// Find returns the customer with the given tax id, in any accepted format.
func (s *Service) Find(taxID string) (*ledger.Customer, error) {
	norm, err := id.NormalizeTaxID(taxID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCustomerNotFound, err)
	}
	c, ok := s.byTaxID[norm]
	if !ok {
		return nil, fmt.Errorf("tax id %s: %w", id.FormatTaxID(norm), ErrCustomerNotFound)
	}
	return c, nil
}

// All returns customers in registration order.
func (s *Service) All() []*ledger.Customer {
	out := make([]*ledger.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}
