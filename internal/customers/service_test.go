package customers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func params(taxID string) NewCustomerParams {
	return NewCustomerParams{
		Name:      "Ana Souza",
		BirthDate: "01/02/1990",
		TaxID:     taxID,
		Address:   "Rua A, 10 - Centro - Recife/PE",
	}
}

func TestRegisterFind(t *testing.T) {
	svc := NewService()

	c, err := svc.Register(params("123.456.789-00"))
	require.NoError(t, err)
	assert.Equal(t, "12345678900", c.TaxID)
	assert.Equal(t, "Ana Souza", c.Name)
	assert.Empty(t, c.Accounts())

	for _, lookup := range []string{"12345678900", "123.456.789-00"} {
		got, err := svc.Find(lookup)
		require.NoError(t, err, "lookup %q", lookup)
		assert.Same(t, c, got)
	}
}

func TestRegister_Duplicate(t *testing.T) {
	svc := NewService()
	_, err := svc.Register(params("12345678900"))
	require.NoError(t, err)

	_, err = svc.Register(params("123.456.789-00"))
	assert.ErrorIs(t, err, ErrDuplicateTaxID)
	assert.Len(t, svc.All(), 1)
}

func TestRegister_InvalidTaxID(t *testing.T) {
	svc := NewService()
	_, err := svc.Register(params("123"))
	require.Error(t, err)
	assert.Empty(t, svc.All())
}

func TestFind_NotFound(t *testing.T) {
	svc := NewService()
	_, err := svc.Register(params("12345678900"))
	require.NoError(t, err)

	_, err = svc.Find("98765432100")
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	_, err = svc.Find("not-a-cpf")
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestAll_RegistrationOrder(t *testing.T) {
	svc := NewService()
	for _, taxID := range []string{"33333333333", "11111111111", "22222222222"} {
		_, err := svc.Register(params(taxID))
		require.NoError(t, err)
	}

	all := svc.All()
	require.Len(t, all, 3)
	assert.Equal(t, "33333333333", all[0].TaxID)
	assert.Equal(t, "11111111111", all[1].TaxID)
	assert.Equal(t, "22222222222", all[2].TaxID)
}
