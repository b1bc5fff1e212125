package importer

import (
	"github.com/shopspring/decimal"

	"github.com/ledgersim/ledgersim/internal/customers"
	"github.com/ledgersim/ledgersim/internal/ledger"
)

// Teller is the subset of teller.Teller a batch needs.
type Teller interface {
	RegisterCustomer(params customers.NewCustomerParams) (*ledger.Customer, error)
	OpenAccount(taxID string) (*ledger.CheckingAccount, error)
	Transact(taxID string, number int, kind ledger.Kind, amount decimal.Decimal) (ledger.Account, error)
}

// Result is the outcome of one request.
type Result struct {
	Request Request
	Account int             // account affected, 0 if none
	Balance decimal.Decimal // balance after the request, for transactions
	Err     error
}

// OK reports whether the request succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Run applies requests in order. A rejected request is reported in its Result
// and does not stop the batch.
func Run(t Teller, reqs []Request) []Result {
	results := make([]Result, 0, len(reqs))
	for _, req := range reqs {
		results = append(results, apply(t, req))
	}
	return results
}

func apply(t Teller, req Request) Result {
	res := Result{Request: req}
	switch req.Action {
	case ActionCustomer:
		_, res.Err = t.RegisterCustomer(customers.NewCustomerParams{
			Name:      req.Name,
			BirthDate: req.BirthDate,
			TaxID:     req.TaxID,
			Address:   req.Address,
		})
	case ActionAccount:
		acct, err := t.OpenAccount(req.TaxID)
		res.Err = err
		if acct != nil {
			res.Account = acct.Number()
			res.Balance = acct.Balance()
		}
	case ActionDeposit, ActionWithdrawal:
		kind := ledger.KindDeposit
		if req.Action == ActionWithdrawal {
			kind = ledger.KindWithdrawal
		}
		acct, err := t.Transact(req.TaxID, req.Account, kind, req.Amount)
		res.Err = err
		if acct != nil {
			res.Account = acct.Number()
			res.Balance = acct.Balance()
		}
	}
	return res
}

// Summary counts successes and rejections.
func Summary(results []Result) (ok, rejected int) {
	for _, r := range results {
		if r.OK() {
			ok++
		} else {
			rejected++
		}
	}
	return ok, rejected
}
