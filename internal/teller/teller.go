package teller

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ledgersim/ledgersim/internal/accounts"
	"github.com/ledgersim/ledgersim/internal/activity"
	"github.com/ledgersim/ledgersim/internal/config"
	"github.com/ledgersim/ledgersim/internal/customers"
	"github.com/ledgersim/ledgersim/internal/id"
	"github.com/ledgersim/ledgersim/internal/journal"
	"github.com/ledgersim/ledgersim/internal/ledger"
)

// Actions written to the activity log.
const (
	ActionNewCustomer = "new_customer"
	ActionOpenAccount = "open_account"
	ActionDeposit     = "deposit"
	ActionWithdraw    = "withdraw"
	ActionStatement   = "statement"
)

// ErrNoAccounts is returned when a customer has no account to operate on.
var ErrNoAccounts = errors.New("customer has no accounts")

// Teller holds the registries for one session and carries out requests
// against them. Every balance change goes through Customer.PerformTransaction.
type Teller struct {
	cfg       *config.Config
	customers *customers.Service
	accounts  *accounts.Service
	recorder  *activity.Recorder
	log       *zap.Logger
}

// New creates a Teller with empty registries. rec and log may be nil.
func New(cfg *config.Config, rec *activity.Recorder, log *zap.Logger) *Teller {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Teller{
		cfg:       cfg,
		customers: customers.NewService(),
		accounts:  accounts.NewService(cfg.CheckingOptions()),
		recorder:  rec,
		log:       log,
	}
}

// Config returns the session configuration.
func (t *Teller) Config() *config.Config { return t.cfg }

// RegisterCustomer adds a new customer.
func (t *Teller) RegisterCustomer(params customers.NewCustomerParams) (*ledger.Customer, error) {
	c, err := t.customers.Register(params)
	if err != nil {
		t.record(ActionNewCustomer, params.TaxID, "", "", err)
		return nil, err
	}
	t.log.Info("customer registered", zap.String("tax_id", c.TaxID))
	t.record(ActionNewCustomer, c.TaxID, "", "", nil)
	return c, nil
}

// OpenAccount opens a checking account for the customer with taxID.
func (t *Teller) OpenAccount(taxID string) (*ledger.CheckingAccount, error) {
	c, err := t.customers.Find(taxID)
	if err != nil {
		t.record(ActionOpenAccount, taxID, "", "", err)
		return nil, err
	}
	acct, err := t.accounts.Open(c)
	if err != nil {
		return nil, err
	}
	number := id.FormatAccountNumber(acct.Number())
	t.log.Info("account opened", zap.String("tax_id", c.TaxID), zap.String("account", number))
	t.record(ActionOpenAccount, c.TaxID, number, "", nil)
	return acct, nil
}

// CustomerAccounts returns the accounts of the customer with taxID.
func (t *Teller) CustomerAccounts(taxID string) ([]ledger.Account, error) {
	c, err := t.customers.Find(taxID)
	if err != nil {
		return nil, err
	}
	return t.accounts.ByOwner(c.TaxID), nil
}

// Customers returns every customer registered in this session.
func (t *Teller) Customers() []*ledger.Customer {
	return t.customers.All()
}

// Accounts returns every account opened in this session.
func (t *Teller) Accounts() []ledger.Account {
	return t.accounts.All()
}

// Deposit credits amount to one of the customer's accounts. number 0 selects
// the customer's first account.
func (t *Teller) Deposit(taxID string, number int, amount decimal.Decimal) (ledger.Account, error) {
	return t.Transact(taxID, number, ledger.KindDeposit, amount)
}

// Withdraw debits amount from one of the customer's accounts. number 0
// selects the customer's first account.
func (t *Teller) Withdraw(taxID string, number int, amount decimal.Decimal) (ledger.Account, error) {
	return t.Transact(taxID, number, ledger.KindWithdrawal, amount)
}

// Transact builds a transaction of kind and performs it through the owning
// customer. The account is returned even when the transaction is rejected,
// as long as it could be resolved.
func (t *Teller) Transact(taxID string, number int, kind ledger.Kind, amount decimal.Decimal) (ledger.Account, error) {
	action := actionFor(kind)
	c, acct, err := t.resolve(taxID, number)
	if err != nil {
		t.record(action, taxID, accountLabel(number), amount.StringFixed(2), err)
		return nil, err
	}
	label := id.FormatAccountNumber(acct.Number())

	tx, err := ledger.NewTransaction(kind, amount)
	if err == nil {
		err = c.PerformTransaction(acct, tx)
	}
	if err != nil {
		t.log.Info("transaction rejected",
			zap.String("kind", string(kind)),
			zap.String("account", label),
			zap.String("amount", amount.StringFixed(2)),
			zap.String("reason", Reason(err)),
		)
		t.record(action, c.TaxID, label, amount.StringFixed(2), err)
		return acct, err
	}

	t.log.Debug("transaction applied",
		zap.String("kind", string(kind)),
		zap.String("account", label),
		zap.String("tx_id", tx.ID().String()),
		zap.String("balance", acct.Balance().StringFixed(2)),
	)
	t.record(action, c.TaxID, label, amount.StringFixed(2), nil)
	return acct, nil
}

// Statement builds the statement of one of the customer's accounts.
func (t *Teller) Statement(taxID string, number int) (journal.Statement, error) {
	_, acct, err := t.resolve(taxID, number)
	if err != nil {
		return journal.Statement{}, err
	}
	t.record(ActionStatement, acct.OwnerTaxID(), id.FormatAccountNumber(acct.Number()), "", nil)
	return journal.BuildStatement(acct), nil
}

// Audit verifies every account of the session.
func (t *Teller) Audit() []journal.AuditError {
	errs := journal.Audit(t.accounts.All())
	for _, e := range errs {
		t.log.Error("audit failure", zap.String("check", string(e.Check)), zap.Int("account", e.Account), zap.String("detail", e.Description))
	}
	return errs
}

func (t *Teller) resolve(taxID string, number int) (*ledger.Customer, ledger.Account, error) {
	c, err := t.customers.Find(taxID)
	if err != nil {
		return nil, nil, err
	}
	if number == 0 {
		accts := c.Accounts()
		if len(accts) == 0 {
			return nil, nil, fmt.Errorf("%s: %w", id.FormatTaxID(c.TaxID), ErrNoAccounts)
		}
		return c, accts[0], nil
	}
	acct, err := c.Account(number)
	if err != nil {
		return nil, nil, err
	}
	return c, acct, nil
}

func (t *Teller) record(action, taxID, account, amount string, opErr error) {
	e := activity.Entry{
		Action:  action,
		TaxID:   taxID,
		Account: account,
		Amount:  amount,
		Outcome: activity.OutcomeOK,
	}
	if opErr != nil {
		e.Outcome = activity.OutcomeRejected
		e.Detail = Reason(opErr) + ": " + opErr.Error()
	}
	if err := t.recorder.Record(e); err != nil {
		t.log.Warn("failed to write activity log", zap.Error(err))
	}
}

func actionFor(kind ledger.Kind) string {
	if kind == ledger.KindWithdrawal {
		return ActionWithdraw
	}
	return ActionDeposit
}

func accountLabel(number int) string {
	if number == 0 {
		return ""
	}
	return id.FormatAccountNumber(number)
}
