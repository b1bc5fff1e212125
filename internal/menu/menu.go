package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgersim/ledgersim/internal/customers"
	"github.com/ledgersim/ledgersim/internal/id"
	"github.com/ledgersim/ledgersim/internal/journal"
	"github.com/ledgersim/ledgersim/internal/ledger"
	"github.com/ledgersim/ledgersim/internal/teller"
)

const prompt = `
[d] Deposit
[w] Withdraw
[s] Statement
[a] New account
[c] New customer
[l] List accounts
[v] Verify ledger
[q] Quit
=> `

const ruleWidth = 30

// errInputClosed ends the session when input runs out mid-operation.
var errInputClosed = errors.New("input closed")

// Menu is the interactive text front end over a Teller.
type Menu struct {
	teller *teller.Teller
	in     *bufio.Scanner
	out    io.Writer
}

// New creates a Menu reading commands from in and writing to out.
func New(t *teller.Teller, in io.Reader, out io.Writer) *Menu {
	return &Menu{teller: t, in: bufio.NewScanner(in), out: out}
}

// Run loops until the user quits, the input ends or ctx is cancelled.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		option, err := m.ask(prompt)
		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		switch option = strings.ToLower(option); option {
		case "d", "w":
			kind, _ := ledger.ParseKind(option)
			err = m.transact(kind)
		case "s":
			err = m.statement()
		case "a":
			err = m.newAccount()
		case "c":
			err = m.newCustomer()
		case "l":
			err = m.listAccounts()
		case "v":
			m.verify()
		case "q":
			return nil
		default:
			m.printf("Invalid operation, please select the desired operation again.\n")
		}

		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) ask(label string) (string, error) {
	m.printf("%s", label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

func (m *Menu) money(d decimal.Decimal) string {
	return m.teller.Config().Display.Currency + " " + d.StringFixed(2)
}

// chooseAccount asks for the customer's tax id and, when they hold more than
// one account, which account to use. ok is false when a message has already
// been printed and the operation should stop.
func (m *Menu) chooseAccount() (taxID string, number int, ok bool, err error) {
	taxID, err = m.ask("Customer tax ID: ")
	if err != nil {
		return "", 0, false, err
	}
	accts, err := m.teller.CustomerAccounts(taxID)
	if err != nil || len(accts) == 0 {
		m.printf("Customer or account not found.\n")
		return "", 0, false, nil
	}
	if len(accts) == 1 {
		return taxID, accts[0].Number(), true, nil
	}

	numbers := make([]string, len(accts))
	for i, a := range accts {
		numbers[i] = id.FormatAccountNumber(a.Number())
	}
	answer, err := m.ask(fmt.Sprintf("Account number (%s; enter for %s): ", strings.Join(numbers, ", "), numbers[0]))
	if err != nil {
		return "", 0, false, err
	}
	if answer == "" {
		return taxID, accts[0].Number(), true, nil
	}
	number, err = id.ParseAccountNumber(answer)
	if err != nil {
		m.printf("Customer or account not found.\n")
		return "", 0, false, nil
	}
	return taxID, number, true, nil
}

func (m *Menu) transact(kind ledger.Kind) error {
	taxID, number, ok, err := m.chooseAccount()
	if err != nil || !ok {
		return err
	}

	label := "Deposit amount: "
	if kind == ledger.KindWithdrawal {
		label = "Withdrawal amount: "
	}
	raw, err := m.ask(label)
	if err != nil {
		return err
	}
	amount, err := ledger.ParseAmount(raw)
	if err != nil {
		m.printf("Operation failed! The amount is invalid.\n")
		return nil
	}

	if acct, err := m.teller.Transact(taxID, number, kind, amount); err != nil {
		m.printf("%s\n", m.rejection(acct, err))
		m.printf("Transaction failed.\n")
		return nil
	}
	m.printf("Transaction completed successfully!\n")
	return nil
}

// ceilinged is satisfied by accounts with a per-withdrawal limit.
type ceilinged interface {
	Limit() decimal.Decimal
}

func (m *Menu) rejection(acct ledger.Account, err error) string {
	switch teller.Reason(err) {
	case teller.ReasonInvalidAmount:
		return "Operation failed! The amount is invalid."
	case teller.ReasonInsufficientFunds:
		return "Operation failed! Insufficient balance."
	case teller.ReasonLimitExceeded:
		limit := m.teller.Config().Checking.Limit
		if c, ok := acct.(ceilinged); ok {
			limit = c.Limit()
		}
		return fmt.Sprintf("Operation failed! The withdrawal exceeds the limit of %s.", m.money(limit))
	case teller.ReasonWithdrawalCountExceeded:
		return "Operation failed! Maximum number of withdrawals exceeded."
	case teller.ReasonNotFound:
		return "Customer or account not found."
	default:
		return "Operation failed! " + err.Error()
	}
}

func (m *Menu) statement() error {
	taxID, number, ok, err := m.chooseAccount()
	if err != nil || !ok {
		return err
	}
	st, err := m.teller.Statement(taxID, number)
	if err != nil {
		m.printf("Customer or account not found.\n")
		return nil
	}
	m.printStatement(st)
	return nil
}

func (m *Menu) printStatement(st journal.Statement) {
	m.printf("\n================ STATEMENT ================\n")
	m.printf("Branch: %s  Account: %s\n", st.Branch, id.FormatAccountNumber(st.Number))
	m.printf("Holder: %s\n", id.FormatTaxID(st.OwnerTaxID))
	if st.Empty() {
		m.printf("No movements have been recorded.\n")
	}
	for _, line := range st.Lines {
		m.printf("%s %-11s %s\n", line.Date.Format("02/01/2006 15:04"), line.Kind.Label()+":", m.money(line.Amount))
	}
	m.printf("\nBalance: %s\n", m.money(st.Balance))
	m.printf("===========================================\n")
}

func (m *Menu) newCustomer() error {
	var params customers.NewCustomerParams
	var err error
	if params.Name, err = m.ask("Name: "); err != nil {
		return err
	}
	if params.TaxID, err = m.ask("Tax ID (digits only): "); err != nil {
		return err
	}
	if params.BirthDate, err = m.ask("Birth date (dd-mm-yyyy): "); err != nil {
		return err
	}
	if params.Address, err = m.ask("Address (street, number - district - city/state): "); err != nil {
		return err
	}

	if _, err := m.teller.RegisterCustomer(params); err != nil {
		if errors.Is(err, customers.ErrDuplicateTaxID) {
			m.printf("A customer with this tax ID already exists.\n")
			return nil
		}
		m.printf("Could not create customer: %v\n", err)
		return nil
	}
	m.printf("Customer created successfully!\n")
	return nil
}

func (m *Menu) newAccount() error {
	taxID, err := m.ask("Customer tax ID: ")
	if err != nil {
		return err
	}
	acct, err := m.teller.OpenAccount(taxID)
	if err != nil {
		m.printf("Customer not found.\n")
		return nil
	}
	m.printf("Account created successfully! Branch %s, number %s.\n", acct.Branch(), id.FormatAccountNumber(acct.Number()))
	return nil
}

func (m *Menu) listAccounts() error {
	taxID, err := m.ask("Customer tax ID: ")
	if err != nil {
		return err
	}
	accts, err := m.teller.CustomerAccounts(taxID)
	if err != nil {
		m.printf("Customer not found.\n")
		return nil
	}
	if len(accts) == 0 {
		m.printf("Customer has no accounts.\n")
		return nil
	}

	m.printf("\n============ CUSTOMER ACCOUNTS ============\n")
	for _, a := range accts {
		m.printf("Branch: %s\n", a.Branch())
		m.printf("Number: %s\n", id.FormatAccountNumber(a.Number()))
		m.printf("Balance: %s\n", m.money(a.Balance()))
		m.printf("%s\n", strings.Repeat("-", ruleWidth))
	}
	return nil
}

func (m *Menu) verify() {
	errs := m.teller.Audit()
	if len(errs) == 0 {
		m.printf("Ledger verified: %d customer(s), %d account(s), no problems found.\n",
			len(m.teller.Customers()), len(m.teller.Accounts()))
		return
	}
	m.printf("Ledger verification found %d problem(s):\n", len(errs))
	for _, e := range errs {
		m.printf("  %s\n", e.Error())
	}
}
