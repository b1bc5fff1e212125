package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ledgersim/ledgersim/internal/accounts"
	"github.com/ledgersim/ledgersim/internal/id"
	"github.com/ledgersim/ledgersim/internal/importer"
	"github.com/ledgersim/ledgersim/internal/journal"
	"github.com/ledgersim/ledgersim/internal/teller"
)

// ListingFileName is the account listing written next to exported statements.
const ListingFileName = "accounts.csv"

func newBatchCommand(opts *globalOptions) *cobra.Command {
	var statementsDir string

	cmd := &cobra.Command{
		Use:   "batch <file.csv>",
		Short: "Apply a CSV file of customer, account and transaction requests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, opts, args[0], statementsDir)
		},
	}

	cmd.Flags().StringVar(&statementsDir, "statements", "", "directory to write per-account statements and the account listing")

	return cmd
}

func runBatch(cmd *cobra.Command, opts *globalOptions, path, statementsDir string) error {
	t, log, err := opts.newSession(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening batch file: %w", err)
	}
	defer f.Close()

	reqs, err := importer.ReadRequests(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	log.Info("batch loaded", zap.String("file", path), zap.Int("requests", len(reqs)))

	results := importer.Run(t, reqs)
	out := cmd.OutOrStdout()
	printResults(out, t, results)

	applied, rejected := importer.Summary(results)
	fmt.Fprintf(out, "\n%d applied, %d rejected\n", applied, rejected)

	if statementsDir != "" {
		if err := exportStatements(out, t, statementsDir); err != nil {
			return err
		}
	}

	if errs := t.Audit(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(out, "audit: %s\n", e.Error())
		}
		return fmt.Errorf("ledger audit found %d problem(s)", len(errs))
	}
	fmt.Fprintf(out, "Ledger verified: %d customer(s), %d account(s)\n", len(t.Customers()), len(t.Accounts()))
	return nil
}

func printResults(w io.Writer, t *teller.Teller, results []importer.Result) {
	currency := t.Config().Display.Currency
	for _, r := range results {
		req := r.Request
		status := "ok"
		if !r.OK() {
			status = "rejected (" + teller.Reason(r.Err) + ")"
		}

		switch req.Action {
		case importer.ActionCustomer:
			fmt.Fprintf(w, "line %d: customer %s: %s\n", req.Line, req.TaxID, status)
		case importer.ActionAccount:
			if r.Account == 0 {
				fmt.Fprintf(w, "line %d: account for %s: %s\n", req.Line, req.TaxID, status)
				continue
			}
			fmt.Fprintf(w, "line %d: account %s for %s: %s\n", req.Line, id.FormatAccountNumber(r.Account), req.TaxID, status)
		default:
			if r.Account == 0 {
				fmt.Fprintf(w, "line %d: %s %s %s for %s: %s\n", req.Line, req.Action, currency, req.Amount.StringFixed(2), req.TaxID, status)
				continue
			}
			fmt.Fprintf(w, "line %d: %s %s %s on %s: %s, balance %s %s\n",
				req.Line, req.Action, currency, req.Amount.StringFixed(2),
				id.FormatAccountNumber(r.Account), status, currency, r.Balance.StringFixed(2))
		}
	}
}

func exportStatements(w io.Writer, t *teller.Teller, dir string) error {
	accts := t.Accounts()
	paths, err := journal.ExportStatements(dir, accts)
	if err != nil {
		return fmt.Errorf("exporting statements: %w", err)
	}

	listingPath := filepath.Join(dir, ListingFileName)
	f, err := os.Create(listingPath)
	if err != nil {
		return fmt.Errorf("creating account listing: %w", err)
	}
	defer f.Close()
	if err := accounts.WriteListing(f, accts); err != nil {
		return fmt.Errorf("writing account listing: %w", err)
	}

	fmt.Fprintf(w, "Wrote %d statement(s) and %s to %s\n", len(paths), ListingFileName, dir)
	return nil
}
