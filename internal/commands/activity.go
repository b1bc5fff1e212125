package commands

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ledgersim/ledgersim/internal/activity"
)

func newActivityCommand(opts *globalOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show the activity log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				cfg, err := opts.loadConfig()
				if err != nil {
					return err
				}
				file = cfg.Log.ActivityFile
			}
			if file == "" {
				return errors.New("no activity log configured (set log.activity_file or pass --file)")
			}

			entries, err := activity.Read(file)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No activity recorded.")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TIME\tACTION\tTAX ID\tACCOUNT\tAMOUNT\tOUTCOME\tDETAIL")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					e.Timestamp.Format("2006-01-02 15:04:05"), e.Action, e.TaxID, e.Account, e.Amount, e.Outcome, e.Detail)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "activity log to read (defaults to log.activity_file)")

	return cmd
}
