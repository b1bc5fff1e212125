package commands

import (
	"github.com/spf13/cobra"

	"github.com/ledgersim/ledgersim/internal/menu"
)

func newRunCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, opts)
		},
	}
}

func runMenu(cmd *cobra.Command, opts *globalOptions) error {
	t, log, err := opts.newSession(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Debug("session started")
	return menu.New(t, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
}
