package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ledgersim/ledgersim/internal/activity"
	"github.com/ledgersim/ledgersim/internal/buildinfo"
	"github.com/ledgersim/ledgersim/internal/config"
	"github.com/ledgersim/ledgersim/internal/logging"
	"github.com/ledgersim/ledgersim/internal/teller"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	logLevel   string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
// Invoked without a subcommand it starts the interactive menu.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "ledgersim",
		Short:   "In-memory banking ledger simulator",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to ledgersim.yaml (built-in defaults when empty)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level, overrides log.level from the config")

	rootCmd.AddCommand(newRunCommand(opts))
	rootCmd.AddCommand(newBatchCommand(opts))
	rootCmd.AddCommand(newConfigCommand(opts))
	rootCmd.AddCommand(newActivityCommand(opts))

	return rootCmd
}

func (o *globalOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	return cfg, nil
}

// newSession loads configuration and builds a Teller with logging and the
// activity log wired in. Logs go to the command's stderr.
func (o *globalOptions) newSession(cmd *cobra.Command) (*teller.Teller, *zap.Logger, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.Log.Level, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}
	log = log.With(zap.String("bank", cfg.Bank.Name), zap.String("branch", cfg.Bank.Branch))
	return teller.New(cfg, activity.NewRecorder(cfg.Log.ActivityFile), log), log, nil
}
