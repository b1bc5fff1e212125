package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/ledgersim/ledgersim/internal/ledger"
)

// Config represents the top-level ledgersim.yaml configuration.
type Config struct {
	Bank     BankConfig     `yaml:"bank"`
	Checking CheckingConfig `yaml:"checking"`
	Display  DisplayConfig  `yaml:"display"`
	Log      LogConfig      `yaml:"log"`
}

// BankConfig identifies the simulated bank.
type BankConfig struct {
	Name   string `yaml:"name"`
	Branch string `yaml:"branch"`
}

// CheckingConfig holds the guardrails given to new checking accounts.
type CheckingConfig struct {
	Limit          decimal.Decimal `yaml:"limit"`
	MaxWithdrawals int             `yaml:"max_withdrawals"`
}

// DisplayConfig controls how amounts are printed.
type DisplayConfig struct {
	Currency string `yaml:"currency"`
}

// LogConfig controls diagnostics and the activity log.
type LogConfig struct {
	Level        string `yaml:"level"`
	ActivityFile string `yaml:"activity_file,omitempty"` // empty = disabled
}

// Load reads a ledgersim.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads path, or returns the defaults when path is empty.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks the values a running simulator depends on.
func (c *Config) Validate() error {
	var errs []error
	if c.Bank.Branch == "" {
		errs = append(errs, errors.New("bank.branch is required"))
	}
	if !c.Checking.Limit.IsPositive() {
		errs = append(errs, fmt.Errorf("checking.limit must be positive, got %s", c.Checking.Limit))
	}
	if c.Checking.MaxWithdrawals <= 0 {
		errs = append(errs, fmt.Errorf("checking.max_withdrawals must be positive, got %d", c.Checking.MaxWithdrawals))
	}
	return errors.Join(errs...)
}

// CheckingOptions converts the checking section for account opening.
func (c *Config) CheckingOptions() ledger.CheckingOptions {
	return ledger.CheckingOptions{
		Branch:         c.Bank.Branch,
		Limit:          c.Checking.Limit,
		MaxWithdrawals: c.Checking.MaxWithdrawals,
	}
}

// Default returns a Config matching the simulator's built-in rules.
func Default() *Config {
	return &Config{
		Bank: BankConfig{
			Name:   "ledgersim",
			Branch: ledger.DefaultBranch,
		},
		Checking: CheckingConfig{
			Limit:          ledger.DefaultLimit,
			MaxWithdrawals: ledger.DefaultMaxWithdrawals,
		},
		Display: DisplayConfig{
			Currency: "R$",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
