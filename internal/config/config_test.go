package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Bank.Branch = "0042"
	cfg.Checking.Limit = decimal.RequireFromString("750.50")
	cfg.Checking.MaxWithdrawals = 5
	cfg.Log.ActivityFile = "activity.csv"

	path := filepath.Join(t.TempDir(), "ledgersim.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Bank.Name, got.Bank.Name)
	assert.Equal(t, "0042", got.Bank.Branch)
	assert.True(t, cfg.Checking.Limit.Equal(got.Checking.Limit), "limit %s", got.Checking.Limit)
	assert.Equal(t, 5, got.Checking.MaxWithdrawals)
	assert.Equal(t, "R$", got.Display.Currency)
	assert.Equal(t, "info", got.Log.Level)
	assert.Equal(t, "activity.csv", got.Log.ActivityFile)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "0001", cfg.Bank.Branch)
	assert.Equal(t, "500.00", cfg.Checking.Limit.StringFixed(2))
	assert.Equal(t, 3, cfg.Checking.MaxWithdrawals)
	assert.Equal(t, "R$", cfg.Display.Currency)
	assert.Empty(t, cfg.Log.ActivityFile)
	require.NoError(t, cfg.Validate())

	opts := cfg.CheckingOptions()
	assert.Equal(t, "0001", opts.Branch)
	assert.Equal(t, 3, opts.MaxWithdrawals)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrDefault_EmptyPath(t *testing.T) {
	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledgersim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("checking:\n  limit: 1000\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "1000.00", cfg.Checking.Limit.StringFixed(2))
	assert.Equal(t, 3, cfg.Checking.MaxWithdrawals)
	assert.Equal(t, "0001", cfg.Bank.Branch)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledgersim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("checking:\n  limit: 0\n  max_withdrawals: -1\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checking.limit")
	assert.Contains(t, err.Error(), "checking.max_withdrawals")
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledgersim.yaml")
	err := Save(path, Default())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "0001")
	assert.Contains(t, contents, "max_withdrawals: 3")
	assert.Contains(t, contents, "level: info")
	assert.NotContains(t, contents, "activity_file")
}
