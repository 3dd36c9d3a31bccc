package config_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/LucasTagliaferro/sistema-bancario-2/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.BranchCode != "0001" {
		t.Fatalf("expected branch 0001, got %s", cfg.BranchCode)
	}
	if !cfg.OpeningBalance.Equal(decimal.RequireFromString("150.00")) {
		t.Fatalf("expected opening balance 150.00, got %s", cfg.OpeningBalance.StringFixed(2))
	}
	if !cfg.WithdrawalLimit.Equal(decimal.RequireFromString("500.00")) {
		t.Fatalf("expected withdrawal limit 500.00, got %s", cfg.WithdrawalLimit.StringFixed(2))
	}
	if cfg.MaxWithdrawals != 3 {
		t.Fatalf("expected max withdrawals 3, got %d", cfg.MaxWithdrawals)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("BRANCH_CODE", "0042")
	t.Setenv("OPENING_BALANCE", "10.00")
	t.Setenv("WITHDRAWAL_LIMIT", "250.00")
	t.Setenv("MAX_WITHDRAWALS", "5")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.BranchCode != "0042" {
		t.Fatalf("expected branch 0042, got %s", cfg.BranchCode)
	}
	if !cfg.OpeningBalance.Equal(decimal.RequireFromString("10.00")) {
		t.Fatalf("expected opening balance 10.00, got %s", cfg.OpeningBalance.StringFixed(2))
	}
	if cfg.MaxWithdrawals != 5 {
		t.Fatalf("expected max withdrawals 5, got %d", cfg.MaxWithdrawals)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("OPENING_BALANCE", "abc")
	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for non-numeric opening balance")
	}

	t.Setenv("OPENING_BALANCE", "150.00")
	t.Setenv("MAX_WITHDRAWALS", "0")
	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for non-positive max withdrawals")
	}
}
