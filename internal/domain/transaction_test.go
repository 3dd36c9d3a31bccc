package domain_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/LucasTagliaferro/sistema-bancario-2/internal/domain"
)

func TestDepositApplyAppendsSingleLedgerEntry(t *testing.T) {
	account := newCheckingAccount()
	tx := domain.NewDeposit(decimal.RequireFromString("200.00"))

	if err := tx.Apply(account); err != nil {
		t.Fatalf("expected apply to succeed, got %v", err)
	}

	entries := account.History().Entries()
	if len(entries) != 1 {
		t.Fatalf("expected exactly one ledger entry, got %d", len(entries))
	}
	if entries[0].Kind != domain.KindDeposit {
		t.Fatalf("expected kind %s, got %s", domain.KindDeposit, entries[0].Kind)
	}
	if !entries[0].Amount.Equal(decimal.RequireFromString("200.00")) {
		t.Fatalf("expected entry amount 200.00, got %s", entries[0].Amount.StringFixed(2))
	}
	if entries[0].CreatedAt.IsZero() {
		t.Fatal("expected entry timestamp to be set")
	}
}

func TestRejectedTransactionLeavesNoLedgerEntry(t *testing.T) {
	account := newCheckingAccount()

	tx := domain.NewWithdrawal(decimal.RequireFromString("600.00"))
	err := tx.Apply(account)
	if !errors.Is(err, domain.ErrWithdrawalLimitExceeded) {
		t.Fatalf("expected ErrWithdrawalLimitExceeded, got %v", err)
	}

	if account.History().Len() != 0 {
		t.Fatalf("expected empty ledger after rejection, got %d entries", account.History().Len())
	}
	if !account.Balance().Equal(decimal.RequireFromString("150.00")) {
		t.Fatalf("expected balance unchanged at 150.00, got %s", account.Balance().StringFixed(2))
	}
}

func TestWithdrawalApplyRecordsWithdrawalKind(t *testing.T) {
	account := newCheckingAccount()

	if err := domain.NewWithdrawal(decimal.RequireFromString("50.00")).Apply(account); err != nil {
		t.Fatalf("expected apply to succeed, got %v", err)
	}

	entries := account.History().Entries()
	if len(entries) != 1 || entries[0].Kind != domain.KindWithdrawal {
		t.Fatalf("expected one Withdrawal entry, got %v", entries)
	}
	if !account.Balance().Equal(decimal.RequireFromString("100.00")) {
		t.Fatalf("expected balance 100.00, got %s", account.Balance().StringFixed(2))
	}
}
