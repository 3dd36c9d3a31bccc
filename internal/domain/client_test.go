package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/LucasTagliaferro/sistema-bancario-2/internal/domain"
)

func newClient(t *testing.T) *domain.IndividualClient {
	t.Helper()
	birthDate, err := time.Parse("02-01-2006", "15-03-1990")
	if err != nil {
		t.Fatalf("parse birth date: %v", err)
	}
	return domain.NewIndividualClient("Ana Souza", birthDate, "111", "Rua A, 10 - Centro - Recife/PE")
}

func TestFirstAccountWithoutAccounts(t *testing.T) {
	client := newClient(t)

	if _, err := client.FirstAccount(); !errors.Is(err, domain.ErrNoAccount) {
		t.Fatalf("expected ErrNoAccount, got %v", err)
	}
}

func TestFirstAccountReturnsOldestAccount(t *testing.T) {
	client := newClient(t)
	first := domain.NewCheckingAccount(client.ID(), 1, "0001", decimal.RequireFromString("150.00"), decimal.RequireFromString("500.00"), 3)
	second := domain.NewCheckingAccount(client.ID(), 2, "0001", decimal.RequireFromString("150.00"), decimal.RequireFromString("500.00"), 3)
	client.AddAccount(first)
	client.AddAccount(second)

	account, err := client.FirstAccount()
	if err != nil {
		t.Fatalf("expected first account, got %v", err)
	}
	if account.Number() != 1 {
		t.Fatalf("expected account number 1, got %d", account.Number())
	}
}

func TestAuthorizeRejectsForeignAccount(t *testing.T) {
	owner := newClient(t)
	other := domain.NewIndividualClient("Bruno Lima", owner.BirthDate(), "222", "Rua B, 20 - Centro - Recife/PE")
	account := domain.NewCheckingAccount(other.ID(), 1, "0001", decimal.RequireFromString("150.00"), decimal.RequireFromString("500.00"), 3)
	other.AddAccount(account)

	err := owner.Authorize(account, domain.NewDeposit(decimal.RequireFromString("10.00")))
	if !errors.Is(err, domain.ErrAccountNotOwned) {
		t.Fatalf("expected ErrAccountNotOwned, got %v", err)
	}
	if !account.Balance().Equal(decimal.RequireFromString("150.00")) {
		t.Fatalf("expected balance unchanged at 150.00, got %s", account.Balance().StringFixed(2))
	}
	if account.History().Len() != 0 {
		t.Fatal("expected no ledger entry after rejected authorization")
	}
}

func TestAuthorizeAppliesTransactionOnOwnedAccount(t *testing.T) {
	client := newClient(t)
	account := domain.NewCheckingAccount(client.ID(), 1, "0001", decimal.RequireFromString("150.00"), decimal.RequireFromString("500.00"), 3)
	client.AddAccount(account)

	if err := client.Authorize(account, domain.NewDeposit(decimal.RequireFromString("25.00"))); err != nil {
		t.Fatalf("expected authorization to succeed, got %v", err)
	}
	if !account.Balance().Equal(decimal.RequireFromString("175.00")) {
		t.Fatalf("expected balance 175.00, got %s", account.Balance().StringFixed(2))
	}
}
