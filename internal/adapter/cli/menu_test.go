package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/LucasTagliaferro/sistema-bancario-2/internal/adapter/cli"
	"github.com/LucasTagliaferro/sistema-bancario-2/internal/adapter/repository/memory"
	"github.com/LucasTagliaferro/sistema-bancario-2/internal/usecase/services"
)

func newMenuService() *services.BankService {
	return services.NewBankService(
		memory.NewClientRepository(),
		memory.NewAccountRepository(),
		"0001",
		decimal.RequireFromString("150.00"),
		decimal.RequireFromString("500.00"),
		3,
	)
}

func TestMenuFullSession(t *testing.T) {
	script := strings.Join([]string{
		"nu",
		"111",
		"Ana Souza",
		"15-03-1990",
		"Rua A, 10 - Centro - Recife/PE",
		"nc",
		"111",
		"d",
		"111",
		"200.00",
		"e",
		"111",
		"lc",
		"q",
	}, "\n") + "\n"

	var out bytes.Buffer
	menu := cli.NewMenu(newMenuService(), strings.NewReader(script), &out)

	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("run menu: %v", err)
	}

	output := out.String()
	for _, want := range []string{
		"client registered successfully",
		"account opened successfully",
		"New balance: R$ 350.00",
		"Deposit:",
		"Balance:     R$ 350.00",
		"Holder:  Ana Souza",
		"Thank you for banking with Cash Bank!",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestMenuRendersRejectionReason(t *testing.T) {
	script := strings.Join([]string{
		"d",
		"999",
		"50.00",
		"q",
	}, "\n") + "\n"

	var out bytes.Buffer
	menu := cli.NewMenu(newMenuService(), strings.NewReader(script), &out)

	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("run menu: %v", err)
	}

	if !strings.Contains(out.String(), "Operation failed! Client not found") {
		t.Fatalf("expected rejection message, got:\n%s", out.String())
	}
}

func TestMenuStopsOnEndOfInput(t *testing.T) {
	var out bytes.Buffer
	menu := cli.NewMenu(newMenuService(), strings.NewReader(""), &out)

	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("run menu: %v", err)
	}
}
