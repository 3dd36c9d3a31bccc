package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/LucasTagliaferro/sistema-bancario-2/internal/logger"
	"github.com/LucasTagliaferro/sistema-bancario-2/internal/usecase/models"
	"github.com/LucasTagliaferro/sistema-bancario-2/internal/usecase/service_interfaces"
)

const menuText = `
================== MENU =====================
Welcome to Cash Bank
Please choose one of the options below:

[d]   Deposit
[s]   Withdraw
[e]   Statement
[al]  Change withdrawal limit
[nc]  New account
[lc]  List accounts
[nu]  New client
[q]   Quit
=> `

// Menu is the interactive text front end. It only prompts, parses and
// renders; every rule lives behind the service.
type Menu struct {
	service service_interfaces.BankService
	in      *bufio.Scanner
	out     io.Writer
}

func NewMenu(service service_interfaces.BankService, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		service: service,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprint(m.out, menuText)
		option, ok := m.readLine()
		if !ok {
			return nil
		}

		switch strings.ToLower(strings.TrimSpace(option)) {
		case "d":
			m.deposit(ctx)
		case "s":
			m.withdraw(ctx)
		case "e":
			m.statement(ctx)
		case "al":
			m.changeWithdrawalLimit(ctx)
		case "nc":
			m.openAccount(ctx)
		case "lc":
			m.listAccounts(ctx)
		case "nu":
			m.registerClient(ctx)
		case "q":
			fmt.Fprintln(m.out, "\nThank you for banking with Cash Bank!")
			return nil
		default:
			fmt.Fprintln(m.out, "\nInvalid option, please choose again.")
		}
	}
}

func (m *Menu) registerClient(ctx context.Context) {
	req := models.RegisterClientRequest{
		TaxID:     m.prompt("Enter the tax identifier (digits only): "),
		Name:      m.prompt("Enter the full name: "),
		BirthDate: m.prompt("Enter the birth date (DD-MM-YYYY): "),
		Address:   m.prompt("Enter the address (street, number - district - city/state): "),
	}

	response, err := m.service.RegisterClient(ctx, req)
	if err != nil {
		m.renderFailure(response.Message, response.Errors)
		return
	}
	fmt.Fprintf(m.out, "\n%s\n", response.Message)
}

func (m *Menu) openAccount(ctx context.Context) {
	req := models.OpenAccountRequest{
		TaxID: m.prompt("Enter the client tax identifier: "),
	}

	response, err := m.service.OpenAccount(ctx, req)
	if err != nil {
		m.renderFailure(response.Message, response.Errors)
		return
	}
	fmt.Fprintf(m.out, "\n%s\n", response.Message)
	fmt.Fprintf(m.out, "Branch: %s  Account: %d  Balance: R$ %s\n",
		response.Data.Branch, response.Data.Number, response.Data.Balance)
}

func (m *Menu) deposit(ctx context.Context) {
	taxID := m.prompt("Enter the client tax identifier: ")
	amount, err := m.promptAmount("Enter the deposit amount: R$ ")
	if err != nil {
		fmt.Fprintln(m.out, "\nOperation failed! The amount must be a number.")
		return
	}

	response, err := m.service.Deposit(ctx, models.MovementRequest{TaxID: taxID, Amount: amount})
	if err != nil {
		m.renderFailure(response.Message, response.Errors)
		return
	}
	fmt.Fprintf(m.out, "\n%s\n", response.Message)
	fmt.Fprintf(m.out, "New balance: R$ %s\n", response.Data.Balance)
}

func (m *Menu) withdraw(ctx context.Context) {
	taxID := m.prompt("Enter the client tax identifier: ")
	amount, err := m.promptAmount("Enter the withdrawal amount: R$ ")
	if err != nil {
		fmt.Fprintln(m.out, "\nOperation failed! The amount must be a number.")
		return
	}

	response, err := m.service.Withdraw(ctx, models.MovementRequest{TaxID: taxID, Amount: amount})
	if err != nil {
		m.renderFailure(response.Message, response.Errors)
		return
	}
	fmt.Fprintf(m.out, "\n%s\n", response.Message)
	fmt.Fprintf(m.out, "New balance: R$ %s\n", response.Data.Balance)
}

func (m *Menu) changeWithdrawalLimit(ctx context.Context) {
	taxID := m.prompt("Enter the client tax identifier: ")
	newLimit, err := m.promptAmount("Enter the new withdrawal limit: R$ ")
	if err != nil {
		fmt.Fprintln(m.out, "\nOperation failed! The amount must be a number.")
		return
	}

	response, err := m.service.SetWithdrawalLimit(ctx, models.SetLimitRequest{TaxID: taxID, NewLimit: newLimit})
	if err != nil {
		m.renderFailure(response.Message, response.Errors)
		return
	}
	fmt.Fprintf(m.out, "\n%s\n", response.Message)
	fmt.Fprintf(m.out, "Withdrawal limit: R$ %s\n", response.Data.WithdrawalLimit)
}

func (m *Menu) statement(ctx context.Context) {
	taxID := m.prompt("Enter the client tax identifier: ")

	response, err := m.service.Statement(ctx, models.StatementRequest{TaxID: taxID})
	if err != nil {
		m.renderFailure(response.Message, response.Errors)
		return
	}

	fmt.Fprintln(m.out, "\n================= STATEMENT =================")
	if len(response.Data.Entries) == 0 {
		fmt.Fprintln(m.out, "No transactions recorded.")
	} else {
		for _, entry := range response.Data.Entries {
			fmt.Fprintf(m.out, "%-12s R$ %10s   %s\n", entry.Kind+":", entry.Amount, entry.Timestamp)
		}
	}
	fmt.Fprintf(m.out, "\nBalance:     R$ %s\n", response.Data.Balance)
	fmt.Fprintln(m.out, "=============================================")
}

func (m *Menu) listAccounts(ctx context.Context) {
	response, err := m.service.ListAccounts(ctx)
	if err != nil {
		m.renderFailure(response.Message, response.Errors)
		return
	}

	if len(*response.Data) == 0 {
		fmt.Fprintln(m.out, "\nNo accounts registered.")
		return
	}

	fmt.Fprintln(m.out, "\n================ ACCOUNT LIST ================")
	for _, account := range *response.Data {
		fmt.Fprintf(m.out, "Branch:  %s\nAccount: %d\nHolder:  %s\n", account.Branch, account.Number, account.OwnerName)
		fmt.Fprintln(m.out, strings.Repeat("-", 45))
	}
}

func (m *Menu) prompt(label string) string {
	fmt.Fprint(m.out, label)
	value, _ := m.readLine()
	return strings.TrimSpace(value)
}

func (m *Menu) promptAmount(label string) (decimal.Decimal, error) {
	raw := m.prompt(label)
	return decimal.NewFromString(raw)
}

func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			logger.Error("menu read input failed", err, nil)
		}
		return "", false
	}
	return m.in.Text(), true
}

func (m *Menu) renderFailure(message string, errs []string) {
	fmt.Fprintf(m.out, "\nOperation failed! %s\n", message)
	for _, detail := range errs {
		fmt.Fprintf(m.out, "  - %s\n", detail)
	}
}
