package service_interfaces

import (
	"context"

	"github.com/LucasTagliaferro/sistema-bancario-2/internal/commons"
	"github.com/LucasTagliaferro/sistema-bancario-2/internal/usecase/models"
)

type BankService interface {
	RegisterClient(ctx context.Context, req models.RegisterClientRequest) (commons.Response[models.ClientResponse], error)
	OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.AccountResponse], error)
	Deposit(ctx context.Context, req models.MovementRequest) (commons.Response[models.MovementResponse], error)
	Withdraw(ctx context.Context, req models.MovementRequest) (commons.Response[models.MovementResponse], error)
	SetWithdrawalLimit(ctx context.Context, req models.SetLimitRequest) (commons.Response[models.SetLimitResponse], error)
	Statement(ctx context.Context, req models.StatementRequest) (commons.Response[models.StatementResponse], error)
	ListAccounts(ctx context.Context) (commons.Response[[]models.AccountSummary], error)
}
