package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/LucasTagliaferro/sistema-bancario-2/internal/commons"
	"github.com/LucasTagliaferro/sistema-bancario-2/internal/domain"
	"github.com/LucasTagliaferro/sistema-bancario-2/internal/logger"
	"github.com/LucasTagliaferro/sistema-bancario-2/internal/usecase/models"
	"github.com/LucasTagliaferro/sistema-bancario-2/internal/usecase/service_interfaces"
)

const birthDateLayout = "02-01-2006"
const statementTimeLayout = "02-01-2006 15:04:05"

// Verify that BankService implements the service_interfaces.BankService interface
var _ service_interfaces.BankService = (*BankService)(nil)

type BankService struct {
	clientRepo      domain.ClientRepository
	accountRepo     domain.AccountRepository
	branchCode      string
	openingBalance  decimal.Decimal
	withdrawalLimit decimal.Decimal
	maxWithdrawals  int
}

func NewBankService(
	clientRepo domain.ClientRepository,
	accountRepo domain.AccountRepository,
	branchCode string,
	openingBalance decimal.Decimal,
	withdrawalLimit decimal.Decimal,
	maxWithdrawals int,
) *BankService {
	return &BankService{
		clientRepo:      clientRepo,
		accountRepo:     accountRepo,
		branchCode:      strings.TrimSpace(branchCode),
		openingBalance:  openingBalance,
		withdrawalLimit: withdrawalLimit,
		maxWithdrawals:  maxWithdrawals,
	}
}

func (s *BankService) RegisterClient(ctx context.Context, req models.RegisterClientRequest) (commons.Response[models.ClientResponse], error) {
	logger.Info("bank service register client request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("bank service register client validation failed", err, nil)
		return commons.ErrorResponse[models.ClientResponse]("validation failed", err.Error()), err
	}

	birthDate, err := time.Parse(birthDateLayout, strings.TrimSpace(req.BirthDate))
	if err != nil {
		logger.Error("bank service register client invalid birth date", err, nil)
		return commons.ErrorResponse[models.ClientResponse]("validation failed", "birthDate must be in DD-MM-YYYY format"), err
	}

	client := domain.NewIndividualClient(
		strings.TrimSpace(req.Name),
		birthDate,
		strings.TrimSpace(req.TaxID),
		strings.TrimSpace(req.Address),
	)

	created, err := s.clientRepo.Create(ctx, client)
	if err != nil {
		logger.Error("bank service register client repository failed", err, nil)
		if errors.Is(err, domain.ErrDuplicateTaxID) {
			return commons.ErrorResponse[models.ClientResponse]("Tax identifier already registered"), err
		}
		return commons.ErrorResponse[models.ClientResponse]("failed to register client", "Unable to register client right now"), err
	}

	response := models.ClientResponse{
		ID:        created.ID().String(),
		TaxID:     created.TaxID(),
		Name:      created.Name(),
		BirthDate: created.BirthDate().Format(birthDateLayout),
		Address:   created.Address(),
	}

	logger.Info("bank service register client success", logger.Fields{
		"clientId": response.ID,
	})

	return commons.SuccessResponse("client registered successfully", response), nil
}

func (s *BankService) OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("bank service open account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("bank service open account validation failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	client, err := s.clientRepo.GetByTaxID(ctx, strings.TrimSpace(req.TaxID))
	if err != nil {
		logger.Error("bank service open account client lookup failed", err, nil)
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.AccountResponse]("Client not found"), err
		}
		return commons.ErrorResponse[models.AccountResponse]("failed to open account", "Unable to open account right now"), err
	}

	count, err := s.accountRepo.Count(ctx)
	if err != nil {
		logger.Error("bank service open account count failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("failed to open account", "Unable to open account right now"), err
	}

	account := domain.NewCheckingAccount(
		client.ID(),
		count+1,
		s.branchCode,
		s.openingBalance,
		s.withdrawalLimit,
		s.maxWithdrawals,
	)

	created, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		logger.Error("bank service open account repository failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("failed to open account", "Unable to open account right now"), err
	}
	client.AddAccount(created)

	response := models.AccountResponse{
		Branch:          created.Branch(),
		Number:          created.Number(),
		OwnerName:       client.Name(),
		Balance:         created.Balance().StringFixed(2),
		WithdrawalLimit: account.WithdrawalLimit().StringFixed(2),
		MaxWithdrawals:  account.MaxWithdrawals(),
	}

	logger.Info("bank service open account success", logger.Fields{
		"branch": response.Branch,
		"number": response.Number,
	})

	return commons.SuccessResponse("account opened successfully", response), nil
}

func (s *BankService) Deposit(ctx context.Context, req models.MovementRequest) (commons.Response[models.MovementResponse], error) {
	logger.Info("bank service deposit request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	response, err := s.applyMovement(ctx, req, domain.NewDeposit(req.Amount), domain.KindDeposit)
	if err != nil {
		logger.Error("bank service deposit failed", err, nil)
		return response, err
	}

	logger.Info("bank service deposit success", logger.Fields{
		"number":  response.Data.Number,
		"balance": response.Data.Balance,
	})

	return response, nil
}

func (s *BankService) Withdraw(ctx context.Context, req models.MovementRequest) (commons.Response[models.MovementResponse], error) {
	logger.Info("bank service withdraw request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	response, err := s.applyMovement(ctx, req, domain.NewWithdrawal(req.Amount), domain.KindWithdrawal)
	if err != nil {
		logger.Error("bank service withdraw failed", err, nil)
		return response, err
	}

	logger.Info("bank service withdraw success", logger.Fields{
		"number":  response.Data.Number,
		"balance": response.Data.Balance,
	})

	return response, nil
}

func (s *BankService) applyMovement(ctx context.Context, req models.MovementRequest, tx domain.Transaction, kind domain.Kind) (commons.Response[models.MovementResponse], error) {
	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.MovementResponse]("validation failed", err.Error()), err
	}

	client, err := s.clientRepo.GetByTaxID(ctx, strings.TrimSpace(req.TaxID))
	if err != nil {
		return commons.ErrorResponse[models.MovementResponse](rejectionMessage(err)), err
	}

	account, err := client.FirstAccount()
	if err != nil {
		return commons.ErrorResponse[models.MovementResponse](rejectionMessage(err)), err
	}

	if err := client.Authorize(account, tx); err != nil {
		return commons.ErrorResponse[models.MovementResponse](rejectionMessage(err)), err
	}

	response := models.MovementResponse{
		Branch:  account.Branch(),
		Number:  account.Number(),
		Kind:    string(kind),
		Amount:  tx.Amount().StringFixed(2),
		Balance: account.Balance().StringFixed(2),
	}

	return commons.SuccessResponse(string(kind)+" completed successfully", response), nil
}

func (s *BankService) SetWithdrawalLimit(ctx context.Context, req models.SetLimitRequest) (commons.Response[models.SetLimitResponse], error) {
	logger.Info("bank service set withdrawal limit request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("bank service set withdrawal limit validation failed", err, nil)
		return commons.ErrorResponse[models.SetLimitResponse]("validation failed", err.Error()), err
	}

	client, err := s.clientRepo.GetByTaxID(ctx, strings.TrimSpace(req.TaxID))
	if err != nil {
		logger.Error("bank service set withdrawal limit client lookup failed", err, nil)
		return commons.ErrorResponse[models.SetLimitResponse](rejectionMessage(err)), err
	}

	account, err := client.FirstAccount()
	if err != nil {
		logger.Error("bank service set withdrawal limit no account", err, nil)
		return commons.ErrorResponse[models.SetLimitResponse](rejectionMessage(err)), err
	}

	checking, ok := account.(*domain.CheckingAccount)
	if !ok {
		err := domain.ErrNotCheckingAccount
		logger.Error("bank service set withdrawal limit wrong account type", err, nil)
		return commons.ErrorResponse[models.SetLimitResponse](rejectionMessage(err)), err
	}

	if err := checking.SetWithdrawalLimit(req.NewLimit); err != nil {
		logger.Error("bank service set withdrawal limit rejected", err, nil)
		return commons.ErrorResponse[models.SetLimitResponse](rejectionMessage(err)), err
	}

	response := models.SetLimitResponse{
		Number:          checking.Number(),
		WithdrawalLimit: checking.WithdrawalLimit().StringFixed(2),
	}

	logger.Info("bank service set withdrawal limit success", logger.Fields{
		"number":          response.Number,
		"withdrawalLimit": response.WithdrawalLimit,
	})

	return commons.SuccessResponse("withdrawal limit updated successfully", response), nil
}

func (s *BankService) Statement(ctx context.Context, req models.StatementRequest) (commons.Response[models.StatementResponse], error) {
	logger.Info("bank service statement request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("bank service statement validation failed", err, nil)
		return commons.ErrorResponse[models.StatementResponse]("validation failed", err.Error()), err
	}

	client, err := s.clientRepo.GetByTaxID(ctx, strings.TrimSpace(req.TaxID))
	if err != nil {
		logger.Error("bank service statement client lookup failed", err, nil)
		return commons.ErrorResponse[models.StatementResponse](rejectionMessage(err)), err
	}

	account, err := client.FirstAccount()
	if err != nil {
		logger.Error("bank service statement no account", err, nil)
		return commons.ErrorResponse[models.StatementResponse](rejectionMessage(err)), err
	}

	entries := account.History().Entries()
	response := models.StatementResponse{
		Branch:  account.Branch(),
		Number:  account.Number(),
		Entries: make([]models.StatementEntry, 0, len(entries)),
		Balance: account.Balance().StringFixed(2),
	}
	for _, entry := range entries {
		response.Entries = append(response.Entries, models.StatementEntry{
			Kind:      string(entry.Kind),
			Amount:    entry.Amount.StringFixed(2),
			Timestamp: entry.CreatedAt.Format(statementTimeLayout),
		})
	}

	logger.Info("bank service statement success", logger.Fields{
		"number":  response.Number,
		"entries": len(response.Entries),
	})

	return commons.SuccessResponse("statement fetched successfully", response), nil
}

func (s *BankService) ListAccounts(ctx context.Context) (commons.Response[[]models.AccountSummary], error) {
	logger.Info("bank service list accounts request", nil)

	accounts, err := s.accountRepo.GetAll(ctx)
	if err != nil {
		logger.Error("bank service list accounts failed", err, nil)
		return commons.ErrorResponse[[]models.AccountSummary]("failed to list accounts", "Unable to list accounts right now"), err
	}

	clients, err := s.clientRepo.GetAll(ctx)
	if err != nil {
		logger.Error("bank service list accounts owner lookup failed", err, nil)
		return commons.ErrorResponse[[]models.AccountSummary]("failed to list accounts", "Unable to list accounts right now"), err
	}

	ownerNames := make(map[string]string, len(clients))
	for _, client := range clients {
		ownerNames[client.ID().String()] = client.Name()
	}

	summaries := make([]models.AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		summaries = append(summaries, models.AccountSummary{
			Branch:    account.Branch(),
			Number:    account.Number(),
			OwnerName: ownerNames[account.OwnerID().String()],
		})
	}

	logger.Info("bank service list accounts success", logger.Fields{
		"count": len(summaries),
	})

	return commons.SuccessResponse("accounts fetched successfully", summaries), nil
}

func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		return "Client not found"
	case errors.Is(err, domain.ErrNoAccount):
		return "Client has no account"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "Amount must be greater than zero"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "Insufficient balance"
	case errors.Is(err, domain.ErrWithdrawalLimitExceeded):
		return "Amount exceeds the withdrawal limit"
	case errors.Is(err, domain.ErrWithdrawalCountExceeded):
		return "Maximum number of withdrawals exceeded"
	case errors.Is(err, domain.ErrNotCheckingAccount):
		return "Operation not available for this account type"
	case errors.Is(err, domain.ErrAccountNotOwned):
		return "Account does not belong to this client"
	default:
		return "Operation failed"
	}
}
