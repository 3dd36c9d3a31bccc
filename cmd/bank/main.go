package main

import (
	"context"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/LucasTagliaferro/sistema-bancario-2/internal/adapter/cli"
	"github.com/LucasTagliaferro/sistema-bancario-2/internal/adapter/repository/memory"
	"github.com/LucasTagliaferro/sistema-bancario-2/internal/config"
	"github.com/LucasTagliaferro/sistema-bancario-2/internal/logger"
	"github.com/LucasTagliaferro/sistema-bancario-2/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zapConfig := zap.NewProductionConfig()
	if output := strings.TrimSpace(os.Getenv("LOG_OUTPUT")); output != "" {
		zapConfig.OutputPaths = []string{output}
	}
	zapLogger, err := zapConfig.Build()
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()
	logger.Init(zapLogger)

	clientRepo := memory.NewClientRepository()
	accountRepo := memory.NewAccountRepository()

	bankService := services.NewBankService(
		clientRepo,
		accountRepo,
		cfg.BranchCode,
		cfg.OpeningBalance,
		cfg.WithdrawalLimit,
		cfg.MaxWithdrawals,
	)

	menu := cli.NewMenu(bankService, os.Stdin, os.Stdout)
	if err := menu.Run(context.Background()); err != nil {
		log.Fatalf("run menu: %v", err)
	}
}
