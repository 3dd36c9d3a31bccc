package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const defaultBranchCode = "0001"
const defaultOpeningBalance = "150.00"
const defaultWithdrawalLimit = "500.00"
const defaultMaxWithdrawals = 3

type Config struct {
	BranchCode      string
	OpeningBalance  decimal.Decimal
	WithdrawalLimit decimal.Decimal
	MaxWithdrawals  int
}

func Load() (Config, error) {
	branchCode := strings.TrimSpace(os.Getenv("BRANCH_CODE"))
	if branchCode == "" {
		branchCode = defaultBranchCode
	}

	openingBalance, err := decimalEnv("OPENING_BALANCE", defaultOpeningBalance)
	if err != nil {
		return Config{}, err
	}

	withdrawalLimit, err := decimalEnv("WITHDRAWAL_LIMIT", defaultWithdrawalLimit)
	if err != nil {
		return Config{}, err
	}

	maxWithdrawals := defaultMaxWithdrawals
	if raw := strings.TrimSpace(os.Getenv("MAX_WITHDRAWALS")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return Config{}, fmt.Errorf("MAX_WITHDRAWALS must be a positive integer: %q", raw)
		}
		maxWithdrawals = parsed
	}

	return Config{
		BranchCode:      branchCode,
		OpeningBalance:  openingBalance,
		WithdrawalLimit: withdrawalLimit,
		MaxWithdrawals:  maxWithdrawals,
	}, nil
}

func decimalEnv(name string, fallback string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		raw = fallback
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s must be a valid amount: %q", name, raw)
	}
	if value.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, fmt.Errorf("%s must be greater than zero: %q", name, raw)
	}

	return value, nil
}
