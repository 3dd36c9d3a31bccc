package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type MovementRequest struct {
	TaxID  string          `json:"taxId"`
	Amount decimal.Decimal `json:"amount"`
}

func (r MovementRequest) Validate() error {
	taxID := strings.TrimSpace(r.TaxID)
	if taxID == "" {
		return errors.New("taxId is required")
	}
	if !isDigits(taxID) {
		return errors.New("taxId must contain digits only")
	}
	return nil
}

type MovementResponse struct {
	Branch  string `json:"branch"`
	Number  int    `json:"number"`
	Kind    string `json:"kind"`
	Amount  string `json:"amount"`
	Balance string `json:"balance"`
}

type SetLimitRequest struct {
	TaxID    string          `json:"taxId"`
	NewLimit decimal.Decimal `json:"newLimit"`
}

func (r SetLimitRequest) Validate() error {
	taxID := strings.TrimSpace(r.TaxID)
	if taxID == "" {
		return errors.New("taxId is required")
	}
	if !isDigits(taxID) {
		return errors.New("taxId must contain digits only")
	}
	return nil
}

type SetLimitResponse struct {
	Number          int    `json:"number"`
	WithdrawalLimit string `json:"withdrawalLimit"`
}
