package models

import (
	"errors"
	"strings"
)

type OpenAccountRequest struct {
	TaxID string `json:"taxId"`
}

func (r OpenAccountRequest) Validate() error {
	taxID := strings.TrimSpace(r.TaxID)
	if taxID == "" {
		return errors.New("taxId is required")
	}
	if !isDigits(taxID) {
		return errors.New("taxId must contain digits only")
	}
	return nil
}

type AccountResponse struct {
	Branch          string `json:"branch"`
	Number          int    `json:"number"`
	OwnerName       string `json:"ownerName"`
	Balance         string `json:"balance"`
	WithdrawalLimit string `json:"withdrawalLimit"`
	MaxWithdrawals  int    `json:"maxWithdrawals"`
}

type AccountSummary struct {
	Branch    string `json:"branch"`
	Number    int    `json:"number"`
	OwnerName string `json:"ownerName"`
}
