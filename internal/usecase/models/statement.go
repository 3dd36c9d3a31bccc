package models

import (
	"errors"
	"strings"
)

type StatementRequest struct {
	TaxID string `json:"taxId"`
}

func (r StatementRequest) Validate() error {
	taxID := strings.TrimSpace(r.TaxID)
	if taxID == "" {
		return errors.New("taxId is required")
	}
	if !isDigits(taxID) {
		return errors.New("taxId must contain digits only")
	}
	return nil
}

type StatementEntry struct {
	Kind      string `json:"kind"`
	Amount    string `json:"amount"`
	Timestamp string `json:"timestamp"`
}

type StatementResponse struct {
	Branch  string           `json:"branch"`
	Number  int              `json:"number"`
	Entries []StatementEntry `json:"entries"`
	Balance string           `json:"balance"`
}
