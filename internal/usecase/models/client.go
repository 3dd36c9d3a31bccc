package models

import (
	"errors"
	"strings"
)

type RegisterClientRequest struct {
	TaxID     string `json:"taxId"`
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
	Address   string `json:"address"`
}

func (r RegisterClientRequest) Validate() error {
	var errs []string

	taxID := strings.TrimSpace(r.TaxID)
	if taxID == "" {
		errs = append(errs, "taxId is required")
	} else if !isDigits(taxID) {
		errs = append(errs, "taxId must contain digits only")
	}

	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}

	if strings.TrimSpace(r.BirthDate) == "" {
		errs = append(errs, "birthDate is required")
	}

	if strings.TrimSpace(r.Address) == "" {
		errs = append(errs, "address is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type ClientResponse struct {
	ID        string `json:"id"`
	TaxID     string `json:"taxId"`
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
	Address   string `json:"address"`
}

func isDigits(value string) bool {
	for _, ch := range value {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return len(value) > 0
}
