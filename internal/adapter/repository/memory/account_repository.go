package memory

import (
	"context"

	"github.com/LucasTagliaferro/sistema-bancario-2/internal/domain"
)

// AccountRepository keeps every opened account in opening order. The
// next account number is derived from Count, not stored separately.
type AccountRepository struct {
	accounts []domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{}
}

func (r *AccountRepository) Create(_ context.Context, account domain.Account) (domain.Account, error) {
	r.accounts = append(r.accounts, account)
	return account, nil
}

func (r *AccountRepository) GetAll(_ context.Context) ([]domain.Account, error) {
	out := make([]domain.Account, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}

func (r *AccountRepository) Count(_ context.Context) (int, error) {
	return len(r.accounts), nil
}
