package domain

import "context"

type AccountRepository interface {
	Create(ctx context.Context, account Account) (Account, error)
	GetAll(ctx context.Context) ([]Account, error)
	Count(ctx context.Context) (int, error)
}
