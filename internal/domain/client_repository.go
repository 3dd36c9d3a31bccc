package domain

import "context"

type ClientRepository interface {
	Create(ctx context.Context, client *IndividualClient) (*IndividualClient, error)
	GetByTaxID(ctx context.Context, taxID string) (*IndividualClient, error)
	GetAll(ctx context.Context) ([]*IndividualClient, error)
}
