package memory

import (
	"context"

	"github.com/LucasTagliaferro/sistema-bancario-2/internal/domain"
)

// ClientRepository keeps registered clients in insertion order and looks
// them up by tax identifier with a linear scan.
type ClientRepository struct {
	clients []*domain.IndividualClient
}

func NewClientRepository() *ClientRepository {
	return &ClientRepository{}
}

func (r *ClientRepository) Create(_ context.Context, client *domain.IndividualClient) (*domain.IndividualClient, error) {
	for _, existing := range r.clients {
		if existing.TaxID() == client.TaxID() {
			return nil, domain.ErrDuplicateTaxID
		}
	}
	r.clients = append(r.clients, client)
	return client, nil
}

func (r *ClientRepository) GetByTaxID(_ context.Context, taxID string) (*domain.IndividualClient, error) {
	for _, client := range r.clients {
		if client.TaxID() == taxID {
			return client, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

func (r *ClientRepository) GetAll(_ context.Context) ([]*domain.IndividualClient, error) {
	out := make([]*domain.IndividualClient, len(r.clients))
	copy(out, r.clients)
	return out, nil
}
