package domain

import (
	"time"

	"github.com/google/uuid"
)

type Client struct {
	id       uuid.UUID
	address  string
	accounts []Account
}

func (c *Client) ID() uuid.UUID   { return c.id }
func (c *Client) Address() string { return c.address }

func (c *Client) AddAccount(account Account) {
	c.accounts = append(c.accounts, account)
}

func (c *Client) Accounts() []Account {
	out := make([]Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// FirstAccount resolves the account all single-account flows operate on.
// Clients holding several accounts have no selection mechanism; the
// first opened account is always used.
func (c *Client) FirstAccount() (Account, error) {
	if len(c.accounts) == 0 {
		return nil, ErrNoAccount
	}
	return c.accounts[0], nil
}

func (c *Client) Owns(account Account) bool {
	for _, owned := range c.accounts {
		if owned == account {
			return true
		}
	}
	return false
}

// Authorize applies a transaction against one of the client's own
// accounts. Targeting an account the client does not own is rejected
// before any mutation.
func (c *Client) Authorize(account Account, tx Transaction) error {
	if !c.Owns(account) {
		return ErrAccountNotOwned
	}
	return tx.Apply(account)
}

type IndividualClient struct {
	Client
	name      string
	birthDate time.Time
	taxID     string
}

func NewIndividualClient(name string, birthDate time.Time, taxID string, address string) *IndividualClient {
	return &IndividualClient{
		Client:    Client{id: uuid.New(), address: address},
		name:      name,
		birthDate: birthDate,
		taxID:     taxID,
	}
}

func (c *IndividualClient) Name() string         { return c.name }
func (c *IndividualClient) BirthDate() time.Time { return c.birthDate }
func (c *IndividualClient) TaxID() string        { return c.taxID }
