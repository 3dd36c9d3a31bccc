package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindDeposit    Kind = "Deposit"
	KindWithdrawal Kind = "Withdrawal"
)

type Entry struct {
	ID        uuid.UUID
	Kind      Kind
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// Ledger is the append-only transaction history of a single account.
// Entries are recorded only after the corresponding balance mutation
// succeeded; they are never removed or reordered.
type Ledger struct {
	entries []Entry
}

func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Append(kind Kind, amount decimal.Decimal) Entry {
	entry := Entry{
		ID:        uuid.New(),
		Kind:      kind,
		Amount:    amount,
		CreatedAt: time.Now().Truncate(time.Second),
	}
	l.entries = append(l.entries, entry)
	return entry
}

func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Ledger) Count(kind Kind) int {
	count := 0
	for _, entry := range l.entries {
		if entry.Kind == kind {
			count++
		}
	}
	return count
}

func (l *Ledger) Len() int {
	return len(l.entries)
}
