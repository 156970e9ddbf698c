// Package txlog provides the transaction logger collaborators: a stdout
// renderer for the interactive session and an in-memory journal that keeps
// the session's audit trail.
package txlog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/api-sage/grey-teller/internal/domain"
)

type Entry struct {
	ID            uuid.UUID
	RecordedAt    time.Time
	Type          domain.TransactionType
	AccountNumber string
	Amount        decimal.Decimal
}

func newEntry(txType domain.TransactionType, accountNumber string, amount decimal.Decimal) Entry {
	return Entry{
		ID:            uuid.New(),
		RecordedAt:    time.Now(),
		Type:          txType,
		AccountNumber: accountNumber,
		Amount:        amount,
	}
}
