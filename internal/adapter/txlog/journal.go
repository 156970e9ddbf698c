package txlog

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/api-sage/grey-teller/internal/domain"
)

var _ domain.TransactionLogger = (*Journal)(nil)

// Journal keeps the session's audit entries in memory, in the order they were
// recorded.
type Journal struct {
	mu      sync.Mutex
	entries []Entry
}

func NewJournal() *Journal {
	return &Journal{}
}

func (j *Journal) LogTransaction(txType domain.TransactionType, accountNumber string, amount decimal.Decimal) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.entries = append(j.entries, newEntry(txType, accountNumber, amount))
}

// Entries returns a copy of the recorded entries.
func (j *Journal) Entries() []Entry {
	j.mu.Lock()
	defer j.mu.Unlock()

	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()

	return len(j.entries)
}
