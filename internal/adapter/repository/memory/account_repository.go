package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/api-sage/grey-teller/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/grey-teller/internal/domain"
)

var _ repo_interfaces.AccountRepository = (*AccountRepository)(nil)

// AccountRepository keeps every account in a map keyed by account number.
// Nothing is ever removed; the store lives and dies with the process.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

func (r *AccountRepository) AddAccount(_ context.Context, account *domain.Account) error {
	if account == nil {
		return domain.ValidationErrorf("account is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	number := account.AccountNumber()
	if _, ok := r.accounts[number]; ok {
		return fmt.Errorf("account %q: %w", number, domain.ErrDuplicateAccount)
	}

	r.accounts[number] = account
	return nil
}

func (r *AccountRepository) GetAccount(_ context.Context, accountNumber string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[strings.TrimSpace(accountNumber)]
	if !ok {
		return nil, fmt.Errorf("account %q: %w", accountNumber, domain.ErrAccountNotFound)
	}

	return account, nil
}

func (r *AccountRepository) AccountExists(_ context.Context, accountNumber string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.accounts[strings.TrimSpace(accountNumber)]
	return ok
}
