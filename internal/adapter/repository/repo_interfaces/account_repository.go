package repo_interfaces

import (
	"context"

	"github.com/api-sage/grey-teller/internal/domain"
)

// AccountRepository hands out live account handles; mutations made through a
// returned account are visible to subsequent lookups.
type AccountRepository interface {
	AddAccount(ctx context.Context, account *domain.Account) error
	GetAccount(ctx context.Context, accountNumber string) (*domain.Account, error)
	AccountExists(ctx context.Context, accountNumber string) bool
}
