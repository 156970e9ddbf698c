package memory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/grey-teller/internal/adapter/repository/memory"
	"github.com/api-sage/grey-teller/internal/domain"
)

func mustAccount(t *testing.T, number, owner, balance string) *domain.Account {
	t.Helper()
	account, err := domain.NewAccount(number, owner, decimal.RequireFromString(balance))
	require.NoError(t, err)
	return account
}

func TestAddAndGetAccountSharesHandle(t *testing.T) {
	repo := memory.NewAccountRepository()
	ctx := context.Background()

	account := mustAccount(t, "A1", "Alice", "10.00")
	require.NoError(t, repo.AddAccount(ctx, account))

	got, err := repo.GetAccount(ctx, "A1")
	require.NoError(t, err)
	assert.Same(t, account, got)

	// A mutation through one handle is visible to the next lookup.
	require.NoError(t, got.Deposit(decimal.RequireFromString("5.00")))
	again, err := repo.GetAccount(ctx, "A1")
	require.NoError(t, err)
	assert.True(t, again.Balance().Equal(decimal.RequireFromString("15.00")))
}

func TestAddAccountRejectsDuplicates(t *testing.T) {
	repo := memory.NewAccountRepository()
	ctx := context.Background()

	first := mustAccount(t, "A1", "Alice", "10.00")
	require.NoError(t, repo.AddAccount(ctx, first))

	second := mustAccount(t, "A1", "Mallory", "999.00")
	err := repo.AddAccount(ctx, second)
	require.ErrorIs(t, err, domain.ErrDuplicateAccount)

	// The first account's data survives.
	got, err := repo.GetAccount(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.OwnerName())
	assert.True(t, got.Balance().Equal(decimal.RequireFromString("10.00")))
}

func TestGetAccountNotFound(t *testing.T) {
	repo := memory.NewAccountRepository()

	_, err := repo.GetAccount(context.Background(), "ZZZ")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestAccountExists(t *testing.T) {
	repo := memory.NewAccountRepository()
	ctx := context.Background()

	assert.False(t, repo.AccountExists(ctx, "A1"))
	require.NoError(t, repo.AddAccount(ctx, mustAccount(t, "A1", "Alice", "0.00")))
	assert.True(t, repo.AccountExists(ctx, "A1"))
	assert.True(t, repo.AccountExists(ctx, "  A1  "))
}

func TestAddAccountRejectsNil(t *testing.T) {
	repo := memory.NewAccountRepository()

	err := repo.AddAccount(context.Background(), nil)
	require.ErrorIs(t, err, domain.ErrValidation)
}
