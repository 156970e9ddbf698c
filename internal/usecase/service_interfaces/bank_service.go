package service_interfaces

import (
	"context"

	"github.com/api-sage/grey-teller/internal/adapter/console/models"
	"github.com/api-sage/grey-teller/internal/commons"
)

type BankService interface {
	CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error)
	Deposit(ctx context.Context, req models.DepositRequest) (commons.Response[models.BalanceResponse], error)
	Withdraw(ctx context.Context, req models.WithdrawRequest) (commons.Response[models.BalanceResponse], error)
	Transfer(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error)
	GetBalance(ctx context.Context, accountNumber string) (commons.Response[models.BalanceResponse], error)
}
