package services

import (
	"context"
	"strings"

	"github.com/api-sage/grey-teller/internal/adapter/console/models"
	"github.com/api-sage/grey-teller/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/grey-teller/internal/commons"
	"github.com/api-sage/grey-teller/internal/domain"
	"github.com/api-sage/grey-teller/internal/logger"
	"github.com/api-sage/grey-teller/internal/usecase/service_interfaces"
)

// Verify that BankService implements the service_interfaces.BankService interface
var _ service_interfaces.BankService = (*BankService)(nil)

// BankService orchestrates repository lookups and account mutations, and
// records an audit entry for every successful mutation. It owns no account
// state itself; the repository and the transaction logger are injected.
type BankService struct {
	accountRepo repo_interfaces.AccountRepository
	txLogger    domain.TransactionLogger
}

func NewBankService(
	accountRepo repo_interfaces.AccountRepository,
	txLogger domain.TransactionLogger,
) *BankService {
	return &BankService{
		accountRepo: accountRepo,
		txLogger:    txLogger,
	}
}

func (s *BankService) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("bank service create account request", logger.Fields{
		"accountNumber": req.AccountNumber,
		"ownerName":     req.OwnerName,
	})

	if err := req.Validate(); err != nil {
		logger.Error("bank service create account validation failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), domain.ValidationErrorf("%v", err)
	}

	account, err := domain.NewAccount(req.AccountNumber, req.OwnerName, req.InitialBalance)
	if err != nil {
		logger.Error("bank service create account rejected", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	if err := s.accountRepo.AddAccount(ctx, account); err != nil {
		logger.Error("bank service create account repository failed", err, logger.Fields{
			"accountNumber": account.AccountNumber(),
		})
		return commons.ErrorResponse[models.AccountResponse]("failed to create account", err.Error()), err
	}

	// The audit entry is emitted only after both construction and insertion
	// succeeded.
	s.txLogger.LogTransaction(domain.TransactionAccountCreation, account.AccountNumber(), account.Balance())

	response := models.AccountResponse{
		AccountNumber: account.AccountNumber(),
		OwnerName:     account.OwnerName(),
		Balance:       account.Balance().StringFixed(2),
	}

	logger.Info("bank service create account success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"balance":       response.Balance,
	})

	return commons.SuccessResponse("account created successfully", response), nil
}

func (s *BankService) Deposit(ctx context.Context, req models.DepositRequest) (commons.Response[models.BalanceResponse], error) {
	logger.Info("bank service deposit request", logger.Fields{
		"accountNumber": req.AccountNumber,
		"amount":        req.Amount.String(),
	})

	if err := req.Validate(); err != nil {
		logger.Error("bank service deposit validation failed", err, nil)
		return commons.ErrorResponse[models.BalanceResponse]("validation failed", err.Error()), domain.ValidationErrorf("%v", err)
	}

	account, err := s.accountRepo.GetAccount(ctx, req.AccountNumber)
	if err != nil {
		logger.Error("bank service deposit account lookup failed", err, logger.Fields{
			"accountNumber": req.AccountNumber,
		})
		return commons.ErrorResponse[models.BalanceResponse]("account not found", err.Error()), err
	}

	if err := account.Deposit(req.Amount); err != nil {
		logger.Error("bank service deposit rejected", err, logger.Fields{
			"accountNumber": account.AccountNumber(),
		})
		return commons.ErrorResponse[models.BalanceResponse]("validation failed", err.Error()), err
	}

	s.txLogger.LogTransaction(domain.TransactionDeposit, account.AccountNumber(), req.Amount)

	response := models.BalanceResponse{
		AccountNumber: account.AccountNumber(),
		Balance:       account.Balance().StringFixed(2),
	}

	logger.Info("bank service deposit success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"balance":       response.Balance,
	})

	return commons.SuccessResponse("deposit successful", response), nil
}

func (s *BankService) Withdraw(ctx context.Context, req models.WithdrawRequest) (commons.Response[models.BalanceResponse], error) {
	logger.Info("bank service withdraw request", logger.Fields{
		"accountNumber": req.AccountNumber,
		"amount":        req.Amount.String(),
	})

	if err := req.Validate(); err != nil {
		logger.Error("bank service withdraw validation failed", err, nil)
		return commons.ErrorResponse[models.BalanceResponse]("validation failed", err.Error()), domain.ValidationErrorf("%v", err)
	}

	account, err := s.accountRepo.GetAccount(ctx, req.AccountNumber)
	if err != nil {
		logger.Error("bank service withdraw account lookup failed", err, logger.Fields{
			"accountNumber": req.AccountNumber,
		})
		return commons.ErrorResponse[models.BalanceResponse]("account not found", err.Error()), err
	}

	ok, err := account.Withdraw(req.Amount)
	if err != nil {
		logger.Error("bank service withdraw rejected", err, logger.Fields{
			"accountNumber": account.AccountNumber(),
		})
		return commons.ErrorResponse[models.BalanceResponse]("validation failed", err.Error()), err
	}
	if !ok {
		logger.Info("bank service withdraw declined", logger.Fields{
			"accountNumber": account.AccountNumber(),
			"amount":        req.Amount.String(),
		})
		return commons.DeclinedResponse[models.BalanceResponse]("insufficient funds"), nil
	}

	// Outflows carry a negated amount in the audit log.
	s.txLogger.LogTransaction(domain.TransactionWithdrawal, account.AccountNumber(), req.Amount.Neg())

	response := models.BalanceResponse{
		AccountNumber: account.AccountNumber(),
		Balance:       account.Balance().StringFixed(2),
	}

	logger.Info("bank service withdraw success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"balance":       response.Balance,
	})

	return commons.SuccessResponse("withdrawal successful", response), nil
}

func (s *BankService) Transfer(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error) {
	logger.Info("bank service transfer request", logger.Fields{
		"sourceAccountNumber":      req.SourceAccountNumber,
		"destinationAccountNumber": req.DestinationAccountNumber,
		"amount":                   req.Amount.String(),
	})

	if err := req.Validate(); err != nil {
		logger.Error("bank service transfer validation failed", err, nil)
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), domain.ValidationErrorf("%v", err)
	}

	source, err := s.accountRepo.GetAccount(ctx, req.SourceAccountNumber)
	if err != nil {
		logger.Error("bank service transfer source lookup failed", err, logger.Fields{
			"accountNumber": req.SourceAccountNumber,
		})
		return commons.ErrorResponse[models.TransferResponse]("source account not found", err.Error()), err
	}

	destination, err := s.accountRepo.GetAccount(ctx, req.DestinationAccountNumber)
	if err != nil {
		logger.Error("bank service transfer destination lookup failed", err, logger.Fields{
			"accountNumber": req.DestinationAccountNumber,
		})
		return commons.ErrorResponse[models.TransferResponse]("destination account not found", err.Error()), err
	}

	ok, err := source.TransferTo(destination, req.Amount)
	if err != nil {
		logger.Error("bank service transfer rejected", err, logger.Fields{
			"sourceAccountNumber":      source.AccountNumber(),
			"destinationAccountNumber": destination.AccountNumber(),
		})
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}
	if !ok {
		logger.Info("bank service transfer declined", logger.Fields{
			"sourceAccountNumber": source.AccountNumber(),
			"amount":              req.Amount.String(),
		})
		return commons.DeclinedResponse[models.TransferResponse]("insufficient funds"), nil
	}

	// Both legs are recorded, or neither; the balances already moved
	// atomically inside TransferTo.
	s.txLogger.LogTransaction(domain.TransactionTransferOut, source.AccountNumber(), req.Amount.Neg())
	s.txLogger.LogTransaction(domain.TransactionTransferIn, destination.AccountNumber(), req.Amount)

	response := models.TransferResponse{
		SourceAccountNumber:      source.AccountNumber(),
		SourceBalance:            source.Balance().StringFixed(2),
		DestinationAccountNumber: destination.AccountNumber(),
		DestinationBalance:       destination.Balance().StringFixed(2),
	}

	logger.Info("bank service transfer success", logger.Fields{
		"sourceAccountNumber":      response.SourceAccountNumber,
		"destinationAccountNumber": response.DestinationAccountNumber,
		"amount":                   req.Amount.String(),
	})

	return commons.SuccessResponse("transfer successful", response), nil
}

func (s *BankService) GetBalance(ctx context.Context, accountNumber string) (commons.Response[models.BalanceResponse], error) {
	logger.Info("bank service get balance request", logger.Fields{
		"accountNumber": accountNumber,
	})

	if strings.TrimSpace(accountNumber) == "" {
		err := domain.ValidationErrorf("accountNumber is required")
		return commons.ErrorResponse[models.BalanceResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.GetAccount(ctx, accountNumber)
	if err != nil {
		logger.Error("bank service get balance lookup failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.BalanceResponse]("account not found", err.Error()), err
	}

	var reader domain.AccountReader = account
	response := models.BalanceResponse{
		AccountNumber: reader.AccountNumber(),
		Balance:       reader.Balance().StringFixed(2),
	}

	return commons.SuccessResponse("balance fetched successfully", response), nil
}
