package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Account holds the identity and balance of a single bank account. The fields
// are unexported so the balance can only move through Deposit, Withdraw and
// TransferTo, which keep it non-negative.
type Account struct {
	accountNumber string
	ownerName     string
	balance       decimal.Decimal
}

// AccountReader is the read-only view of an account.
type AccountReader interface {
	AccountNumber() string
	OwnerName() string
	Balance() decimal.Decimal
}

// AccountMutator covers the single-account balance mutations.
type AccountMutator interface {
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) (bool, error)
}

// Transferer moves funds from one account into another.
type Transferer interface {
	TransferTo(recipient *Account, amount decimal.Decimal) (bool, error)
}

var _ AccountReader = (*Account)(nil)
var _ AccountMutator = (*Account)(nil)
var _ Transferer = (*Account)(nil)

func NewAccount(accountNumber string, ownerName string, initialBalance decimal.Decimal) (*Account, error) {
	accountNumber = strings.TrimSpace(accountNumber)
	ownerName = strings.TrimSpace(ownerName)

	if accountNumber == "" {
		return nil, ValidationErrorf("accountNumber is required")
	}
	if ownerName == "" {
		return nil, ValidationErrorf("ownerName is required")
	}
	if initialBalance.IsNegative() {
		return nil, ValidationErrorf("initialBalance cannot be negative")
	}

	return &Account{
		accountNumber: accountNumber,
		ownerName:     ownerName,
		balance:       initialBalance,
	}, nil
}

func (a *Account) AccountNumber() string {
	return a.accountNumber
}

func (a *Account) OwnerName() string {
	return a.ownerName
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ValidationErrorf("amount must be greater than zero")
	}

	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw reports false without an error when the balance cannot cover the
// amount; insufficient funds is a routine outcome, not a fault.
func (a *Account) Withdraw(amount decimal.Decimal) (bool, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return false, ValidationErrorf("amount must be greater than zero")
	}
	if amount.GreaterThan(a.balance) {
		return false, nil
	}

	a.balance = a.balance.Sub(amount)
	return true, nil
}

// TransferTo debits this account and credits the recipient. The funds check
// runs before either balance moves, so a refused transfer leaves both
// accounts untouched.
func (a *Account) TransferTo(recipient *Account, amount decimal.Decimal) (bool, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return false, ValidationErrorf("amount must be greater than zero")
	}
	if recipient == nil {
		return false, ValidationErrorf("recipient account is required")
	}
	if recipient == a {
		return false, ValidationErrorf("cannot transfer to the same account")
	}
	if amount.GreaterThan(a.balance) {
		return false, nil
	}

	a.balance = a.balance.Sub(amount)
	if err := recipient.Deposit(amount); err != nil {
		// Unreachable for a positive amount; restore the debit anyway.
		a.balance = a.balance.Add(amount)
		return false, err
	}

	return true, nil
}
