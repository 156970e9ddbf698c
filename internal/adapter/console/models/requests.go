package models

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// "required" accepts whitespace-only strings; console input never should.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

type CreateAccountRequest struct {
	AccountNumber  string `validate:"notblank"`
	OwnerName      string `validate:"notblank"`
	InitialBalance decimal.Decimal
}

func (r CreateAccountRequest) Validate() error {
	errs := structErrors(r)
	if r.InitialBalance.IsNegative() {
		errs = append(errs, "initialBalance cannot be negative")
	}
	return joinErrors(errs)
}

type DepositRequest struct {
	AccountNumber string `validate:"notblank"`
	Amount        decimal.Decimal
}

func (r DepositRequest) Validate() error {
	errs := structErrors(r)
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}
	return joinErrors(errs)
}

type WithdrawRequest struct {
	AccountNumber string `validate:"notblank"`
	Amount        decimal.Decimal
}

func (r WithdrawRequest) Validate() error {
	errs := structErrors(r)
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}
	return joinErrors(errs)
}

type TransferRequest struct {
	SourceAccountNumber      string `validate:"notblank"`
	DestinationAccountNumber string `validate:"notblank"`
	Amount                   decimal.Decimal
}

func (r TransferRequest) Validate() error {
	errs := structErrors(r)
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}
	if strings.TrimSpace(r.SourceAccountNumber) != "" &&
		strings.TrimSpace(r.SourceAccountNumber) == strings.TrimSpace(r.DestinationAccountNumber) {
		errs = append(errs, "source and destination accounts cannot be the same")
	}
	return joinErrors(errs)
}

// fieldMessages maps struct fields to the message shown at the console.
var fieldMessages = map[string]string{
	"AccountNumber":            "accountNumber is required",
	"OwnerName":                "ownerName is required",
	"SourceAccountNumber":      "sourceAccountNumber is required",
	"DestinationAccountNumber": "destinationAccountNumber is required",
}

func structErrors(req any) []string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if msg, ok := fieldMessages[fe.Field()]; ok {
			out = append(out, msg)
			continue
		}
		out = append(out, fe.Field()+" is invalid")
	}
	return out
}

func joinErrors(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return errors.New(strings.Join(errs, "; "))
}
