package domain

import "github.com/shopspring/decimal"

type TransactionType string

const (
	TransactionAccountCreation TransactionType = "Account Creation"
	TransactionDeposit         TransactionType = "Deposit"
	TransactionWithdrawal      TransactionType = "Withdrawal"
	TransactionTransferOut     TransactionType = "Transfer Out"
	TransactionTransferIn      TransactionType = "Transfer In"
)

// TransactionLogger records one audit entry per successful mutation. Outflows
// ("Withdrawal", "Transfer Out") are logged with a negated amount, inflows
// with a positive one; this sign convention is observable behaviour and must
// hold across implementations.
type TransactionLogger interface {
	LogTransaction(txType TransactionType, accountNumber string, amount decimal.Decimal)
}
