package txlog

import (
	"github.com/shopspring/decimal"

	"github.com/api-sage/grey-teller/internal/domain"
)

var _ domain.TransactionLogger = (MultiLogger)(nil)

// MultiLogger fans each audit entry out to every wrapped logger.
type MultiLogger []domain.TransactionLogger

func NewMultiLogger(loggers ...domain.TransactionLogger) MultiLogger {
	return MultiLogger(loggers)
}

func (m MultiLogger) LogTransaction(txType domain.TransactionType, accountNumber string, amount decimal.Decimal) {
	for _, l := range m {
		l.LogTransaction(txType, accountNumber, amount)
	}
}
