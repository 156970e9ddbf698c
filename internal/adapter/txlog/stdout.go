package txlog

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"github.com/api-sage/grey-teller/internal/domain"
)

var _ domain.TransactionLogger = (*StdoutLogger)(nil)

// StdoutLogger renders each audit entry as a single line: timestamp,
// transaction type, account number and the signed, currency-formatted amount.
// The exact formatting is presentation only and not part of the logger
// contract.
type StdoutLogger struct {
	out            io.Writer
	currencySymbol string
	timeLayout     string
	outflow        *color.Color
	inflow         *color.Color
}

func NewStdoutLogger(out io.Writer, currencySymbol string, timeLayout string) *StdoutLogger {
	return &StdoutLogger{
		out:            out,
		currencySymbol: currencySymbol,
		timeLayout:     timeLayout,
		outflow:        color.New(color.FgRed),
		inflow:         color.New(color.FgGreen),
	}
}

func (l *StdoutLogger) LogTransaction(txType domain.TransactionType, accountNumber string, amount decimal.Decimal) {
	entry := newEntry(txType, accountNumber, amount)

	c := l.inflow
	if entry.Amount.IsNegative() {
		c = l.outflow
	}

	fmt.Fprintf(l.out, "[%s] %-16s %-12s ", entry.RecordedAt.Format(l.timeLayout), entry.Type, entry.AccountNumber)
	c.Fprintln(l.out, formatAmount(entry.Amount, l.currencySymbol))
}

func formatAmount(amount decimal.Decimal, symbol string) string {
	if amount.IsNegative() {
		return "-" + symbol + amount.Abs().StringFixed(2)
	}
	return symbol + amount.StringFixed(2)
}
