// Package console drives the bank service from a line-based terminal menu.
// It is deliberately thin: every business rule lives behind the service
// interface, the console only parses input and renders outcomes.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"github.com/api-sage/grey-teller/internal/adapter/console/models"
	"github.com/api-sage/grey-teller/internal/commons"
	"github.com/api-sage/grey-teller/internal/usecase/service_interfaces"
)

type Console struct {
	svc      service_interfaces.BankService
	scanner  *bufio.Scanner
	out      io.Writer
	bankName string

	title   *color.Color
	success *color.Color
	warn    *color.Color
	fail    *color.Color
}

func New(svc service_interfaces.BankService, in io.Reader, out io.Writer, bankName string) *Console {
	return &Console{
		svc:      svc,
		scanner:  bufio.NewScanner(in),
		out:      out,
		bankName: bankName,
		title:    color.New(color.FgCyan, color.Bold),
		success:  color.New(color.FgGreen),
		warn:     color.New(color.FgYellow),
		fail:     color.New(color.FgRed),
	}
}

// Run loops over the menu until the user exits or input reaches EOF. Service
// errors are printed and the loop continues; they never terminate the
// session.
func (c *Console) Run(ctx context.Context) error {
	c.title.Fprintf(c.out, "=== %s ===\n", c.bankName)

	for {
		c.printMenu()

		choice, ok := c.readLine("Select an option: ")
		if !ok {
			return c.scanner.Err()
		}

		switch strings.TrimSpace(choice) {
		case "1":
			c.handleCreateAccount(ctx)
		case "2":
			c.handleDeposit(ctx)
		case "3":
			c.handleWithdraw(ctx)
		case "4":
			c.handleTransfer(ctx)
		case "5":
			c.handleBalance(ctx)
		case "6":
			fmt.Fprintln(c.out, "Goodbye.")
			return nil
		default:
			c.warn.Fprintln(c.out, "invalid option, choose 1-6")
		}
	}
}

func (c *Console) printMenu() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "1) Create account")
	fmt.Fprintln(c.out, "2) Deposit")
	fmt.Fprintln(c.out, "3) Withdraw")
	fmt.Fprintln(c.out, "4) Transfer")
	fmt.Fprintln(c.out, "5) Check balance")
	fmt.Fprintln(c.out, "6) Exit")
}

func (c *Console) handleCreateAccount(ctx context.Context) {
	number, ok := c.readLine("Account number: ")
	if !ok {
		return
	}
	owner, ok := c.readLine("Owner name: ")
	if !ok {
		return
	}
	initial, ok := c.readAmount("Initial balance: ")
	if !ok {
		return
	}

	resp, err := c.svc.CreateAccount(ctx, models.CreateAccountRequest{
		AccountNumber:  number,
		OwnerName:      owner,
		InitialBalance: initial,
	})
	if err != nil {
		c.fail.Fprintln(c.out, err.Error())
		return
	}

	c.success.Fprintln(c.out, resp.Message)
	if resp.Data != nil {
		fmt.Fprintf(c.out, "  %s (%s): balance %s\n", resp.Data.AccountNumber, resp.Data.OwnerName, resp.Data.Balance)
	}
}

func (c *Console) handleDeposit(ctx context.Context) {
	number, ok := c.readLine("Account number: ")
	if !ok {
		return
	}
	amount, ok := c.readAmount("Amount: ")
	if !ok {
		return
	}

	resp, err := c.svc.Deposit(ctx, models.DepositRequest{AccountNumber: number, Amount: amount})
	c.renderBalanceOutcome(resp, err)
}

func (c *Console) handleWithdraw(ctx context.Context) {
	number, ok := c.readLine("Account number: ")
	if !ok {
		return
	}
	amount, ok := c.readAmount("Amount: ")
	if !ok {
		return
	}

	resp, err := c.svc.Withdraw(ctx, models.WithdrawRequest{AccountNumber: number, Amount: amount})
	c.renderBalanceOutcome(resp, err)
}

func (c *Console) handleTransfer(ctx context.Context) {
	source, ok := c.readLine("From account: ")
	if !ok {
		return
	}
	destination, ok := c.readLine("To account: ")
	if !ok {
		return
	}
	amount, ok := c.readAmount("Amount: ")
	if !ok {
		return
	}

	resp, err := c.svc.Transfer(ctx, models.TransferRequest{
		SourceAccountNumber:      source,
		DestinationAccountNumber: destination,
		Amount:                   amount,
	})
	if err != nil {
		c.fail.Fprintln(c.out, err.Error())
		return
	}
	if !resp.Success {
		c.warn.Fprintln(c.out, resp.Message)
		return
	}

	c.success.Fprintln(c.out, resp.Message)
	if resp.Data != nil {
		fmt.Fprintf(c.out, "  %s: balance %s\n", resp.Data.SourceAccountNumber, resp.Data.SourceBalance)
		fmt.Fprintf(c.out, "  %s: balance %s\n", resp.Data.DestinationAccountNumber, resp.Data.DestinationBalance)
	}
}

func (c *Console) handleBalance(ctx context.Context) {
	number, ok := c.readLine("Account number: ")
	if !ok {
		return
	}

	resp, err := c.svc.GetBalance(ctx, number)
	c.renderBalanceOutcome(resp, err)
}

func (c *Console) renderBalanceOutcome(resp commons.Response[models.BalanceResponse], err error) {
	if err != nil {
		c.fail.Fprintln(c.out, err.Error())
		return
	}
	if !resp.Success {
		c.warn.Fprintln(c.out, resp.Message)
		return
	}

	c.success.Fprintln(c.out, resp.Message)
	if resp.Data != nil {
		fmt.Fprintf(c.out, "  %s: balance %s\n", resp.Data.AccountNumber, resp.Data.Balance)
	}
}

func (c *Console) readLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.scanner.Scan() {
		return "", false
	}
	return c.scanner.Text(), true
}

// readAmount parses a decimal amount; on a malformed value the requested
// operation is skipped and an "invalid amount" message shown instead.
func (c *Console) readAmount(prompt string) (decimal.Decimal, bool) {
	line, ok := c.readLine(prompt)
	if !ok {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(line))
	if err != nil {
		c.warn.Fprintln(c.out, "invalid amount")
		return decimal.Zero, false
	}

	return amount, true
}
