package console_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/grey-teller/internal/adapter/console"
	"github.com/api-sage/grey-teller/internal/adapter/repository/memory"
	"github.com/api-sage/grey-teller/internal/adapter/txlog"
	"github.com/api-sage/grey-teller/internal/usecase/services"
)

func runSession(t *testing.T, input string) string {
	t.Helper()
	color.NoColor = true

	svc := services.NewBankService(memory.NewAccountRepository(), txlog.NewJournal())
	var out bytes.Buffer
	ui := console.New(svc, strings.NewReader(input), &out, "Grey Community Bank")

	require.NoError(t, ui.Run(context.Background()))
	return out.String()
}

func TestSessionHappyPath(t *testing.T) {
	input := strings.Join([]string{
		"1", "A1", "Alice", "100", // create
		"2", "A1", "25.50", // deposit
		"5", "A1", // check balance
		"6", // exit
	}, "\n") + "\n"

	out := runSession(t, input)

	assert.Contains(t, out, "=== Grey Community Bank ===")
	assert.Contains(t, out, "account created successfully")
	assert.Contains(t, out, "deposit successful")
	assert.Contains(t, out, "A1: balance 125.50")
	assert.Contains(t, out, "Goodbye.")
}

func TestSessionInvalidAmountSkipsOperation(t *testing.T) {
	input := strings.Join([]string{
		"1", "A1", "Alice", "100",
		"2", "A1", "abc", // malformed amount
		"5", "A1",
		"6",
	}, "\n") + "\n"

	out := runSession(t, input)

	assert.Contains(t, out, "invalid amount")
	// The deposit was skipped, so the balance is untouched.
	assert.Contains(t, out, "A1: balance 100.00")
}

func TestSessionServiceErrorsKeepLoopAlive(t *testing.T) {
	input := strings.Join([]string{
		"5", "ZZZ", // unknown account
		"1", "A1", "Alice", "50",
		"3", "A1", "1000", // insufficient funds
		"9",  // invalid menu option
		"6",
	}, "\n") + "\n"

	out := runSession(t, input)

	assert.Contains(t, out, "account not found")
	assert.Contains(t, out, "insufficient funds")
	assert.Contains(t, out, "invalid option, choose 1-6")
	assert.Contains(t, out, "Goodbye.")
}

func TestSessionTransferRendersBothBalances(t *testing.T) {
	input := strings.Join([]string{
		"1", "A1", "Alice", "100",
		"1", "B1", "Bob", "0",
		"4", "A1", "B1", "40",
		"6",
	}, "\n") + "\n"

	out := runSession(t, input)

	assert.Contains(t, out, "transfer successful")
	assert.Contains(t, out, "A1: balance 60.00")
	assert.Contains(t, out, "B1: balance 40.00")
}

func TestSessionEndsCleanlyOnEOF(t *testing.T) {
	color.NoColor = true

	svc := services.NewBankService(memory.NewAccountRepository(), txlog.NewJournal())
	ui := console.New(svc, strings.NewReader("1\nA1\n"), io.Discard, "Grey Community Bank")

	require.NoError(t, ui.Run(context.Background()))
}
