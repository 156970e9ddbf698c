package config

import (
	"os"
	"strings"
	"time"
)

const defaultBankName = "Grey Community Bank"
const defaultCurrencySymbol = "$"
const defaultTimeLayout = time.RFC3339

type Config struct {
	BankName       string
	CurrencySymbol string
	TimeLayout     string
	NoColor        bool
}

func Load() (Config, error) {
	bankName := strings.TrimSpace(os.Getenv("BANK_NAME"))
	if bankName == "" {
		bankName = defaultBankName
	}

	currencySymbol := strings.TrimSpace(os.Getenv("CURRENCY_SYMBOL"))
	if currencySymbol == "" {
		currencySymbol = defaultCurrencySymbol
	}

	timeLayout := strings.TrimSpace(os.Getenv("TX_TIME_LAYOUT"))
	if timeLayout == "" {
		timeLayout = defaultTimeLayout
	}

	// NO_COLOR follows the informal convention: any non-empty value disables
	// colored output.
	noColor := strings.TrimSpace(os.Getenv("NO_COLOR")) != ""

	return Config{
		BankName:       bankName,
		CurrencySymbol: currencySymbol,
		TimeLayout:     timeLayout,
		NoColor:        noColor,
	}, nil
}
