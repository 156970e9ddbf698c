package main

import (
	"context"
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/api-sage/grey-teller/internal/adapter/console"
	"github.com/api-sage/grey-teller/internal/adapter/repository/memory"
	"github.com/api-sage/grey-teller/internal/adapter/txlog"
	"github.com/api-sage/grey-teller/internal/config"
	"github.com/api-sage/grey-teller/internal/logger"
	"github.com/api-sage/grey-teller/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	accountRepo := memory.NewAccountRepository()
	journal := txlog.NewJournal()
	txLogger := txlog.NewMultiLogger(
		txlog.NewStdoutLogger(os.Stdout, cfg.CurrencySymbol, cfg.TimeLayout),
		journal,
	)

	svc := services.NewBankService(accountRepo, txLogger)
	ui := console.New(svc, os.Stdin, os.Stdout, cfg.BankName)

	if err := ui.Run(context.Background()); err != nil {
		log.Fatalf("console session failed: %v", err)
	}

	logger.Info("session ended", logger.Fields{
		"transactions": journal.Len(),
	})
}
