package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/grey-teller/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BANK_NAME", "")
	t.Setenv("CURRENCY_SYMBOL", "")
	t.Setenv("TX_TIME_LAYOUT", "")
	t.Setenv("NO_COLOR", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "Grey Community Bank", cfg.BankName)
	assert.Equal(t, "$", cfg.CurrencySymbol)
	assert.Equal(t, time.RFC3339, cfg.TimeLayout)
	assert.False(t, cfg.NoColor)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BANK_NAME", "  Testville Savings  ")
	t.Setenv("CURRENCY_SYMBOL", "€")
	t.Setenv("TX_TIME_LAYOUT", time.Kitchen)
	t.Setenv("NO_COLOR", "1")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "Testville Savings", cfg.BankName)
	assert.Equal(t, "€", cfg.CurrencySymbol)
	assert.Equal(t, time.Kitchen, cfg.TimeLayout)
	assert.True(t, cfg.NoColor)
}
