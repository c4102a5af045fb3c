package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-tracker/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "inventory.json", cfg.Snapshot.Path)
	assert.Equal(t, 5, cfg.Stock.LowStockThreshold)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("INVENTORY_FILE", "/tmp/stock.json")
	t.Setenv("LOW_STOCK_THRESHOLD", "10")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/stock.json", cfg.Snapshot.Path)
	assert.Equal(t, 10, cfg.Stock.LowStockThreshold)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("LOW_STOCK_THRESHOLD", "not-a-number")

	_, err := config.Load()
	assert.Error(t, err)
}
