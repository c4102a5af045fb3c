package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func init() {
	// Load .env file if it exists (silent fail if not)
	_ = godotenv.Load()
}

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Snapshot SnapshotConfig
	Stock    StockConfig
	Log      LogConfig
}

// SnapshotConfig holds persistence settings.
type SnapshotConfig struct {
	Path string `envconfig:"INVENTORY_FILE" default:"inventory.json"`
}

// StockConfig holds stock reporting settings.
type StockConfig struct {
	LowStockThreshold int `envconfig:"LOW_STOCK_THRESHOLD" default:"5"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Pretty bool   `envconfig:"LOG_PRETTY" default:"true"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &cfg, nil
}
