package validator

import (
	"log/slog"
	"os"
	"strconv"
)

// DefaultBatchLimit is the maximum number of codes accepted per batch
// request unless overridden by configuration.
const DefaultBatchLimit = 100

// Config holds server settings.
type Config struct {
	// LogLevel for the structured logger on stderr
	LogLevel slog.Level

	// BatchLimit caps the number of codes per gtin_batch_check call
	BatchLimit int

	// MetricsAddr is the optional listen address for the Prometheus
	// endpoint (e.g. "localhost:9464"). Empty disables the listener.
	MetricsAddr string
}

// LoadConfig loads configuration from environment variables. Unset or
// malformed variables fall back to defaults.
func LoadConfig() Config {
	cfg := Config{
		LogLevel:   slog.LevelInfo,
		BatchLimit: DefaultBatchLimit,
	}

	if lvl := os.Getenv("GTIN_MCP_LOG_LEVEL"); lvl != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(lvl)); err == nil {
			cfg.LogLevel = level
		}
	}

	if limit := os.Getenv("GTIN_MCP_BATCH_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			cfg.BatchLimit = n
		}
	}

	cfg.MetricsAddr = os.Getenv("GTIN_MCP_METRICS_ADDR")

	return cfg
}
