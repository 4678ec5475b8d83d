// GTIN MCP Server - A Model Context Protocol server for GTIN validation
// Provides tools for checking, normalizing, and identifying GTIN-8, GTIN-12,
// GTIN-13 and GTIN-14 codes
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"runtime/debug"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/gtin-mcp-server/internal/validator"
	"github.com/olgasafonova/gtin-mcp-server/tools"
	"github.com/olgasafonova/gtin-mcp-server/tracing"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ServerName    = "gtin-mcp-server"
	ServerVersion = "1.0.0"
)

// recoverPanic logs a recovered panic instead of crashing the process.
func recoverPanic(logger *slog.Logger, operation string) {
	if r := recover(); r != nil {
		logger.Error("Panic recovered",
			"operation", operation,
			"panic", r,
			"stack", string(debug.Stack()))
	}
}

func main() {
	// Load configuration first so the log level applies from the start
	cfg := validator.LoadConfig()

	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// Set up tracing; the server keeps running if the exporter can't start
	shutdown, err := tracing.Setup(context.Background(), tracing.DefaultConfig())
	if err != nil {
		logger.Warn("Tracing setup failed, continuing without tracing", "error", err)
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Warn("Tracing shutdown failed", "error", err)
			}
		}()
	}

	// Create the validation service
	svc := validator.NewService(cfg)

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger: logger,
		Instructions: `GTIN MCP Server provides tools for validating and repairing GTIN barcodes (EAN-8, UPC-A, EAN-13, GTIN-14).

Available tools:
- gtin_check: Validate one code against a specific length (8, 12, 13 or 14)
- gtin_fix: Normalize a code, trimming whitespace and restoring lost leading zeros
- gtin_check_digit: Compute the check digit for a payload
- gtin_detect: Identify which GTIN lengths accept a code
- gtin_batch_check: Validate a list of codes in one call

Codes are strings of digits. Keep leading zeros: a UPC that went through a
spreadsheet has often lost them, use gtin_fix to restore.

Configure via environment variables:
- GTIN_MCP_LOG_LEVEL: debug, info, warn or error (default info)
- GTIN_MCP_BATCH_LIMIT: max codes per batch call (default 100)
- GTIN_MCP_METRICS_ADDR: address for the Prometheus endpoint, empty disables it`,
	})

	// Register all tools
	tools.NewHandlerRegistry(svc, logger).RegisterAll(server)

	// Optional Prometheus listener
	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr, logger)
	}

	// Run server on stdio transport
	ctx := context.Background()
	logger.Info("Starting GTIN MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"batch_limit", cfg.BatchLimit,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// serveMetrics exposes Prometheus metrics over HTTP behind the security
// middleware.
func serveMetrics(addr string, logger *slog.Logger) {
	defer recoverPanic(logger, "metrics listener")

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	handler := NewSecurityMiddleware(mux, logger, SecurityConfig{
		RateLimit:   120,
		MaxBodySize: 1 << 20,
	})

	logger.Info("Metrics listener started", "addr", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("Metrics listener failed", "error", err)
	}
}
