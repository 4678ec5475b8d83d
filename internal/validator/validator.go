// Package validator exposes GTIN validation operations in the Args/Result
// shape the MCP tool layer expects. It dispatches each request to the
// per-length package for the requested GTIN length and performs no I/O.
package validator

import (
	"github.com/olgasafonova/gtin-mcp-server/gtin12"
	"github.com/olgasafonova/gtin-mcp-server/gtin13"
	"github.com/olgasafonova/gtin-mcp-server/gtin14"
	"github.com/olgasafonova/gtin-mcp-server/gtin8"
)

// Service implements the MCP tool operations.
type Service struct {
	batchLimit int
}

// NewService creates a Service from config. A non-positive batch limit
// falls back to DefaultBatchLimit.
func NewService(cfg Config) *Service {
	limit := cfg.BatchLimit
	if limit <= 0 {
		limit = DefaultBatchLimit
	}
	return &Service{batchLimit: limit}
}

// checkLength runs the Check of the per-length package for length.
// The caller has already validated length.
func checkLength(code string, length int) bool {
	switch length {
	case 8:
		return gtin8.Check(code)
	case 12:
		return gtin12.Check(code)
	case 13:
		return gtin13.Check(code)
	case 14:
		return gtin14.Check(code)
	}
	return false
}

// fixLength runs the Fix of the per-length package for length.
func fixLength(code string, length int) (string, error) {
	switch length {
	case 8:
		return gtin8.Fix(code)
	case 12:
		return gtin12.Fix(code)
	case 13:
		return gtin13.Fix(code)
	default:
		return gtin14.Fix(code)
	}
}
