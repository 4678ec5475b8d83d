package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/gtin-mcp-server/internal/validator"
	"github.com/olgasafonova/gtin-mcp-server/metrics"
	"github.com/olgasafonova/gtin-mcp-server/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	svc    *validator.Service
	logger *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(svc *validator.Service, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		svc:    svc,
		logger: logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	case "Check":
		register(h, server, tool, spec, h.svc.CheckMCP)
	case "Fix":
		register(h, server, tool, spec, h.svc.FixMCP)
	case "CheckDigit":
		register(h, server, tool, spec, h.svc.CheckDigitMCP)
	case "Detect":
		register(h, server, tool, spec, h.svc.DetectMCP)
	case "BatchCheck":
		register(h, server, tool, spec, h.svc.BatchCheckMCP)
	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the service method with panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, Result, error) {
		defer h.recoverPanic(spec.Name)

		// Start trace span
		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		tracing.AddToolAttributes(span, spec.Name, spec.Category)
		span.SetAttributes(attribute.Bool("mcp.tool.readonly", spec.ReadOnly))
		addCodeAttributes(span, args)

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		recordOutcome(result)
		h.logExecution(spec, args, result)
		return nil, result, nil
	})
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// addCodeAttributes attaches code and length span attributes extracted
// from the typed tool arguments.
func addCodeAttributes(span trace.Span, args any) {
	switch a := args.(type) {
	case validator.CheckArgs:
		tracing.AddCodeAttributes(span, a.Length, a.Code)
	case validator.FixArgs:
		tracing.AddCodeAttributes(span, a.Length, a.Code)
	case validator.CheckDigitArgs:
		tracing.AddCodeAttributes(span, a.Length, "")
	case validator.DetectArgs:
		tracing.AddCodeAttributes(span, 0, a.Code)
	case validator.BatchCheckArgs:
		tracing.AddCodeAttributes(span, a.Length, "")
	}
}

// recordOutcome records validation metrics from the typed tool result.
func recordOutcome(result any) {
	switch r := result.(type) {
	case validator.CheckResult:
		metrics.RecordCheck(r.Length, r.Valid)
	case validator.FixResult:
		outcome := "ok"
		if !r.Fixed {
			outcome = r.Error
		}
		metrics.RecordFix(r.Length, outcome)
	case validator.DetectResult:
		metrics.RecordDetect(r.Count)
	case validator.BatchCheckResult:
		metrics.RecordBatch(r.Length, r.Total, r.Valid)
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name}

	// Add extractable fields from args using type assertions
	switch a := args.(type) {
	case validator.CheckArgs:
		attrs = append(attrs, "code", a.Code, "length", a.Length)
	case validator.FixArgs:
		attrs = append(attrs, "code", a.Code, "length", a.Length)
	case validator.CheckDigitArgs:
		attrs = append(attrs, "payload", a.Payload)
	case validator.DetectArgs:
		attrs = append(attrs, "code", a.Code)
	case validator.BatchCheckArgs:
		attrs = append(attrs, "codes", len(a.Codes), "length", a.Length, "fix", a.Fix)
	}

	// Add extractable fields from result
	switch r := result.(type) {
	case validator.CheckResult:
		attrs = append(attrs, "valid", r.Valid)
	case validator.FixResult:
		attrs = append(attrs, "fixed", r.Fixed, "changed", r.Changed)
	case validator.CheckDigitResult:
		attrs = append(attrs, "check_digit", r.CheckDigit)
	case validator.DetectResult:
		attrs = append(attrs, "matches", r.Count)
	case validator.BatchCheckResult:
		attrs = append(attrs, "valid", r.Valid, "invalid", r.Invalid)
	}

	h.logger.Info("Tool executed", attrs...)
}
