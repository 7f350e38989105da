// Package logging provides structured logging with distributed tracing
// support and an audit trail for harness invocations.
//
// prism uses zerolog for high-performance structured logging with
// automatic trace ID propagation through contexts.
//
// # Log Levels
//
//   - TRACE: per-case validator dispatch detail
//   - DEBUG: file discovery, batching, worker lifecycle
//   - INFO: high-level operations (run/fuzz/diff start and end)
//   - WARN: recoverable issues (cache miss, fallback to stderr)
//   - ERROR: failures needing attention
//
// # Trace ID Management
//
// Trace IDs are automatically generated or extracted from context:
//
//	traceID := logging.GetOrGenerateTraceID(ctx)
//	ctx = logging.ContextWithTraceID(ctx, traceID)
//
// # Component Loggers
//
// Create sub-loggers for components:
//
//	logger = logging.ComponentLogger(logger, "conformance")
//
// # Configuration
//
// Logging can be configured via:
//   - CLI flag (--debug)
//   - Environment variables (PRISM_LOG_LEVEL, PRISM_TRACE_ID)
//   - Config file (~/.prism/config.yaml)
package logging
