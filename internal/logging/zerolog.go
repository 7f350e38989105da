// Package logging wraps zerolog the way the teacher's internal/logging
// package does: a Config struct, a trace-ID-injecting hook, and
// context-carried loggers, retargeted from plugin-protocol env vars to
// prism's own.
package logging

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// EnvTraceID and EnvLogLevel are the environment variables prism honors
// for cross-process trace correlation and default verbosity — used by
// worker subprocesses spawned by internal/workerhost, which inherit the
// parent's environment rather than receiving a trace ID as a CLI flag.
const (
	EnvTraceID  = "PRISM_TRACE_ID"
	EnvLogLevel = "PRISM_LOG_LEVEL"
)

type traceIDKey struct{}

// Config holds logging configuration settings.
type Config struct {
	Level      string
	Format     string
	Output     string
	File       string
	Caller     bool
	StackTrace bool
}

// TracingHook injects trace_id from the event's context into every entry.
type TracingHook struct{}

func (h TracingHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	ctx := e.GetCtx()
	if ctx == nil {
		return
	}
	if traceID, ok := ctx.Value(traceIDKey{}).(string); ok && traceID != "" {
		e.Str("trace_id", traceID)
	}
}

// LogPathResult reports where NewLoggerWithPath decided to write, so the
// CLI can tell the operator "Logging to: <path>" or warn about a fallback.
type LogPathResult struct {
	Logger         zerolog.Logger
	FilePath       string
	UsingFile      bool
	FallbackUsed   bool
	FallbackReason string
	file           *os.File
}

// NewLoggerWithPath builds a logger per cfg and reports the chosen destination.
func NewLoggerWithPath(cfg Config) LogPathResult {
	result := LogPathResult{}

	switch cfg.Output {
	case "file":
		if cfg.File != "" {
			file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if err != nil {
				result.FallbackUsed = true
				result.FallbackReason = err.Error()
				result.Logger = newLoggerWithWriter(cfg, os.Stderr)
			} else {
				result.Logger = newLoggerWithWriter(cfg, file)
				result.FilePath = cfg.File
				result.UsingFile = true
				result.file = file
			}
		} else {
			result.Logger = newLoggerWithWriter(cfg, os.Stderr)
		}
	case "stdout":
		result.Logger = newLoggerWithWriter(cfg, os.Stdout)
	default:
		result.Logger = newLoggerWithWriter(cfg, os.Stderr)
	}

	return result
}

// Close releases the log file handle, if one was opened.
func (r *LogPathResult) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// NewLogger builds a logger per cfg, discarding destination metadata.
func NewLogger(cfg Config) zerolog.Logger {
	return NewLoggerWithPath(cfg).Logger
}

// NewLoggerWithWriter builds a logger writing to an explicit writer —
// primarily for tests that capture output.
func NewLoggerWithWriter(cfg Config, writer io.Writer) zerolog.Logger {
	return newLoggerWithWriter(cfg, writer)
}

func newLoggerWithWriter(cfg Config, writer io.Writer) zerolog.Logger {
	output := writer
	if cfg.Format == "console" || cfg.Format == "text" {
		output = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.RFC3339, NoColor: false}
	}

	logger := zerolog.New(output).
		With().
		Timestamp().
		Logger().
		Hook(TracingHook{}).
		Level(parseLevel(cfg.Level))

	if cfg.Caller {
		logger = logger.With().Caller().Logger()
	}
	return logger
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		warnLogger := zerolog.New(os.Stderr)
		warnLogger.Warn().
			Str("provided_level", level).
			Str("fallback_level", "info").
			Msg("invalid log level, falling back to info")
		return zerolog.InfoLevel
	}
}

// GenerateTraceID creates a new ULID-format trace identifier.
func GenerateTraceID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// GetOrGenerateTraceID returns a trace ID from environment, context, or
// generates a new one. Priority: PRISM_TRACE_ID env var > context > generate.
func GetOrGenerateTraceID(ctx context.Context) string {
	if envTraceID := os.Getenv(EnvTraceID); envTraceID != "" {
		return envTraceID
	}
	if traceID := TraceIDFromContext(ctx); traceID != "" {
		return traceID
	}
	return GenerateTraceID()
}

// ContextWithTraceID stores a trace ID in the context.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext extracts the trace ID from context, or "".
func TraceIDFromContext(ctx context.Context) string {
	if traceID, ok := ctx.Value(traceIDKey{}).(string); ok {
		return traceID
	}
	return ""
}

// FromContext returns the logger embedded in ctx, or a default one built
// from PRISM_LOG_LEVEL if none is present.
func FromContext(ctx context.Context) *zerolog.Logger {
	logger := zerolog.Ctx(ctx)
	if logger.GetLevel() == zerolog.Disabled {
		level := zerolog.InfoLevel
		if envLevel := os.Getenv(EnvLogLevel); envLevel != "" {
			if parsedLevel, err := zerolog.ParseLevel(envLevel); err == nil {
				level = parsedLevel
			} else {
				fmt.Fprintf(os.Stderr, "Invalid %s '%s': %v, using default info level\n", EnvLogLevel, envLevel, err)
			}
		}
		defaultLogger := zerolog.New(os.Stderr).
			Level(level).
			With().
			Timestamp().
			Logger().
			Hook(TracingHook{})
		return &defaultLogger
	}
	return logger
}

var sensitivePatterns = []string{
	"api_key", "apikey", "api-key",
	"password", "passwd", "pwd",
	"secret", "token",
	"credential", "cred",
	"private_key", "privatekey",
	"auth", "authorization", "bearer",
}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, pattern := range sensitivePatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

// SafeStr adds a string field to e, redacting the value when key looks
// sensitive (api keys, tokens, credentials).
func SafeStr(e *zerolog.Event, key, value string) *zerolog.Event {
	if isSensitiveKey(key) {
		return e.Str(key, "[REDACTED]")
	}
	return e.Str(key, value)
}

// ComponentLogger derives a logger with a fixed "component" field.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// PrintLogPathMessage writes "Logging to: <path>" to w, or nothing if path is empty.
func PrintLogPathMessage(w io.Writer, path string) {
	if path == "" {
		return
	}
	_, _ = io.WriteString(w, "Logging to: "+path+"\n")
}

// PrintFallbackWarning writes a one-line stderr-fallback warning to w.
func PrintFallbackWarning(w io.Writer, reason string) {
	msg := "Warning: Could not write to log file, falling back to stderr"
	if reason != "" {
		msg += " (" + reason + ")"
	}
	_, _ = io.WriteString(w, msg+"\n")
}
