package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoggerWithWriterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(Config{Level: "warn", Format: "json"}, &buf)

	logger.Info().Msg("should be dropped")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("should appear")
	assert.Contains(t, buf.String(), "should appear")
}

func TestTracingHookInjectsTraceID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(Config{Level: "info", Format: "json"}, &buf)

	ctx := ContextWithTraceID(context.Background(), "trace-123")
	logger.Info().Ctx(ctx).Msg("hello")

	assert.Contains(t, buf.String(), "trace-123")
}

func TestGetOrGenerateTraceIDPrefersContext(t *testing.T) {
	ctx := ContextWithTraceID(context.Background(), "from-context")
	assert.Equal(t, "from-context", GetOrGenerateTraceID(ctx))
}

func TestGetOrGenerateTraceIDGeneratesWhenAbsent(t *testing.T) {
	id := GetOrGenerateTraceID(context.Background())
	assert.NotEmpty(t, id)
}

func TestSafeStrRedactsSensitiveKeys(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(Config{Level: "info", Format: "json"}, &buf)

	event := logger.Info()
	SafeStr(event, "api_key", "super-secret")
	event.Msg("done")

	assert.Contains(t, buf.String(), "[REDACTED]")
	assert.NotContains(t, buf.String(), "super-secret")
}

func TestPrintLogPathMessage(t *testing.T) {
	var buf strings.Builder
	PrintLogPathMessage(&buf, "/tmp/prism.log")
	assert.Equal(t, "Logging to: /tmp/prism.log\n", buf.String())

	buf.Reset()
	PrintLogPathMessage(&buf, "")
	assert.Empty(t, buf.String())
}
