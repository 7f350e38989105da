package logging

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLoggerDisabledByDefault(t *testing.T) {
	logger := NewAuditLogger(AuditLoggerConfig{Enabled: false})
	assert.False(t, logger.Enabled())
}

func TestAuditLoggerWritesSuccessEntry(t *testing.T) {
	var buf bytes.Buffer
	logger := NewAuditLogger(AuditLoggerConfig{Enabled: true, Writer: &buf})
	require.True(t, logger.Enabled())

	entry := NewAuditEntry("run", "trace-1").
		WithDuration(time.Now().Add(-time.Second)).
		WithSuccess(10, 8)
	logger.Log(context.Background(), *entry)

	out := buf.String()
	assert.Contains(t, out, `"command":"run"`)
	assert.Contains(t, out, `"result_count":10`)
	assert.Contains(t, out, `"passed_count":8`)
}

func TestAuditLoggerRedactsSensitiveParameters(t *testing.T) {
	var buf bytes.Buffer
	logger := NewAuditLogger(AuditLoggerConfig{Enabled: true, Writer: &buf})

	entry := NewAuditEntry("run", "trace-2").
		WithParameters(map[string]string{"api_key": "secret-value", "adapter": "jsonschema-v6"}).
		WithSuccess(1, 1)
	logger.Log(context.Background(), *entry)

	out := buf.String()
	assert.Contains(t, out, "[REDACTED]")
	assert.NotContains(t, out, "secret-value")
	assert.Contains(t, out, "jsonschema-v6")
}

func TestNoOpAuditLoggerDoesNothing(t *testing.T) {
	logger := NoOpAuditLogger()
	assert.False(t, logger.Enabled())
	logger.Log(context.Background(), AuditEntry{}) // must not panic
}

func TestContextWithAuditLoggerRoundTrip(t *testing.T) {
	inner := NewAuditLogger(AuditLoggerConfig{Enabled: true})
	ctx := ContextWithAuditLogger(context.Background(), inner)
	assert.Same(t, inner, AuditLoggerFromContext(ctx))
}

func TestAuditLoggerFromContextDefaultsToNoOp(t *testing.T) {
	logger := AuditLoggerFromContext(context.Background())
	assert.False(t, logger.Enabled())
}
