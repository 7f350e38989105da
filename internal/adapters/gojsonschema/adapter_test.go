package gojsonschema

import (
	"testing"

	"github.com/schemaprism/prism/internal/jsonvalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapterValidatesAgainstTypeSchema(t *testing.T) {
	adapter := New(t.TempDir())

	schema, err := jsonvalue.ParseRaw([]byte(`{"type": "string"}`))
	require.NoError(t, err)

	valid, err := jsonvalue.ParseRaw([]byte(`"hello"`))
	require.NoError(t, err)
	result, err := adapter.Validate(valid, schema)
	require.NoError(t, err)
	assert.True(t, result.IsValid())

	invalid, err := jsonvalue.ParseRaw([]byte(`42`))
	require.NoError(t, err)
	result, err = adapter.Validate(invalid, schema)
	require.NoError(t, err)
	assert.False(t, result.IsValid())
	assert.NotEmpty(t, result.Errors())
}

func TestAdapterName(t *testing.T) {
	adapter := New("/tmp/corpus")
	assert.Equal(t, "gojsonschema", adapter.Name())
}
