package jsonschemav6

import (
	"testing"

	"github.com/schemaprism/prism/internal/jsonvalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapterValidatesAgainstTypeSchema(t *testing.T) {
	adapter := New(t.TempDir())

	schema, err := jsonvalue.ParseRaw([]byte(`{"type": "integer"}`))
	require.NoError(t, err)

	valid, err := jsonvalue.ParseRaw([]byte(`5`))
	require.NoError(t, err)
	result, err := adapter.Validate(valid, schema)
	require.NoError(t, err)
	assert.True(t, result.IsValid())

	invalid, err := jsonvalue.ParseRaw([]byte(`"not a number"`))
	require.NoError(t, err)
	result, err = adapter.Validate(invalid, schema)
	require.NoError(t, err)
	assert.False(t, result.IsValid())
	assert.NotEmpty(t, result.Errors())
}

func TestAdapterName(t *testing.T) {
	adapter := New("/tmp/corpus")
	assert.Equal(t, "jsonschema-v6", adapter.Name())
	assert.Equal(t, "/tmp/corpus", adapter.TestDirectory())
	assert.Equal(t, []string{"*.json"}, adapter.FilePatterns())
}

func TestAdapterExcludesSnapshotAndBaselineFiles(t *testing.T) {
	adapter := New(t.TempDir())
	assert.False(t, adapter.ShouldIncludeFile("/corpus/suite.snapshot.json"))
	assert.False(t, adapter.ShouldIncludeFile("/corpus/suite.baseline.json"))
	assert.True(t, adapter.ShouldIncludeFile("/corpus/strings.json"))
}
