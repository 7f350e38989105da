package specvalidate

import (
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemaprism/prism/internal/jsonvalue"
)

func TestValidateSchemaAcceptsWellFormedSchema(t *testing.T) {
	schema, err := jsonvalue.ParseRaw([]byte(`{"type": "string", "minLength": 1}`))
	require.NoError(t, err)

	result := ValidateSchema(schema, jsonschema.Draft2020)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateSchemaRejectsMalformedKeyword(t *testing.T) {
	schema, err := jsonvalue.ParseRaw([]byte(`{"type": "not-a-real-type"}`))
	require.NoError(t, err)

	result := ValidateSchema(schema, jsonschema.Draft2020)
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Errors)
}

func TestValidateFileDecodesAndValidates(t *testing.T) {
	result, err := ValidateFile([]byte(`{"type": "object"}`), jsonschema.Draft2020)
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidateFileRejectsInvalidJSON(t *testing.T) {
	_, err := ValidateFile([]byte(`{not json`), jsonschema.Draft2020)
	assert.Error(t, err)
}
