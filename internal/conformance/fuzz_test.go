package conformance

import (
	"math/rand"
	"testing"

	"github.com/schemaprism/prism/internal/jsonvalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type alwaysValidAdapter struct{}

func (alwaysValidAdapter) Name() string                  { return "always-valid" }
func (alwaysValidAdapter) TestDirectory() string         { return "" }
func (alwaysValidAdapter) FilePatterns() []string        { return nil }
func (alwaysValidAdapter) ShouldIncludeFile(string) bool { return true }
func (alwaysValidAdapter) Decode(b []byte) (jsonvalue.Value, error) {
	return jsonvalue.ParseRaw(b)
}
func (alwaysValidAdapter) Validate(jsonvalue.Value, jsonvalue.Value) (ValidationResult, error) {
	return NewValidationResult(true, nil), nil
}

func TestFuzzEngineFixedEdgeCaseCountAndIDs(t *testing.T) {
	engine := NewFuzzEngine(alwaysValidAdapter{}, rand.NewSource(1))
	suite := engine.Fuzz(0)

	require.Len(t, suite.Results, 24)
	assert.Equal(t, "edge-case-0", suite.Results[0].ID)
	assert.Equal(t, "edge-case-23", suite.Results[23].ID)
	assert.Equal(t, "always-valid (fuzzed)", suite.Name)
	for _, r := range suite.Results {
		assert.True(t, r.Passed)
		assert.Equal(t, []string{"fuzzed"}, r.Tags)
	}
}

func TestFuzzEngineRandomCasesAppendAfterFixed(t *testing.T) {
	engine := NewFuzzEngine(alwaysValidAdapter{}, rand.NewSource(1))
	suite := engine.Fuzz(5)

	require.Len(t, suite.Results, 29)
	assert.Equal(t, "fuzz-0", suite.Results[24].ID)
	assert.Equal(t, "fuzz-4", suite.Results[28].ID)
}

type explodingAdapter struct{ alwaysValidAdapter }

func (explodingAdapter) Validate(jsonvalue.Value, jsonvalue.Value) (ValidationResult, error) {
	return nil, assertError("boom")
}

type assertError string

func (e assertError) Error() string { return string(e) }

func TestFuzzEngineEdgeCaseErrorRecordsFailure(t *testing.T) {
	engine := NewFuzzEngine(explodingAdapter{}, rand.NewSource(1))
	suite := engine.Fuzz(0)

	for _, r := range suite.Results {
		assert.False(t, r.Passed)
		assert.False(t, r.Expected)
		assert.False(t, r.Actual)
		assert.Equal(t, "boom", r.Error)
		assert.Equal(t, []string{"fuzzed", "error"}, r.Tags)
	}
}
