package conformance

import (
	"path/filepath"
	"testing"

	"github.com/schemaprism/prism/internal/jsonvalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAdapter struct {
	dir      string
	patterns []string
}

func (s stubAdapter) Name() string            { return "stub" }
func (s stubAdapter) TestDirectory() string   { return s.dir }
func (s stubAdapter) FilePatterns() []string  { return s.patterns }
func (s stubAdapter) ShouldIncludeFile(string) bool { return true }

func (s stubAdapter) Decode(content []byte) (jsonvalue.Value, error) {
	return jsonvalue.ParseRaw(content)
}

// Validate is a trivial stand-in: valid whenever data deep-equals schema's
// "expect" field, or true if the schema carries no such field.
func (s stubAdapter) Validate(data, schema jsonvalue.Value) (ValidationResult, error) {
	expect, ok := schema.Field("expect")
	if !ok {
		return NewValidationResult(true, nil), nil
	}
	return NewValidationResult(jsonvalue.DeepEqual(data, expect), nil), nil
}

func writeCorpusFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, writeFile(path, content))
	return path
}

func TestSequentialRunnerDiscoverAndRun(t *testing.T) {
	dir := t.TempDir()
	writeCorpusFile(t, dir, "a.json", `[
		{
			"description": "group one",
			"schema": {"expect": 1},
			"tests": [
				{"description": "matches", "data": 1, "valid": true},
				{"description": "mismatches", "data": 2, "valid": true}
			]
		}
	]`)

	adapter := stubAdapter{dir: dir, patterns: []string{"*.json"}}
	runner := NewSequentialRunner(adapter)

	suite, err := runner.Run(nil)
	require.NoError(t, err)
	assert.Equal(t, "stub", suite.Name)
	require.Len(t, suite.Results, 2)

	assert.True(t, suite.Results[0].Passed)
	assert.False(t, suite.Results[1].Passed)
	assert.Equal(t, "stub:a:0:0", suite.Results[0].ID)
	assert.Equal(t, "stub:a:0:1", suite.Results[1].ID)
	assert.Equal(t, 1, suite.Passed())
	assert.Equal(t, 1, suite.Failed())
}

func TestSequentialRunnerFilterExcludesCase(t *testing.T) {
	dir := t.TempDir()
	writeCorpusFile(t, dir, "a.json", `[
		{
			"description": "group one",
			"schema": {},
			"tests": [
				{"description": "keep me", "data": 1, "valid": true},
				{"description": "skip me", "data": 2, "valid": true}
			]
		}
	]`)

	adapter := stubAdapter{dir: dir, patterns: []string{"*.json"}}
	runner := NewSequentialRunner(adapter)
	runner.Filter = FilterPolicy{ExcludeRegex: mustCompile(t, "skip me")}

	suite, err := runner.Run(nil)
	require.NoError(t, err)
	require.Len(t, suite.Results, 1)
	assert.Equal(t, "keep me", suite.Results[0].Description)
}

func TestSequentialRunnerCountCases(t *testing.T) {
	dir := t.TempDir()
	writeCorpusFile(t, dir, "a.json", `[
		{"description": "g", "schema": {}, "tests": [{"data": 1}, {"data": 2}]}
	]`)

	adapter := stubAdapter{dir: dir, patterns: []string{"*.json"}}
	runner := NewSequentialRunner(adapter)

	files, err := runner.DiscoverFiles()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, 2, runner.CountCases(files))
}
