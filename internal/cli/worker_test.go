package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemaprism/prism/internal/cli"
	"github.com/schemaprism/prism/internal/conformance"
	"github.com/schemaprism/prism/internal/workerhost"
)

const workerCorpusFile = `[
	{
		"description": "type constraint",
		"schema": {"type": "string"},
		"tests": [
			{"description": "a string is valid", "data": "hi", "valid": true},
			{"description": "a number is invalid", "data": 1, "valid": false}
		]
	}
]`

func TestWorkerCmd_RunsSubsetAndWritesResults(t *testing.T) {
	corpusDir := t.TempDir()
	caseFile := filepath.Join(corpusDir, "types.json")
	require.NoError(t, os.WriteFile(caseFile, []byte(workerCorpusFile), 0o600))

	inputDir := t.TempDir()
	inputPath := filepath.Join(inputDir, "input.json")
	outputPath := filepath.Join(inputDir, "output.json")

	args := workerhost.WorkerArgs{Adapter: "jsonschema-v6", Files: []string{caseFile}}
	encoded, err := json.Marshal(args)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(inputPath, encoded, 0o600))

	cmd := cli.NewWorkerCmd()
	cmd.SetArgs([]string{"--input", inputPath, "--output", outputPath})
	require.NoError(t, cmd.Execute())

	raw, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	var results []conformance.TestResult
	require.NoError(t, json.Unmarshal(raw, &results))
	require.Len(t, results, 2)
	assert.True(t, results[0].Passed)
	assert.True(t, results[1].Passed)
}

func TestWorkerCmd_UnknownAdapter(t *testing.T) {
	inputDir := t.TempDir()
	inputPath := filepath.Join(inputDir, "input.json")
	outputPath := filepath.Join(inputDir, "output.json")

	args := workerhost.WorkerArgs{Adapter: "does-not-exist", Files: nil}
	encoded, err := json.Marshal(args)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(inputPath, encoded, 0o600))

	cmd := cli.NewWorkerCmd()
	cmd.SetArgs([]string{"--input", inputPath, "--output", outputPath})
	assert.Error(t, cmd.Execute())
}
