package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemaprism/prism/internal/cli"
)

const runCorpusFile = `[
	{
		"description": "type constraint",
		"schema": {"type": "string"},
		"tests": [
			{"description": "a string is valid", "data": "hi", "valid": true},
			{"description": "a number is invalid", "data": 1, "valid": false}
		]
	}
]`

func writeRunCorpus(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "types.json"), []byte(runCorpusFile), 0o600))
	return dir
}

func TestRunCmd_AllPass(t *testing.T) {
	corpusDir := writeRunCorpus(t)

	cmd := cli.NewRunCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--corpus", corpusDir, "--adapter", "jsonschema-v6"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "2 total, 2 passed, 0 failed")
}

func TestRunCmd_FilterNarrowsToOneCase(t *testing.T) {
	corpusDir := writeRunCorpus(t)

	cmd := cli.NewRunCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--corpus", corpusDir, "--adapter", "jsonschema-v6", "--filter", "invalid"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "1 total, 1 passed, 0 failed")
}

func TestRunCmd_UnknownAdapter(t *testing.T) {
	corpusDir := writeRunCorpus(t)

	cmd := cli.NewRunCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--corpus", corpusDir, "--adapter", "nonexistent"})

	assert.Error(t, cmd.Execute())
}

func TestRunCmd_SnapshotAndBaselinePersist(t *testing.T) {
	corpusDir := writeRunCorpus(t)
	t.Chdir(t.TempDir())

	cmd := cli.NewRunCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"--corpus", corpusDir, "--adapter", "jsonschema-v6",
		"--snapshot", "--baseline", "default",
	})
	require.NoError(t, cmd.Execute())

	snapshots, err := filepath.Glob(".prism/snapshots/*.json")
	require.NoError(t, err)
	assert.NotEmpty(t, snapshots)

	baselines, err := filepath.Glob(".prism/baselines/*.json")
	require.NoError(t, err)
	assert.NotEmpty(t, baselines)
}
