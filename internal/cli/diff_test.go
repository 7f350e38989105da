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

func TestDiffCmd_RequiresTwoAdapters(t *testing.T) {
	corpusDir := writeRunCorpus(t)

	cmd := cli.NewDiffCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--corpus", corpusDir, "--adapters", "jsonschema-v6"})

	assert.Error(t, cmd.Execute())
}

func TestDiffCmd_AgreeingAdaptersReportNoDiscrepancies(t *testing.T) {
	corpusDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(corpusDir, "types.json"), []byte(`[
		{
			"description": "type constraint",
			"schema": {"type": "string"},
			"tests": [
				{"description": "a string is valid", "data": "hi", "valid": true}
			]
		}
	]`), 0o600))

	cmd := cli.NewDiffCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--corpus", corpusDir, "--adapters", "jsonschema-v6,gojsonschema"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "No discrepancies")
}

func TestDiffCmd_UnknownAdapter(t *testing.T) {
	corpusDir := writeRunCorpus(t)

	cmd := cli.NewDiffCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--corpus", corpusDir, "--adapters", "jsonschema-v6,bogus"})

	assert.Error(t, cmd.Execute())
}
