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

const certifyCorpusFile = `[
	{
		"description": "type constraint",
		"schema": {"type": "string"},
		"tests": [
			{"description": "a string is valid", "data": "hi", "valid": true}
		]
	}
]`

func TestCertifyCmd_Certified(t *testing.T) {
	corpusDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(corpusDir, "types.json"), []byte(certifyCorpusFile), 0o600))

	cmd := cli.NewCertifyCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--corpus", corpusDir, "--adapter", "jsonschema-v6", "--threshold", "100"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "CERTIFIED")
}

func TestCertifyCmd_WritesReportFile(t *testing.T) {
	corpusDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(corpusDir, "types.json"), []byte(certifyCorpusFile), 0o600))

	reportPath := filepath.Join(t.TempDir(), "report.md")

	cmd := cli.NewCertifyCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--corpus", corpusDir, "--adapter", "jsonschema-v6", "--output", reportPath})

	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Conformance Certification")
}
