package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T) *Config {
	t.Helper()
	dir := t.TempDir()
	return &Config{
		Adapter: AdapterConfig{
			Name:      "jsonschema-v6",
			CorpusDir: filepath.Join(dir, "corpus"),
		},
		Execution: ExecutionConfig{Parallel: 1},
		Logging:   LoggingConfig{Level: "info", Format: "text"},
		configPath: filepath.Join(dir, "config.yaml"),
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Adapter.Name = "gojsonschema"
	cfg.Execution.Parallel = 4

	require.NoError(t, cfg.Save())

	loaded := newTestConfig(t)
	loaded.configPath = cfg.configPath
	require.NoError(t, loaded.Load())

	assert.Equal(t, "gojsonschema", loaded.Adapter.Name)
	assert.Equal(t, 4, loaded.Execution.Parallel)
}

func TestLoadMissingFileReturnsNotExist(t *testing.T) {
	cfg := newTestConfig(t)
	err := cfg.Load()
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestSetUpdatesNestedField(t *testing.T) {
	cfg := newTestConfig(t)

	require.NoError(t, cfg.Set("adapter.name", "gojsonschema"))
	assert.Equal(t, "gojsonschema", cfg.Adapter.Name)

	require.NoError(t, cfg.Set("execution.parallel", "8"))
	assert.Equal(t, 8, cfg.Execution.Parallel)

	require.NoError(t, cfg.Set("execution.incremental", "true"))
	assert.True(t, cfg.Execution.Incremental)

	require.NoError(t, cfg.Set("filter.tag", "draft2020"))
	assert.Equal(t, "draft2020", cfg.Filter.Tag)

	require.NoError(t, cfg.Set("logging.level", "debug"))
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestSetRejectsUnknownSectionAndField(t *testing.T) {
	cfg := newTestConfig(t)

	err := cfg.Set("nope", "value")
	assert.Error(t, err)

	err = cfg.Set("adapter.bogus", "value")
	assert.Error(t, err)
}

func TestSetRejectsInvalidExecutionValues(t *testing.T) {
	cfg := newTestConfig(t)

	assert.Error(t, cfg.Set("execution.parallel", "not-a-number"))
	assert.Error(t, cfg.Set("execution.incremental", "not-a-bool"))
}

func TestListReturnsAllSections(t *testing.T) {
	cfg := newTestConfig(t)
	list := cfg.List()

	assert.Contains(t, list, "adapter")
	assert.Contains(t, list, "execution")
	assert.Contains(t, list, "filter")
	assert.Contains(t, list, "logging")
}

func TestValidateRejectsNonPositiveParallel(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Execution.Parallel = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsEmptyAdapterName(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Adapter.Name = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsUnknownLogLevel(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Logging.Level = "verbose"
	assert.Error(t, cfg.Validate())
}

func TestValidateAcceptsDefaults(t *testing.T) {
	cfg := newTestConfig(t)
	assert.NoError(t, cfg.Validate())
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("PRISM_ADAPTER", "gojsonschema")
	t.Setenv("PRISM_PARALLEL", "6")

	cfg := newTestConfig(t)
	cfg.applyEnvOverrides()

	assert.Equal(t, "gojsonschema", cfg.Adapter.Name)
	assert.Equal(t, 6, cfg.Execution.Parallel)
}
