// Package config provides configuration management for prism.
//
// This package handles loading and saving configuration from a YAML file,
// adapter selection, corpus and filter defaults, execution defaults
// (parallel worker count, incremental mode), and logging configuration —
// grounded on the teacher's internal/config package (Load/Save/Set/Get/
// List/Validate via dot-notation keys, environment variable overrides).
//
// Configuration is stored in ~/.prism/config.yaml by default.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const envPrefix = "PRISM_"

// Config is the complete, persisted prism configuration.
type Config struct {
	Adapter   AdapterConfig   `yaml:"adapter"   json:"adapter"`
	Execution ExecutionConfig `yaml:"execution" json:"execution"`
	Filter    FilterConfig    `yaml:"filter"    json:"filter"`
	Logging   LoggingConfig   `yaml:"logging"   json:"logging"`

	configPath string
}

// AdapterConfig selects which ValidatorAdapter runs by default and where
// its corpus lives.
type AdapterConfig struct {
	Name      string `yaml:"name"       json:"name"`
	CorpusDir string `yaml:"corpus_dir" json:"corpus_dir"`
}

// ExecutionConfig holds run-mode defaults.
type ExecutionConfig struct {
	Parallel    int  `yaml:"parallel"    json:"parallel"`
	Incremental bool `yaml:"incremental" json:"incremental"`
}

// FilterConfig holds default FilterPolicy inputs.
type FilterConfig struct {
	PathGlob string `yaml:"path_glob" json:"path_glob"`
	Name     string `yaml:"name"      json:"name"`
	Exclude  string `yaml:"exclude"   json:"exclude"`
	Tag      string `yaml:"tag"       json:"tag"`
}

// LoggingConfig holds logging defaults, passed straight through to
// internal/logging.Config.
type LoggingConfig struct {
	Level  string `yaml:"level"  json:"level"`
	Format string `yaml:"format" json:"format"`
	Output string `yaml:"output" json:"output"`
	File   string `yaml:"file"   json:"file"`
}

const defaultParallelWorkers = 1

// New returns a Config populated with defaults, then overlaid with any
// existing ~/.prism/config.yaml content and PRISM_* environment overrides.
// A missing or unreadable config file is not an error — defaults apply.
func New() *Config {
	homeDir, _ := os.UserHomeDir()
	prismDir := filepath.Join(homeDir, ".prism")

	cfg := &Config{
		Adapter: AdapterConfig{
			Name:      "jsonschema-v6",
			CorpusDir: filepath.Join(prismDir, "corpus"),
		},
		Execution: ExecutionConfig{
			Parallel:    defaultParallelWorkers,
			Incremental: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		configPath: filepath.Join(prismDir, "config.yaml"),
	}

	if err := cfg.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: config file may be corrupted, using defaults: %v\n", err)
	}

	cfg.applyEnvOverrides()
	return cfg
}

// Load reads and merges the config file at c.configPath over the current values.
func (c *Config) Load() error {
	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

// Save writes the current config to c.configPath, creating its directory if needed.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(c.configPath, data, 0o600)
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(envPrefix + "ADAPTER"); v != "" {
		c.Adapter.Name = v
	}
	if v := os.Getenv(envPrefix + "CORPUS_DIR"); v != "" {
		c.Adapter.CorpusDir = v
	}
	if v := os.Getenv(envPrefix + "LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(envPrefix + "PARALLEL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Execution.Parallel = n
		}
	}
}

// Set assigns value to a dot-notation key, e.g. "adapter.name" or
// "execution.parallel".
func (c *Config) Set(key, value string) error {
	parts := strings.SplitN(key, ".", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid key format: %q (expected section.field)", key)
	}
	section, field := parts[0], parts[1]

	switch section {
	case "adapter":
		return setStringField(&c.Adapter, field, value)
	case "execution":
		return setExecutionField(&c.Execution, field, value)
	case "filter":
		return setStringField(&c.Filter, field, value)
	case "logging":
		return setStringField(&c.Logging, field, value)
	default:
		return fmt.Errorf("unknown configuration section: %s", section)
	}
}

func setStringField(target any, field, value string) error {
	switch t := target.(type) {
	case *AdapterConfig:
		switch field {
		case "name":
			t.Name = value
		case "corpus_dir":
			t.CorpusDir = value
		default:
			return fmt.Errorf("unknown adapter field: %s", field)
		}
	case *FilterConfig:
		switch field {
		case "path_glob":
			t.PathGlob = value
		case "name":
			t.Name = value
		case "exclude":
			t.Exclude = value
		case "tag":
			t.Tag = value
		default:
			return fmt.Errorf("unknown filter field: %s", field)
		}
	case *LoggingConfig:
		switch field {
		case "level":
			t.Level = value
		case "format":
			t.Format = value
		case "output":
			t.Output = value
		case "file":
			t.File = value
		default:
			return fmt.Errorf("unknown logging field: %s", field)
		}
	default:
		return errors.New("unsupported config section type")
	}
	return nil
}

func setExecutionField(e *ExecutionConfig, field, value string) error {
	switch field {
	case "parallel":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid parallel value %q: %w", value, err)
		}
		e.Parallel = n
	case "incremental":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid incremental value %q: %w", value, err)
		}
		e.Incremental = b
	default:
		return fmt.Errorf("unknown execution field: %s", field)
	}
	return nil
}

// List returns the whole config as a map, keyed by top-level section.
func (c *Config) List() map[string]any {
	return map[string]any{
		"adapter":   c.Adapter,
		"execution": c.Execution,
		"filter":    c.Filter,
		"logging":   c.Logging,
	}
}

var validLogLevels = []string{"trace", "debug", "info", "warn", "warning", "error"}
var validLogFormats = []string{"json", "console", "text"}

// Validate checks invariants the config loader cannot enforce via the YAML
// schema alone: a positive worker count, and known log level/format values.
func (c *Config) Validate() error {
	if c.Execution.Parallel < 1 {
		return fmt.Errorf("execution.parallel must be >= 1, got %d", c.Execution.Parallel)
	}
	if c.Adapter.Name == "" {
		return errors.New("adapter.name must not be empty")
	}
	if c.Logging.Level != "" && !contains(validLogLevels, strings.ToLower(c.Logging.Level)) {
		return fmt.Errorf("invalid logging.level: %s (must be one of %v)", c.Logging.Level, validLogLevels)
	}
	if c.Logging.Format != "" && !contains(validLogFormats, strings.ToLower(c.Logging.Format)) {
		return fmt.Errorf("invalid logging.format: %s (must be one of %v)", c.Logging.Format, validLogFormats)
	}
	return nil
}

func contains(list []string, needle string) bool {
	for _, s := range list {
		if s == needle {
			return true
		}
	}
	return false
}
