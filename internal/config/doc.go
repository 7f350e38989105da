// Package config handles configuration loading and management for prism.
//
// Configuration is loaded from ~/.prism/config.yaml with support for:
//   - Default adapter selection and corpus directory
//   - Execution defaults (parallel worker count, incremental mode)
//   - Default filter inputs (path glob, name/exclude patterns, tag)
//   - Logging configuration (level, format, output destination)
//
// # Configuration Precedence
//
//  1. Environment variables (PRISM_*)
//  2. Config file (~/.prism/config.yaml)
//  3. Built-in defaults (lowest priority)
package config
