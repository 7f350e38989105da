// Package cli wires the prism command-line surface: the root command and
// its subcommands (run, fuzz, diff, snapshot, baseline, coverage, watch,
// interactive, certify, config, plus the hidden __worker subcommand),
// grounded on the teacher's internal/cli package (NewRootCmd's
// PersistentPreRunE/PersistentPostRunE logging lifecycle, each
// subcommand's New<X>Cmd() constructor, and the exitError convention for
// carrying a process exit code out of RunE).
package cli

import (
	"github.com/spf13/cobra"

	"github.com/schemaprism/prism/internal/config"
	"github.com/schemaprism/prism/internal/logging"
)

// NewRootCmd creates the root Cobra command for the prism CLI.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "prism",
		Short:   "Conformance test harness for JSON Schema validators",
		Long:    "prism drives pluggable validator adapters against a corpus of declarative JSON test files and reports pass/fail verdicts.",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.New()
			result := setupLogging(cmd, cfg)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().Bool("audit", false, "write an audit log line for this invocation")

	cmd.AddCommand(
		NewRunCmd(),
		NewFuzzCmd(),
		NewDiffCmd(),
		NewSnapshotCmd(),
		NewBaselineCmd(),
		NewCoverageCmd(),
		NewWatchCmd(),
		NewInteractiveCmd(),
		NewCertifyCmd(),
		NewConfigCmd(),
		NewWorkerCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Run the default adapter against its corpus
  prism run --corpus ./corpus

  # Run in parallel across 4 worker processes
  prism run --corpus ./corpus --parallel 4

  # Fuzz a validator with 100 random cases plus the fixed edge-case set
  prism fuzz --corpus ./corpus --iterations 100

  # Compare two adapters over the same corpus
  prism diff --corpus ./corpus --adapters jsonschema-v6,gojsonschema

  # Persist a snapshot of the current verdicts
  prism run --corpus ./corpus --snapshot

  # Watch the corpus and re-run on change
  prism watch --corpus ./corpus

  # Certify a validator against a pass-rate threshold
  prism certify --corpus ./corpus --threshold 100

  # Initialize configuration
  prism config init`

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}
