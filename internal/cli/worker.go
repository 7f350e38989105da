package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/schemaprism/prism/internal/adapterregistry"
	"github.com/schemaprism/prism/internal/conformance"
	"github.com/schemaprism/prism/internal/workerhost"
)

// NewWorkerCmd creates the hidden "__worker" subcommand that
// workerhost.ProcessLauncher re-invokes the prism binary as: it decodes a
// workerhost.WorkerArgs input file, runs the named adapter sequentially
// over the given file subset, and writes the resulting test results as
// JSON to the output file. Hidden because operators never invoke it
// directly, per spec.md §4.5 — exported only so tests can drive it.
func NewWorkerCmd() *cobra.Command {
	var input, output string

	cmd := &cobra.Command{
		Use:    "__worker",
		Hidden: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWorkerCmd(input, output)
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "worker input JSON file")
	cmd.Flags().StringVar(&output, "output", "", "worker output JSON file")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runWorkerCmd(inputPath, outputPath string) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading worker input: %w", err)
	}

	var args workerhost.WorkerArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return fmt.Errorf("decoding worker input: %w", err)
	}

	adapter, err := adapterregistry.New(args.Adapter, "")
	if err != nil {
		return fmt.Errorf("building adapter %q: %w", args.Adapter, err)
	}

	runner := &conformance.SequentialRunner{
		Adapter:  adapter,
		Registry: conformance.NewAssertionRegistry(),
		Reporter: conformance.NoopReporter{},
	}

	suite, runErr := runner.Run(args.Files)

	var results []conformance.TestResult
	if suite != nil {
		results = suite.Results
	}

	encoded, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("encoding worker output: %w", err)
	}
	if err := os.WriteFile(outputPath, encoded, 0o644); err != nil { //nolint:gosec // worker scratch output
		return fmt.Errorf("writing worker output: %w", err)
	}

	return runErr
}
