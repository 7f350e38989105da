package cli

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/schemaprism/prism/internal/conformance"
)

// NewFuzzCmd creates the fuzz command: drives FuzzEngine's fixed
// edge-case set plus N random cases against the trivially-permissive
// schema, per §4.8.
func NewFuzzCmd() *cobra.Command {
	var (
		adapter    string
		corpusDir  string
		iterations int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:     "fuzz",
		Short:   "Fuzz a validator with edge cases and random inputs",
		Example: "  prism fuzz --adapter jsonschema-v6 --iterations 100",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFuzzCmd(cmd, adapter, corpusDir, iterations, verbose)
		},
	}

	cmd.Flags().StringVar(&adapter, "adapter", "jsonschema-v6", "validator adapter id")
	cmd.Flags().StringVar(&corpusDir, "corpus", "./corpus", "corpus root directory (adapter still needs one, even though fuzzing ignores it)")
	cmd.Flags().IntVar(&iterations, "iterations", 100, "number of random cases beyond the 24 fixed edge cases")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print one line per case instead of a progress bar")

	return cmd
}

func runFuzzCmd(cmd *cobra.Command, adapterID, corpusDir string, iterations int, verbose bool) error {
	start := time.Now()
	flags := &runFlags{adapter: adapterID, corpusDir: corpusDir, parallel: 1, verbose: verbose}

	adapter, err := flags.buildAdapter()
	if err != nil {
		return err
	}

	engine := conformance.NewFuzzEngine(adapter, rand.NewSource(time.Now().UnixNano()))
	suite := engine.Fuzz(iterations)
	suite.Duration = time.Since(start).Seconds()

	reporter := flags.buildReporter(cmd)
	reporter.Start(suite.Total())
	for _, r := range suite.Results {
		reporter.Advance(r)
	}
	reporter.Finish()

	auditRun(cmd, "fuzz", start, flags, suite, nil)
	printSummary(cmd, suite)
	return exitIfFailed(suite)
}
