package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schemaprism/prism/internal/conformance"
)

const baselineRegressionThreshold = 1.10 // a case running 10% slower than baseline is flagged

// NewBaselineCmd creates the baseline command group: running a suite and
// comparing it to (or recording it over) a persisted timing baseline,
// per §4.10.
func NewBaselineCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "baseline", Short: "Manage persisted timing baselines"}
	cmd.AddCommand(newBaselineSaveCmd(), newBaselineCheckCmd())
	return cmd
}

func newBaselineSaveCmd() *cobra.Command {
	var flags runFlags
	var dir, name string

	cmd := &cobra.Command{
		Use:     "save",
		Short:   "Run a suite and persist its timing baseline",
		Example: "  prism baseline save --corpus ./corpus --name default",
		RunE: func(cmd *cobra.Command, _ []string) error {
			suite, err := runSuite(cmd, &flags, "baseline-save")
			if err != nil {
				return err
			}
			store := conformance.BaselineStore{Dir: dir}
			if err := store.Save(name, conformance.BaselineOf(suite)); err != nil {
				return fmt.Errorf("saving baseline: %w", err)
			}
			cmd.Printf("baseline saved: %s/%s.json\n", dir, name)
			return nil
		},
	}
	addRunFlags(cmd, &flags, "jsonschema-v6", "./corpus")
	cmd.Flags().StringVar(&dir, "dir", ".prism/baselines", "baseline storage directory")
	cmd.Flags().StringVar(&name, "name", "default", "baseline name")
	return cmd
}

func newBaselineCheckCmd() *cobra.Command {
	var flags runFlags
	var dir, name string

	cmd := &cobra.Command{
		Use:     "check",
		Short:   "Run a suite and compare its timings to a persisted baseline",
		Example: "  prism baseline check --corpus ./corpus --name default",
		RunE: func(cmd *cobra.Command, _ []string) error {
			suite, err := runSuite(cmd, &flags, "baseline-check")
			if err != nil {
				return err
			}
			store := conformance.BaselineStore{Dir: dir}
			prior := store.Load(name)
			if prior == nil {
				cmd.Println("no prior baseline found; nothing to compare against")
				return nil
			}
			return compareBaseline(cmd, *prior, suite)
		},
	}
	addRunFlags(cmd, &flags, "jsonschema-v6", "./corpus")
	cmd.Flags().StringVar(&dir, "dir", ".prism/baselines", "baseline storage directory")
	cmd.Flags().StringVar(&name, "name", "default", "baseline name")
	return cmd
}

func compareBaseline(cmd *cobra.Command, prior conformance.BaselineEntry, suite *conformance.TestSuite) error {
	var slower int
	for _, r := range suite.Results {
		priorDuration, ok := prior.TestTimings[r.ID]
		if !ok || priorDuration <= 0 {
			continue
		}
		if r.Duration > priorDuration*baselineRegressionThreshold {
			slower++
			cmd.Printf("slower: %s took %.3fs (baseline %.3fs)\n", r.ID, r.Duration, priorDuration)
		}
	}
	if slower == 0 {
		cmd.Println("no timing regressions against the baseline")
		return nil
	}
	return &exitError{code: exitCodeFailures, message: fmt.Sprintf("%d cases regressed against baseline", slower)}
}
