package cli

import (
	"github.com/spf13/cobra"

	"github.com/schemaprism/prism/internal/conformance"
)

// NewRunCmd creates the run command: the plain SequentialRunner/
// ParallelRunner invocation, with optional snapshot/baseline persistence.
func NewRunCmd() *cobra.Command {
	var (
		flags        runFlags
		snapshot     bool
		baselineName string
	)

	cmd := &cobra.Command{
		Use:     "run",
		Short:   "Run a validator against its corpus",
		Example: "  prism run --corpus ./corpus --adapter jsonschema-v6",
		RunE: func(cmd *cobra.Command, _ []string) error {
			suite, err := runSuite(cmd, &flags, "run")
			if err != nil {
				return err
			}

			if snapshot {
				store := conformance.SnapshotStore{Dir: ".prism/snapshots"}
				if err := store.Save(suite.Name, conformance.SnapshotOf(suite)); err != nil {
					logger.Warn().Err(err).Msg("failed to save snapshot")
				}
			}
			if baselineName != "" {
				store := conformance.BaselineStore{Dir: ".prism/baselines"}
				if err := store.Save(baselineName, conformance.BaselineOf(suite)); err != nil {
					logger.Warn().Err(err).Msg("failed to save baseline")
				}
			}

			return exitIfFailed(suite)
		},
	}

	addRunFlags(cmd, &flags, "jsonschema-v6", "./corpus")
	cmd.Flags().BoolVar(&snapshot, "snapshot", false, "persist verdicts to .prism/snapshots/<suite>.json")
	cmd.Flags().StringVar(&baselineName, "baseline", "", "persist timings to .prism/baselines/<name>.json")

	return cmd
}
