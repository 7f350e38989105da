package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/schemaprism/prism/internal/conformance"
)

// NewSnapshotCmd creates the snapshot command group: running a suite and
// comparing it to (or recording it over) a persisted verdict snapshot,
// per §4.10.
func NewSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "snapshot", Short: "Manage persisted verdict snapshots"}
	cmd.AddCommand(newSnapshotSaveCmd(), newSnapshotCheckCmd())
	return cmd
}

func newSnapshotSaveCmd() *cobra.Command {
	var flags runFlags
	var dir string

	cmd := &cobra.Command{
		Use:     "save",
		Short:   "Run a suite and persist its verdict snapshot",
		Example: "  prism snapshot save --corpus ./corpus",
		RunE: func(cmd *cobra.Command, _ []string) error {
			suite, err := runSuite(cmd, &flags, "snapshot-save")
			if err != nil {
				return err
			}
			store := conformance.SnapshotStore{Dir: dir}
			if err := store.Save(suite.Name, conformance.SnapshotOf(suite)); err != nil {
				return fmt.Errorf("saving snapshot: %w", err)
			}
			cmd.Printf("snapshot saved: %s/%s.json\n", dir, suite.Name)
			return nil
		},
	}
	addRunFlags(cmd, &flags, "jsonschema-v6", "./corpus")
	cmd.Flags().StringVar(&dir, "dir", ".prism/snapshots", "snapshot storage directory")
	return cmd
}

func newSnapshotCheckCmd() *cobra.Command {
	var flags runFlags
	var dir string

	cmd := &cobra.Command{
		Use:     "check",
		Short:   "Run a suite and compare it to its persisted snapshot",
		Example: "  prism snapshot check --corpus ./corpus",
		RunE: func(cmd *cobra.Command, _ []string) error {
			suite, err := runSuite(cmd, &flags, "snapshot-check")
			if err != nil {
				return err
			}
			store := conformance.SnapshotStore{Dir: dir}
			prior := store.Load(suite.Name)
			if prior == nil {
				cmd.Println("no prior snapshot found; nothing to compare against")
				return nil
			}
			current := conformance.SnapshotOf(suite)
			return compareSnapshots(cmd, *prior, current)
		},
	}
	addRunFlags(cmd, &flags, "jsonschema-v6", "./corpus")
	cmd.Flags().StringVar(&dir, "dir", ".prism/snapshots", "snapshot storage directory")
	return cmd
}

func compareSnapshots(cmd *cobra.Command, prior, current conformance.SnapshotEntry) error {
	var regressions int
	for id, result := range current.Results {
		priorResult, ok := prior.Results[id]
		if !ok {
			continue
		}
		if priorResult.Passed && !result.Passed {
			regressions++
			cmd.Printf("regression: %s now fails (was passing)\n", id)
		}
	}
	if regressions == 0 {
		cmd.Println("no regressions against the prior snapshot")
		return nil
	}
	return &exitError{code: exitCodeFailures, message: fmt.Sprintf("%d regressions against snapshot", regressions)}
}

// runSuite is the shared helper behind snapshot/baseline subcommands:
// build the adapter and filter, discover files, run, and audit.
func runSuite(cmd *cobra.Command, flags *runFlags, auditName string) (*conformance.TestSuite, error) {
	start := time.Now()
	adapter, err := flags.buildAdapter()
	if err != nil {
		return nil, err
	}
	filter, err := flags.buildFilter()
	if err != nil {
		return nil, err
	}
	files, err := discoverAndFilterFiles(adapter, filter, flags.incremental)
	if err != nil {
		return nil, err
	}
	runner := flags.buildRunner(cmd, adapter, filter)
	suite, runErr := runner.Run(files)
	auditRun(cmd, auditName, start, flags, suite, runErr)
	if runErr != nil {
		return nil, runErr
	}
	saveIncrementalCache(flags.incremental, files)
	printSummary(cmd, suite)
	return suite, nil
}
