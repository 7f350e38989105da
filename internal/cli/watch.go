package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/schemaprism/prism/internal/conformance"
)

const defaultWatchInterval = 2 * time.Second

// NewWatchCmd creates the watch command: polls the corpus for changes and
// re-runs the suite on every detected change, per §4.7.
func NewWatchCmd() *cobra.Command {
	var flags runFlags
	var interval time.Duration

	cmd := &cobra.Command{
		Use:     "watch",
		Short:   "Watch a corpus and re-run the suite on change",
		Example: "  prism watch --corpus ./corpus",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWatchCmd(cmd, &flags, interval)
		},
	}

	addRunFlags(cmd, &flags, "jsonschema-v6", "./corpus")
	cmd.Flags().DurationVar(&interval, "interval", defaultWatchInterval, "poll interval")

	return cmd
}

func runWatchCmd(cmd *cobra.Command, flags *runFlags, interval time.Duration) error {
	adapter, err := flags.buildAdapter()
	if err != nil {
		return err
	}
	filter, err := flags.buildFilter()
	if err != nil {
		return err
	}

	seq := &conformance.SequentialRunner{Adapter: adapter, Filter: filter}

	loop := &conformance.WatchLoop{
		Scan: seq.DiscoverFiles,
		Callback: func(files []string) {
			runner := flags.buildRunner(cmd, adapter, filter)
			suite, err := runner.Run(files)
			if err != nil {
				logger.Error().Err(err).Msg("watch run failed")
				return
			}
			printSummary(cmd, suite)
		},
		Interval: interval,
		Out:      cmd.OutOrStdout(),
	}

	return loop.Run(cmd.Context())
}
