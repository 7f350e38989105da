package cli

import (
	"github.com/spf13/cobra"

	"github.com/schemaprism/prism/internal/coverage"
	"github.com/schemaprism/prism/internal/tui"
)

// NewCoverageCmd creates the coverage command: runs a suite then prints
// its CoverageAnalyzer report, per §4.11.
func NewCoverageCmd() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:     "coverage",
		Short:   "Run a suite and report its coverage score",
		Example: "  prism coverage --corpus ./corpus",
		RunE: func(cmd *cobra.Command, _ []string) error {
			suite, err := runSuite(cmd, &flags, "coverage")
			if err != nil {
				return err
			}
			report := coverage.Analyze(suite)
			level := coverage.DetermineLevel(report.Score, report.TotalCases)
			printCoverageReport(cmd, report, level)
			return nil
		},
	}

	addRunFlags(cmd, &flags, "jsonschema-v6", "./corpus")
	return cmd
}

// scoreBar colors low scores red and high scores green, matching
// coverage.DetermineLevel's own fair/good thresholds, so the bar and the
// level label next to it never disagree.
var scoreBar = tui.ProgressBar{Width: 20, Filled: "█", Empty: "░", WarnBelow: 70, CriticalBelow: 40}

func printCoverageReport(cmd *cobra.Command, report coverage.Report, level coverage.Level) {
	cmd.Printf("coverage score: %s %.1f (%s)\n", scoreBar.Render(report.Score), report.Score, level.DisplayLabel())
	cmd.Printf("pass rate: %.1f%% over %d cases\n", report.PassRate, report.TotalCases)

	printDistribution(cmd, "groups", report.Groups)
	printDistribution(cmd, "files", report.Files)
	printDistribution(cmd, "tags", report.Tags)
}

func printDistribution(cmd *cobra.Command, label string, counts []coverage.Count) {
	if len(counts) == 0 {
		return
	}
	cmd.Printf("%s:\n", label)
	for _, c := range counts {
		cmd.Printf("  %s: %d\n", c.Name, c.Count)
	}
}
