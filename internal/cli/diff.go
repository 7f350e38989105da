package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/schemaprism/prism/internal/conformance"
)

// NewDiffCmd creates the diff command: runs N≥2 adapters over the same
// corpus and reports where their verdicts disagree, per §4.9.
func NewDiffCmd() *cobra.Command {
	var (
		adapters  []string
		corpusDir string
	)

	cmd := &cobra.Command{
		Use:     "diff",
		Short:   "Compare two or more validator adapters over the same corpus",
		Example: "  prism diff --corpus ./corpus --adapters jsonschema-v6,gojsonschema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDiffCmd(cmd, adapters, corpusDir)
		},
	}

	cmd.Flags().StringSliceVar(&adapters, "adapters", nil, "comma-separated adapter ids to compare (at least two)")
	cmd.Flags().StringVar(&corpusDir, "corpus", "./corpus", "corpus root directory, shared by every adapter")

	return cmd
}

func runDiffCmd(cmd *cobra.Command, adapterIDs []string, corpusDir string) error {
	resolved := make(map[string]conformance.ValidatorAdapter, len(adapterIDs))
	for _, id := range adapterIDs {
		flags := &runFlags{adapter: id, corpusDir: corpusDir}
		adapter, err := flags.buildAdapter()
		if err != nil {
			return err
		}
		resolved[id] = adapter
	}

	engine := &conformance.DiffEngine{
		Runner: &conformance.SequentialRunner{Registry: conformance.NewAssertionRegistry(), Reporter: conformance.NoopReporter{}},
	}
	result := engine.Compare(resolved)

	if result.Error != "" {
		return fmt.Errorf("%s", result.Error)
	}

	if len(result.Discrepancies) == 0 {
		cmd.Println("No discrepancies: all adapters agree on every case.")
		return nil
	}

	cmd.Printf("%d discrepancies found:\n\n", len(result.Discrepancies))
	for _, d := range result.Discrepancies {
		cmd.Printf("  %s — %s (agreement %s)\n", d.TestID, d.Description, d.Agreement)
		names := make([]string, 0, len(d.Outcomes))
		for name := range d.Outcomes {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			o := d.Outcomes[name]
			cmd.Printf("    %s: actual=%v expected=%v\n", name, o.Actual, o.Expected)
		}
	}

	return &exitError{code: exitCodeFailures, message: "discrepancies found"}
}
