package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/schemaprism/prism/internal/conformance"
)

const defaultCertifyThreshold = 100.0

// NewCertifyCmd creates the certify command: runs a suite, compares its
// pass rate against a threshold, and emits a markdown certification
// report — the teacher's plugin-certification flow retargeted from "is
// this plugin production-ready" to "does this validator meet a
// conformance bar", per SPEC_FULL.md's Supplemented Features.
func NewCertifyCmd() *cobra.Command {
	var (
		flags      runFlags
		threshold  float64
		outputFile string
	)

	cmd := &cobra.Command{
		Use:     "certify",
		Short:   "Certify a validator against a pass-rate threshold",
		Example: "  prism certify --corpus ./corpus --threshold 100",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCertifyCmd(cmd, &flags, threshold, outputFile)
		},
	}

	addRunFlags(cmd, &flags, "jsonschema-v6", "./corpus")
	cmd.Flags().Float64Var(&threshold, "threshold", defaultCertifyThreshold, "minimum pass rate percentage required to certify")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "write the certification report to a file instead of stdout")

	return cmd
}

func runCertifyCmd(cmd *cobra.Command, flags *runFlags, threshold float64, outputFile string) error {
	suite, err := runSuite(cmd, flags, "certify")
	if err != nil {
		return err
	}

	report := conformance.Certify(suite, threshold)
	markdown := report.GenerateMarkdown()

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(markdown), 0o644); err != nil { //nolint:gosec // shareable report
			return err
		}
		cmd.Printf("certification report written to %s\n", outputFile)
	} else {
		cmd.Println(markdown)
	}

	if !report.Certified {
		cmd.Printf("NOT CERTIFIED: pass rate %.1f%% below threshold %.1f%%\n", report.PassRate, threshold)
		return &exitError{code: exitCodeFailures, message: "certification failed"}
	}
	cmd.Println("CERTIFIED")
	return nil
}
