package cli

import (
	"fmt"
	"regexp"
	"time"

	"github.com/spf13/cobra"

	"github.com/schemaprism/prism/internal/adapterregistry"
	"github.com/schemaprism/prism/internal/conformance"
	"github.com/schemaprism/prism/internal/logging"
	"github.com/schemaprism/prism/internal/tui"
	"github.com/schemaprism/prism/internal/workerhost"
)

// compactReporterChrome is the space the "[bar] N/N (NN%)" frame around a
// CompactReporter's bar takes, budgeted out of the detected terminal width
// so the whole line fits without wrapping.
const compactReporterChrome = 20

const compactReporterMinWidth = 10

// exitError carries an explicit process exit code, matching the teacher's
// internal/cli/plugin_conformance.go convention. Failing cases, regressions
// and discrepancies exit with exitCodeFailures (1); an interactive session
// without a terminal exits with exitCodeFatal (2). Any other command error
// is not an exitError and also exits 1.
type exitError struct {
	code    int
	message string
}

func (e *exitError) Error() string { return e.message }
func (e *exitError) ExitCode() int { return e.code }

const (
	exitCodeFailures = 1
	exitCodeFatal    = 2
)

// runFlags bundles the flags common to every mode that executes a suite
// (run, fuzz, diff, watch, certify): adapter selection, filtering, and
// parallelism.
type runFlags struct {
	adapter     string
	corpusDir   string
	pathGlob    string
	nameRegex   string
	excludeRe   string
	tag         string
	parallel    int
	incremental bool
	verbose     bool
	plain       bool
	noColor     bool
	forceColor  bool
}

func addRunFlags(cmd *cobra.Command, f *runFlags, defaultAdapter, defaultCorpus string) {
	cmd.Flags().StringVar(&f.adapter, "adapter", defaultAdapter, "validator adapter id (jsonschema-v6, gojsonschema)")
	cmd.Flags().StringVar(&f.corpusDir, "corpus", defaultCorpus, "corpus root directory")
	cmd.Flags().StringVar(&f.pathGlob, "path", "", "glob restricting which corpus files run")
	cmd.Flags().StringVar(&f.nameRegex, "filter", "", "regex matched against \"<group> - <description>\"")
	cmd.Flags().StringVar(&f.excludeRe, "exclude", "", "regex excluding matching cases")
	cmd.Flags().StringVar(&f.tag, "tag", "", "only run cases carrying this tag")
	cmd.Flags().IntVar(&f.parallel, "parallel", 1, "number of worker processes (1 = sequential)")
	cmd.Flags().BoolVar(&f.incremental, "incremental", false, "skip files unchanged since the last run")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "print one line per case instead of a progress bar")
	cmd.Flags().BoolVar(&f.plain, "plain", false, "disable styled output, same as --no-color with TTY detection skipped")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "disable ANSI color in the progress bar")
	cmd.Flags().BoolVar(&f.forceColor, "force-color", false, "enable ANSI color even when stdout isn't a TTY")
}

// buildFilter compiles f's glob/regex flags into a conformance.FilterPolicy.
func (f *runFlags) buildFilter() (conformance.FilterPolicy, error) {
	policy := conformance.FilterPolicy{PathGlob: f.pathGlob, Tag: f.tag}
	if f.nameRegex != "" {
		re, err := regexp.Compile(f.nameRegex)
		if err != nil {
			return policy, fmt.Errorf("invalid --filter regex: %w", err)
		}
		policy.NameRegex = re
	}
	if f.excludeRe != "" {
		re, err := regexp.Compile(f.excludeRe)
		if err != nil {
			return policy, fmt.Errorf("invalid --exclude regex: %w", err)
		}
		policy.ExcludeRegex = re
	}
	return policy, nil
}

// buildAdapter resolves f.adapter against the registry, rooted at
// f.corpusDir.
func (f *runFlags) buildAdapter() (conformance.ValidatorAdapter, error) {
	adapter, err := adapterregistry.New(f.adapter, f.corpusDir)
	if err != nil {
		return nil, fmt.Errorf("resolving adapter %q: %w", f.adapter, err)
	}
	return adapter, nil
}

// buildReporter picks VerboseReporter or CompactReporter per --verbose,
// writing to the command's stdout. A CompactReporter's bar is sized to the
// detected terminal width and, outside plain mode, rendered through a
// tui.ProgressBar so it picks up the session's color palette.
func (f *runFlags) buildReporter(cmd *cobra.Command) conformance.ProgressReporter {
	out := cmd.OutOrStdout()
	if f.verbose {
		return &conformance.VerboseReporter{Out: out}
	}

	width := tui.TerminalWidth() - compactReporterChrome
	if width < compactReporterMinWidth {
		width = compactReporterMinWidth
	}
	reporter := &conformance.CompactReporter{Out: out, Width: width}

	if tui.DetectOutputMode(f.forceColor, f.noColor, f.plain) != tui.OutputModePlain {
		bar := tui.ProgressBar{Width: width, Filled: "█", Empty: "░"}
		reporter.Render = bar.Render
	}
	return reporter
}

// suiteRunner is satisfied by both SequentialRunner and ParallelRunner.
type suiteRunner interface {
	Run(files []string) (*conformance.TestSuite, error)
}

// buildRunner constructs a SequentialRunner or ParallelRunner depending on
// f.parallel, sharing the same filter and reporter either way.
func (f *runFlags) buildRunner(cmd *cobra.Command, adapter conformance.ValidatorAdapter, filter conformance.FilterPolicy) suiteRunner {
	reporter := f.buildReporter(cmd)
	if f.parallel <= 1 {
		return &conformance.SequentialRunner{
			Adapter:  adapter,
			Filter:   filter,
			Registry: conformance.NewAssertionRegistry(),
			Reporter: reporter,
		}
	}
	return &conformance.ParallelRunner{
		Adapter:  adapter,
		Filter:   filter,
		Reporter: reporter,
		Launcher: workerhost.NewProcessLauncher(logger),
		Workers:  f.parallel,
	}
}

// discoverAndFilterFiles resolves the file list a run should execute:
// a fresh corpus scan, optionally narrowed by the incremental cache.
func discoverAndFilterFiles(adapter conformance.ValidatorAdapter, filter conformance.FilterPolicy, incremental bool) ([]string, error) {
	seq := &conformance.SequentialRunner{Adapter: adapter, Filter: filter}
	files, err := seq.DiscoverFiles()
	if err != nil {
		return nil, fmt.Errorf("discovering corpus files: %w", err)
	}
	if incremental {
		cache := conformance.NewIncrementalCache()
		files = cache.FilterChanged(files)
	}
	return files, nil
}

// saveIncrementalCache persists files' mtimes when incremental mode is on,
// logging but not failing the command on a write error — per §4.6/§7, the
// incremental cache is best-effort bookkeeping, not load-bearing state.
func saveIncrementalCache(incremental bool, files []string) {
	if !incremental {
		return
	}
	if err := conformance.NewIncrementalCache().Save(files); err != nil {
		logger.Warn().Err(err).Msg("failed to save incremental cache")
	}
}

// auditRun records one structured audit-log line for a completed suite
// run, per SPEC_FULL.md's "Audit logging of suite runs" supplement.
func auditRun(cmd *cobra.Command, command string, start time.Time, f *runFlags, suite *conformance.TestSuite, runErr error) {
	ctx := cmd.Context()
	entry := logging.NewAuditEntry(command, logging.TraceIDFromContext(ctx)).
		WithParameters(map[string]string{
			"adapter":  f.adapter,
			"corpus":   f.corpusDir,
			"parallel": fmt.Sprintf("%d", f.parallel),
		}).
		WithDuration(start)
	if runErr != nil {
		entry = entry.WithError(runErr.Error())
	} else {
		entry = entry.WithSuccess(suite.Total(), suite.Passed())
	}
	logging.AuditLoggerFromContext(ctx).Log(ctx, *entry)
}

// printSummary writes the one-line pass/fail tally the run/fuzz/certify
// commands share.
func printSummary(cmd *cobra.Command, suite *conformance.TestSuite) {
	cmd.Printf("%s: %d total, %d passed, %d failed (%.2fs)\n",
		suite.Name, suite.Total(), suite.Passed(), suite.Failed(), suite.Duration)
}

// exitIfFailed returns an exitError when the suite has any failing case,
// so the process exit code is nonzero per §6's "exit code 0 when all
// cases pass, nonzero otherwise."
func exitIfFailed(suite *conformance.TestSuite) error {
	if suite.Failed() > 0 {
		return &exitError{code: exitCodeFailures, message: "suite has failing cases"}
	}
	return nil
}
