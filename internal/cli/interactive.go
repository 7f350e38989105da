package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/schemaprism/prism/internal/conformance"
	"github.com/schemaprism/prism/internal/tui"
)

// errNotATTY is returned when interactive is invoked with stdout redirected
// to a file or pipe: the bubbletea program needs a real terminal to drive
// its keyboard-driven table/detail views.
var errNotATTY = &exitError{code: exitCodeFatal, message: "interactive requires a terminal (stdout is not a TTY)"}

// NewInteractiveCmd creates the interactive command: a menu-driven
// front-end over the same adapter/filter/parallel bundle the other
// commands take as flags, per §4.14.
func NewInteractiveCmd() *cobra.Command {
	var (
		adapter   string
		corpusDir string
	)

	cmd := &cobra.Command{
		Use:     "interactive",
		Short:   "Browse suite results in a terminal UI",
		Example: "  prism interactive --corpus ./corpus",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractiveCmd(cmd, adapter, corpusDir)
		},
	}

	cmd.Flags().StringVar(&adapter, "adapter", "jsonschema-v6", "validator adapter id")
	cmd.Flags().StringVar(&corpusDir, "corpus", "./corpus", "corpus root directory")

	return cmd
}

func runInteractiveCmd(cmd *cobra.Command, adapterID, corpusDir string) error {
	if !tui.IsTTY() {
		return errNotATTY
	}

	opts := tui.SessionOptions{Parallel: 1}

	run := func() (*conformance.TestSuite, error) {
		flags := &runFlags{
			adapter:     adapterID,
			corpusDir:   corpusDir,
			nameRegex:   opts.Filter,
			tag:         opts.Tag,
			parallel:    opts.Parallel,
			incremental: opts.Incremental,
		}
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
		return runner.Run(files)
	}

	session := tui.NewInteractiveSession(opts, run)
	program := tea.NewProgram(session)
	_, err := program.Run()
	return err
}
