package tui

import (
	"os"

	"golang.org/x/term"
)

// DefaultTerminalWidth is what TerminalWidth falls back to when stdout's
// size can't be read (not a terminal, or the ioctl failed).
const DefaultTerminalWidth = 80

// OutputMode selects how much styling a command applies to its output.
type OutputMode int

const (
	// OutputModePlain disables ANSI styling entirely.
	OutputModePlain OutputMode = iota
	// OutputModeStyled colors output with lipgloss but doesn't launch a TUI.
	OutputModeStyled
	// OutputModeInteractive permits a full bubbletea program.
	OutputModeInteractive
)

// DetectOutputMode resolves the --plain/--no-color/--force-color flags the
// run/fuzz/diff/certify/coverage commands share, in priority order:
//
//  1. --plain or --no-color forces OutputModePlain.
//  2. The NO_COLOR convention (https://no-color.org/) forces OutputModePlain.
//  3. --force-color forces OutputModeStyled even off a TTY.
//  4. A non-TTY stdout, or TERM=dumb, forces OutputModePlain.
//  5. A CI environment gets OutputModeStyled (colors, no interactivity).
//  6. Otherwise, a capable terminal gets OutputModeInteractive.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	if plain || noColor {
		return OutputModePlain
	}
	if os.Getenv("NO_COLOR") != "" {
		return OutputModePlain
	}
	if forceColor {
		return OutputModeStyled
	}
	if !IsTTY() {
		return OutputModePlain
	}
	if os.Getenv("TERM") == "dumb" {
		return OutputModePlain
	}
	if os.Getenv("CI") != "" {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// IsTTY reports whether stdout is attached to a terminal. The interactive
// command refuses to start when this is false, since its bubbletea program
// has nowhere to read keystrokes from or draw over.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns stdout's current width in columns, or
// DefaultTerminalWidth when it can't be determined.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	return width
}
