package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// DefaultSpinner builds the dot spinner InteractiveSession shows while its
// run is still in flight, styled in
// InfoStyle's color so it reads as "working", not "warning" or "error".
func DefaultSpinner() spinner.Model {
	model := spinner.New()
	model.Spinner = spinner.Dot
	model.Style = lipgloss.NewStyle().Foreground(ColorInfo)
	return model
}
