package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultProgressBarWidth is the bar width ProgressBar values use when the
// caller leaves Width at zero.
const DefaultProgressBarWidth = 30

// ProgressBar renders a filled/empty-block bar as a single styled string.
//
// By default the bar always renders in ColorOK: it is meant for a plain
// "how much of this run is done" indicator, where the percentage climbing
// toward 100 is good news, not a warning. Setting WarnBelow/CriticalBelow
// switches to low-is-bad coloring instead — the shape a coverage or
// pass-rate score needs, where a LOW percentage is the thing to flag.
type ProgressBar struct {
	Width   int
	Filled  string
	Empty   string
	ShowPct bool

	// WarnBelow and CriticalBelow, when either is nonzero, render the bar
	// in ColorWarning/ColorCritical once percent drops to or below them;
	// with both left at zero the bar always renders ColorOK.
	WarnBelow     float64
	CriticalBelow float64
}

// DefaultProgressBar returns a ProgressBar sized to DefaultProgressBarWidth
// with the standard block characters and a trailing percentage label.
func DefaultProgressBar() ProgressBar {
	return ProgressBar{
		Width:   DefaultProgressBarWidth,
		Filled:  "█",
		Empty:   "░",
		ShowPct: true,
	}
}

// Render returns percent (clamped to [0, 100]) as a styled bar string.
func (p ProgressBar) Render(percent float64) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	width := p.Width
	if width <= 0 {
		if p.ShowPct {
			return fmt.Sprintf("%.0f%%", percent)
		}
		return ""
	}

	filled := int(percent / 100 * float64(width))
	bar := strings.Repeat(p.Filled, filled) + strings.Repeat(p.Empty, width-filled)

	style := lipgloss.NewStyle().Foreground(p.color(percent)).Bold(true)
	result := style.Render(bar)
	if p.ShowPct {
		result += fmt.Sprintf(" %.0f%%", percent)
	}
	return result
}

func (p ProgressBar) color(percent float64) lipgloss.Color {
	if p.WarnBelow == 0 && p.CriticalBelow == 0 {
		return ColorOK
	}
	switch {
	case percent <= p.CriticalBelow:
		return ColorCritical
	case percent <= p.WarnBelow:
		return ColorWarning
	default:
		return ColorOK
	}
}
