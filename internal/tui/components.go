package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Status text constants.
const (
	StatusOK       = "OK"
	StatusWarning  = "WARNING"
	StatusCritical = "CRITICAL"
	StatusExceeded = "EXCEEDED"
	StatusSuccess  = "SUCCESS"
)

// Priority text constants.
const (
	PriorityCritical = "CRITICAL"
	PriorityHigh     = "HIGH"
	PriorityMedium   = "MEDIUM"
	PriorityLow      = "LOW"
)

// Status icons for different states.
// These Unicode icons are used throughout the TUI for consistent visual indicators.
const (
	IconOK         = "✓" // Success/completion indicator.
	IconWarning    = "⚠" // Warning/caution indicator.
	IconCritical   = "🚨" // Critical/error indicator.
	IconPending    = "○" // Pending/inactive state.
	IconProgress   = "◉" // In-progress/active state.
	IconArrowUp    = "↑" // Increase/upward trend.
	IconArrowDown  = "↓" // Decrease/downward trend.
	IconArrowRight = "→" // Neutral/no change.
)

// RenderStatus renders a styled status indicator consisting of an icon and label
// corresponding to the provided status. Recognized statuses (OK, SUCCESS, WARNING,
// CRITICAL, EXCEEDED) map to predefined icons and color themes; unrecognized
// statuses are shown in a muted color with the provided text lowercased.
// The returned string is the icon and label formatted with the selected style.
func RenderStatus(status string) string {
	status = strings.ToUpper(status)

	var icon, text string
	var color lipgloss.Color

	switch status {
	case StatusOK, StatusSuccess:
		icon = IconOK
		text = StatusOK
		color = ColorOK
	case StatusWarning:
		icon = IconWarning
		text = StatusWarning
		color = ColorWarning
	case StatusCritical, StatusExceeded:
		icon = IconCritical
		text = StatusCritical
		color = ColorCritical
	default:
		icon = IconPending
		text = strings.ToLower(status)
		color = ColorMuted
	}

	style := lipgloss.NewStyle().Foreground(color).Bold(true)
	return style.Render(fmt.Sprintf("%s %s", icon, text))
}

// RenderPriority renders a styled priority indicator with icon and color.
func RenderPriority(priority string) string {
	priority = strings.ToUpper(priority)

	var icon, text string
	var color lipgloss.Color

	switch priority {
	case PriorityCritical:
		icon = IconCritical
		text = PriorityCritical
		color = ColorPriorityCritical
	case PriorityHigh:
		icon = IconWarning
		text = PriorityHigh
		color = ColorPriorityHigh
	case PriorityMedium:
		icon = IconProgress
		text = PriorityMedium
		color = ColorPriorityMedium
	case PriorityLow:
		icon = IconOK
		text = PriorityLow
		color = ColorPriorityLow
	default:
		icon = IconPending
		text = strings.ToLower(priority)
		color = ColorMuted
	}

	style := lipgloss.NewStyle().Foreground(color).Bold(true)
	return style.Render(fmt.Sprintf("%s %s", icon, text))
}
