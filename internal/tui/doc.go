// Package tui provides a shared set of terminal user interface (TUI) components
// and utilities for consistent CLI command styling across prism.
//
// This package offers:
//
//   - Output mode detection for different terminal environments
//   - Predefined color schemes and Lip Gloss styles
//   - Reusable UI components (progress bars, status indicators, etc.)
//   - Percentage and duration formatting utilities
//   - TTY detection and terminal capability checking
//   - InteractiveSession, a Bubble Tea model for browsing suite results
//
// # Basic Usage
//
// Import the package and use components for consistent CLI output:
//
//	import "github.com/schemaprism/prism/internal/tui"
//
//	// Detect output mode
//	mode := tui.DetectOutputMode(forceColor, noColor, plain)
//
//	// Use components
//	status := tui.RenderStatus("ok")
//	progress := tui.DefaultProgressBar().Render(75.0)
//
//	// Create a spinner for loading states
//	spinner := tui.DefaultSpinner()
//
//	// Create a table with consistent styling
//	columns := []table.Column{{Title: "File", Width: 30}, {Title: "Status", Width: 12}}
//	rows := []table.Row{{"type.json", "PASS"}, {"format.json", "FAIL"}}
//	tbl := tui.NewTable(columns, rows, 5)
//
// # Output Modes
//
// The package supports three output modes based on terminal capabilities:
//
//   - OutputModePlain: Basic text output without ANSI styling
//   - OutputModeStyled: ANSI colors and formatting for enhanced readability
//   - OutputModeInteractive: Full Bubble Tea TUI
//
// Use DetectOutputMode() to automatically determine the appropriate mode.
//
// # Color Scheme
//
// The package defines a consistent color palette:
//
//   - ColorOK: Green (#5fd700) for success states
//   - ColorWarning: Orange (#ff8700) for warnings
//   - ColorCritical: Red (#ff0000) for errors
//   - ColorInfo: Blue (#0087ff) for information
//   - Additional colors for headers, labels, values, borders, etc.
//
// # Components
//
// Reusable UI components include:
//
//   - ProgressBar: Visual progress indicators with color coding
//   - Spinner: Loading spinner with standard styling (via DefaultSpinner)
//   - Table: Data tables with standard headers and selection styles (via NewTable/DefaultTableStyles)
//   - RenderStatus(): Status messages with icons and colors
//   - RenderPriority(): Priority level indicators
//   - InteractiveSession: sortable, filterable suite result browser with a
//     per-case detail view, backing §4.14's InteractiveSession option bundle
//
// # Formatting Utilities
//
// Text formatting functions:
//
//   - FormatPercent(): Percentage display with proper rounding
//   - FormatDuration(): Adaptive ms/s duration display
//
// # Best Practices
//
// 1. Always call DetectOutputMode() early in CLI commands
// 2. Respect user preferences (NO_COLOR, --no-color, --plain flags)
// 3. Provide plain text fallbacks for all styled output
// 4. Use predefined styles and colors for consistency
// 5. Test components in different terminal environments
//
// # Thread Safety
//
// All exported functions and methods are safe for concurrent use.
// No global mutable state is used in the package.
//
// # Dependencies
//
// This package depends on:
//   - github.com/charmbracelet/lipgloss for styling
//   - github.com/charmbracelet/bubbles for UI components
//   - github.com/charmbracelet/bubbletea for the interactive session loop
//   - golang.org/x/term for terminal detection
package tui
