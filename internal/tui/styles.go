package tui

import "github.com/charmbracelet/lipgloss"

// HeaderStyle, LabelStyle, and ValueStyle are the three styles every result
// view in this package builds from: a bold section title, a dim field name,
// and a bright field value, so a rendered case detail or summary box reads
// as label/value pairs under a heading rather than a wall of plain text.
//
//nolint:gochecknoglobals // shared lipgloss styles, same pattern as table.DefaultStyles.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorValue)
)

// OKStyle, WarningStyle, CriticalStyle, and InfoStyle color a verdict line
// by severity: a passing case or certified suite renders OKStyle, an
// adapter exception renders CriticalStyle, everything else uses InfoStyle
// for neutral status lines such as "no discrepancies found".
//
//nolint:gochecknoglobals // shared lipgloss styles, same pattern as table.DefaultStyles.
var (
	OKStyle       = lipgloss.NewStyle().Foreground(ColorOK).Bold(true)
	WarningStyle  = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	CriticalStyle = lipgloss.NewStyle().Foreground(ColorCritical).Bold(true)
	InfoStyle     = lipgloss.NewStyle().Foreground(ColorInfo).Bold(true)
)

// BoxStyle wraps a block of rendered content — a result summary, a case
// detail view — in a rounded border, giving the interactive session's
// panels a visible edge against the surrounding terminal.
//
//nolint:gochecknoglobals // shared lipgloss style, same pattern as table.DefaultStyles.
var BoxStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder).
	Padding(0, 1)

// TableHeaderStyle and TableSelectedStyle feed bubbles/table's
// table.Styles, so the file/group/status/duration columns the result
// table renders pick up the same palette as the rest of the session
// instead of the library's monochrome default.
//
//nolint:gochecknoglobals // shared lipgloss styles, same pattern as table.DefaultStyles.
var (
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorHeader).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true)

	TableSelectedStyle = lipgloss.NewStyle().
				Background(ColorSelectedBg).
				Foreground(ColorHighlight)
)
