package tui

import "github.com/charmbracelet/bubbles/table"

// DefaultTableStyles builds a bubbles/table.Styles value palette-matched to
// the rest of the session: the library's defaults otherwise, with the
// header row and the selected row repainted from TableHeaderStyle and
// TableSelectedStyle.
func DefaultTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = TableHeaderStyle
	styles.Selected = TableSelectedStyle
	return styles
}

// NewTable builds a focused table.Model for displaying one row per test
// result: columns and rows come from the caller (interactive.go's
// newResultTable builds File/Group/Status/Duration), height is the number
// of visible rows, and styling always comes from DefaultTableStyles.
func NewTable(columns []table.Column, rows []table.Row, height int) table.Model {
	model := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	model.SetStyles(DefaultTableStyles())
	return model
}
