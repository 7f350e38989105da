package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/width"

	"github.com/schemaprism/prism/internal/conformance"
)

// Terminal and layout constants.
const (
	defaultWidth  = 80
	defaultHeight = 20
	minHeight     = 5
	summaryHeight = 8
	borderPadding = 2

	maxNameDisplayLen = 40
	truncateSuffix    = "..."
)

// Filter input constants.
const (
	filterInputWidth     = 30
	filterInputCharLimit = 156
)

// Keyboard constants.
const (
	keyEsc   = "esc"
	keyEnter = "enter"
	keyQuit  = "q"
	keyCtrlC = "ctrl+c"
	keySlash = "/"
	keyS     = "s"
)

// SessionOptions bundles the run-mode choices InteractiveSession exposes to
// the operator: which filter/tag to apply, whether to run in parallel, and
// whether incremental/watch mode is active.
type SessionOptions struct {
	Filter      string
	Tag         string
	Parallel    int
	Incremental bool
	Watch       bool
}

// ViewState represents the current state of the interactive session.
type ViewState int

const (
	ViewStateLoading ViewState = iota
	ViewStateList
	ViewStateDetail
	ViewStateQuitting
	ViewStateError
)

// SortField represents the field to sort the result table by.
type SortField int

const (
	SortByDuration SortField = iota
	SortByFile
	SortByGroup
	SortByStatus
)

const numSortFields = 4

type runCompleteMsg struct {
	suite *conformance.TestSuite
	err   error
}

// InteractiveSession is the Bubble Tea model for browsing suite results
// interactively: a sortable/filterable table view plus a per-case detail
// view, backing §4.14's InteractiveSession option bundle.
//
// Grounded on the teacher's cost-browsing TUI model (CostViewModel):
// same state machine (loading/list/detail/quitting/error), same filter
// text-input and table-cursor-driven drill-down, retargeted from
// browsing CostResult rows to browsing TestResult rows.
type InteractiveSession struct {
	Options SessionOptions

	state      ViewState
	allResults []conformance.TestResult
	results    []conformance.TestResult

	table     table.Model
	textInput textinput.Model
	selected  int

	width      int
	height     int
	sortBy     SortField
	showFilter bool

	spin    spinner.Model
	runCmd  tea.Cmd
	waiting bool

	err error
}

// NewInteractiveSession creates a session that starts in the loading state
// and invokes run when the Bubble Tea program starts.
func NewInteractiveSession(opts SessionOptions, run func() (*conformance.TestSuite, error)) *InteractiveSession {
	return &InteractiveSession{
		Options:   opts,
		state:     ViewStateLoading,
		spin:      DefaultSpinner(),
		textInput: newFilterInput(),
		waiting:   true,
		runCmd: func() tea.Msg {
			suite, err := run()
			return runCompleteMsg{suite: suite, err: err}
		},
	}
}

// NewInteractiveSessionWithResults creates a session already populated with
// results, skipping the loading state — used for drilling into a suite a
// caller already ran.
func NewInteractiveSessionWithResults(opts SessionOptions, results []conformance.TestResult) *InteractiveSession {
	s := &InteractiveSession{
		Options:    opts,
		state:      ViewStateList,
		allResults: results,
		results:    results,
		textInput:  newFilterInput(),
	}
	s.applySort()
	s.rebuildTable()
	return s
}

func newFilterInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Filter results..."
	ti.CharLimit = filterInputCharLimit
	ti.Width = filterInputWidth
	return ti
}

// Init implements tea.Model.
func (s *InteractiveSession) Init() tea.Cmd {
	var cmds []tea.Cmd
	if s.state == ViewStateLoading {
		cmds = append(cmds, s.spin.Tick, s.runCmd)
	} else if s.showFilter {
		cmds = append(cmds, textinput.Blink)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (s *InteractiveSession) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		s.width = winMsg.Width
		s.height = winMsg.Height
		s.rebuildTable()
	}

	if runMsg, ok := msg.(runCompleteMsg); ok {
		return s.handleRunComplete(runMsg)
	}

	if s.showFilter {
		return s.handleFilterInput(msg)
	}

	switch s.state {
	case ViewStateLoading:
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd
	case ViewStateList:
		return s.handleListUpdate(msg)
	case ViewStateDetail, ViewStateQuitting, ViewStateError:
		return s.handleGenericUpdate(msg)
	default:
		return s, nil
	}
}

func (s *InteractiveSession) handleRunComplete(msg runCompleteMsg) (tea.Model, tea.Cmd) {
	s.waiting = false
	if msg.err != nil {
		s.err = msg.err
		s.state = ViewStateError
		return s, tea.Quit
	}
	s.allResults = msg.suite.Results
	s.results = msg.suite.Results
	s.state = ViewStateList
	s.applySort()
	s.rebuildTable()
	return s, nil
}

func (s *InteractiveSession) handleFilterInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter, keyEsc:
			s.showFilter = false
			s.textInput.Blur()
			s.applyFilter()
			return s, nil
		}
	}
	var cmd tea.Cmd
	s.textInput, cmd = s.textInput.Update(msg)
	return s, cmd
}

func (s *InteractiveSession) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			s.state = ViewStateQuitting
			return s, tea.Quit
		case keyEnter:
			s.selected = s.table.Cursor()
			s.state = ViewStateDetail
			return s, nil
		case keySlash:
			s.showFilter = true
			s.textInput.Focus()
			return s, nil
		case keyS:
			s.cycleSort()
			return s, nil
		case keyEsc:
			if s.textInput.Value() != "" {
				s.textInput.SetValue("")
				s.applyFilter()
			}
			return s, nil
		}
	}
	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return s, cmd
}

func (s *InteractiveSession) handleGenericUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			s.state = ViewStateQuitting
			return s, tea.Quit
		case keyEsc:
			if s.state == ViewStateDetail {
				s.state = ViewStateList
				s.table.Focus()
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *InteractiveSession) applyFilter() {
	val := s.textInput.Value()
	if val == "" {
		s.results = s.allResults
	} else {
		query := strings.ToLower(val)
		filtered := make([]conformance.TestResult, 0, len(s.allResults))
		for _, r := range s.allResults {
			if strings.Contains(strings.ToLower(r.File), query) ||
				strings.Contains(strings.ToLower(r.Description), query) {
				filtered = append(filtered, r)
			}
		}
		s.results = filtered
	}
	s.applySort()
	s.rebuildTable()
}

func (s *InteractiveSession) cycleSort() {
	s.sortBy = (s.sortBy + 1) % numSortFields
	s.applySort()
	s.rebuildTable()
}

func (s *InteractiveSession) applySort() {
	sort.SliceStable(s.results, func(i, j int) bool {
		a, b := s.results[i], s.results[j]
		switch s.sortBy {
		case SortByDuration:
			return a.Duration > b.Duration
		case SortByFile:
			return a.File < b.File
		case SortByGroup:
			return a.Group < b.Group
		case SortByStatus:
			return !a.Passed && b.Passed
		default:
			return false
		}
	})
}

func (s *InteractiveSession) rebuildTable() {
	height := s.height - summaryHeight - 1
	if height < minHeight {
		height = defaultHeight
	}
	s.table = newResultTable(s.results, height)
}

// View implements tea.Model.
func (s *InteractiveSession) View() string {
	switch s.state {
	case ViewStateQuitting:
		return ""
	case ViewStateError:
		return fmt.Sprintf("Error: %v\n", s.err)
	case ViewStateLoading:
		return fmt.Sprintf("\n %s running suite...\n\n", s.spin.View())
	case ViewStateDetail:
		if s.selected >= 0 && s.selected < len(s.results) {
			return renderDetailView(s.results[s.selected], s.width)
		}
		return "Error: selected index out of bounds"
	case ViewStateList:
		return s.renderListView()
	default:
		return ""
	}
}

func (s *InteractiveSession) renderListView() string {
	summary := renderResultSummary(s.results, s.width)
	tableView := s.table.View()

	if s.showFilter {
		return lipgloss.JoinVertical(lipgloss.Left, summary, tableView, "\nFilter: "+s.textInput.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, summary, tableView)
}

// truncateName trims a file or group name to fit the table column,
// counting display columns rather than bytes so fullwidth corpus names
// (CJK file or group names are legal JSON keys) don't overrun the
// column by rendering each wide rune as two cells.
func truncateName(name string) string {
	runes := []rune(name)
	limit := maxNameDisplayLen - len(truncateSuffix)

	col := 0
	for i, r := range runes {
		col += runeDisplayWidth(r)
		if col > limit {
			return string(runes[:i]) + truncateSuffix
		}
	}
	return name
}

func runeDisplayWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

func renderResultSummary(results []conformance.TestResult, width int) string {
	if len(results) == 0 {
		return InfoStyle.Render("No results to display.")
	}

	passed := 0
	for _, r := range results {
		if r.Passed {
			passed++
		}
	}
	rate := 100 * float64(passed) / float64(len(results))

	var content strings.Builder
	content.WriteString(HeaderStyle.Render("RESULT SUMMARY"))
	content.WriteString("\n")
	content.WriteString(LabelStyle.Render("Pass rate:    "))
	content.WriteString(ValueStyle.Render(FormatPercent(rate)))
	content.WriteString(LabelStyle.Render("    Cases: "))
	content.WriteString(ValueStyle.Render(fmt.Sprintf("%d", len(results))))

	if width > borderPadding {
		return BoxStyle.Width(width - borderPadding).Render(content.String())
	}
	return BoxStyle.Render(content.String())
}

func newResultTable(results []conformance.TestResult, height int) table.Model {
	columns := []table.Column{
		{Title: "File", Width: 30},
		{Title: "Group", Width: 24},
		{Title: "Status", Width: 12},
		{Title: "Duration", Width: 12},
	}

	rows := make([]table.Row, len(results))
	for i, r := range results {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
		}
		rows[i] = table.Row{
			truncateName(r.File),
			truncateName(r.Group),
			RenderStatus(status),
			FormatDuration(r.Duration),
		}
	}

	return NewTable(columns, rows, height)
}

func renderDetailView(r conformance.TestResult, width int) string {
	var content strings.Builder

	content.WriteString(HeaderStyle.Render("CASE DETAIL"))
	content.WriteString("\n\n")

	content.WriteString(LabelStyle.Render("ID:          "))
	content.WriteString(ValueStyle.Render(r.ID))
	content.WriteString("\n")

	content.WriteString(LabelStyle.Render("File:        "))
	content.WriteString(ValueStyle.Render(r.File))
	content.WriteString("\n")

	content.WriteString(LabelStyle.Render("Group:       "))
	content.WriteString(ValueStyle.Render(r.Group))
	content.WriteString("\n")

	content.WriteString(LabelStyle.Render("Description: "))
	content.WriteString(ValueStyle.Render(r.Description))
	content.WriteString("\n\n")

	status := "PASS"
	if !r.Passed {
		status = "FAIL"
	}
	content.WriteString(LabelStyle.Render("Status:      "))
	content.WriteString(RenderStatus(status))
	content.WriteString("\n")

	content.WriteString(LabelStyle.Render("Duration:    "))
	content.WriteString(ValueStyle.Render(FormatDuration(r.Duration)))
	content.WriteString("\n\n")

	if r.Error != "" {
		content.WriteString(HeaderStyle.Render("FAILURE"))
		content.WriteString("\n")
		content.WriteString(CriticalStyle.Render(r.Error))
		content.WriteString("\n")
	}

	if width > borderPadding {
		return BoxStyle.Width(width - borderPadding).Render(content.String())
	}
	return BoxStyle.Render(content.String())
}
