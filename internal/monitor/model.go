package monitor

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/smartparking/parkwatch/internal/poller"
	"github.com/smartparking/parkwatch/internal/render"
)

// Width breakpoints for layout modes
const (
	BreakpointCompact  = 80
	BreakpointStandard = 120
)

// Height below which the footer is dropped.
const HeightMinimal = 24

// clockInterval drives the "updated N ago" text between fetches.
const clockInterval = time.Second

// minSpacesHeight is the fewest table rows the spaces viewport shows.
const minSpacesHeight = 3

// Options configures a dashboard model.
type Options struct {
	Endpoint string
	Interval time.Duration
	Locale   render.Locale
	Metrics  []render.MetricSlot

	// Refresh asks the poller for an extra fetch. Optional.
	Refresh func()

	// Renderer overrides the default renderer for Locale.
	Renderer *render.Renderer

	// Now overrides time.Now for the header clock.
	Now func() time.Time
}

// Model is the Bubble Tea model for the parking dashboard. It is a Sink fed
// by poll outcomes: every OutcomeMsg goes through the renderer into the
// model's ViewState, and View draws that state.
type Model struct {
	view     render.ViewState
	renderer *render.Renderer
	history  *History
	locale   render.Locale

	endpoint string
	interval time.Duration
	refresh  func()
	now      func() time.Time

	width      int
	height     int
	quitting   bool
	showHelp   bool
	refreshing bool
	sortOrder  SortOrder

	// Scrollable body of the spaces table; the column header stays fixed
	spaces       viewport.Model
	spacesHeader string

	lastOutcome time.Time
	lastErr     error
	failStreak  int
}

// OutcomeMsg carries one poll outcome into the program.
type OutcomeMsg struct {
	Outcome poller.Outcome
}

// tickMsg signals a clock refresh.
type tickMsg time.Time

// NewModel creates a dashboard showing the loading state.
func NewModel(opts Options) Model {
	loc := opts.Locale
	if loc.Name == "" {
		loc = render.English
	}

	r := opts.Renderer
	if r == nil {
		r = render.New(loc)
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	m := Model{
		view:     render.NewViewState(opts.Metrics, loc),
		renderer: r,
		history:  NewHistory(DefaultHistorySize),
		locale:   loc,
		endpoint: opts.Endpoint,
		interval: opts.Interval,
		refresh:  opts.Refresh,
		now:      now,
		spaces:   viewport.New(BreakpointCompact, minSpacesHeight),
	}
	m.syncSpaces()
	return m
}

// Init starts the header clock.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.spaces, cmd = m.spaces.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.syncSpaces()

	case OutcomeMsg:
		m.applyOutcome(msg.Outcome)

	case tickMsg:
		return m, m.tickCmd()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return m.renderDashboard()
}

// applyOutcome renders an outcome into the view state.
func (m *Model) applyOutcome(out poller.Outcome) {
	m.renderer.Render(&m.view, out.Snapshot)
	m.refreshing = false
	m.lastOutcome = out.Finished

	if out.OK() {
		m.history.Push(m.view.Lots.Cards)
		m.failStreak = 0
		m.lastErr = nil
	} else {
		m.failStreak++
		m.lastErr = out.Err
	}

	m.syncSpaces()
}

// syncSpaces rebuilds the spaces viewport for the current rows, sort order
// and terminal size.
func (m *Model) syncSpaces() {
	width := m.sectionWidth() - 4
	if width < 1 {
		width = 1
	}

	header, lines := SpaceTable(m.sortOrder.Sort(m.view.Spaces.Rows), m.locale, RenderPill)
	if m.view.Spaces.Placeholder != "" {
		lines = []string{PlaceholderStyle.Render(m.view.Spaces.Placeholder)}
	}
	m.spacesHeader = LabelStyle.Bold(true).Render(header)

	m.spaces.Width = width
	m.spaces.Height = m.spacesHeight()
	m.spaces.SetContent(strings.Join(lines, "\n"))
}

// spacesHeight is whatever vertical room the fixed sections leave.
func (m Model) spacesHeight() int {
	if m.height == 0 {
		return minSpacesHeight
	}

	// section header, column header, section footer
	used := lipgloss.Height(m.renderTop()) + 3
	if m.ShowFooter() {
		used += 2
	}

	h := m.height - used
	if h < minSpacesHeight {
		h = minSpacesHeight
	}
	return h
}

// tickCmd returns a command that sends a tick after the clock interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// ViewState returns a copy of what the dashboard currently shows.
func (m Model) ViewState() render.ViewState {
	return m.view.Clone()
}

// FailStreak returns the number of consecutive failed fetches.
func (m Model) FailStreak() int {
	return m.failStreak
}

// LastError returns the error of the most recent fetch, nil after a success.
func (m Model) LastError() error {
	return m.lastErr
}

// SpaceSort returns the current spaces sort order.
func (m Model) SpaceSort() SortOrder {
	return m.sortOrder
}

// ShowFooter returns true if the terminal is tall enough to show the footer.
func (m Model) ShowFooter() bool {
	return m.height == 0 || m.height >= HeightMinimal
}

// sectionWidth is the width of full-width sections.
func (m Model) sectionWidth() int {
	if m.width == 0 {
		return BreakpointCompact
	}
	return m.width
}
