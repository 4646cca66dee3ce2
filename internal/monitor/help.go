package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/smartparking/parkwatch/internal/poller"
)

// HelpBinding is one keyboard shortcut in the help overlay.
type HelpBinding struct {
	Key  string
	Desc string
}

// HelpSection groups shortcuts under a heading.
type HelpSection struct {
	Title    string
	Bindings []HelpBinding
}

var helpSections = []HelpSection{
	{
		Title: "Dashboard",
		Bindings: []HelpBinding{
			{Key: "r", Desc: "Fetch now"},
			{Key: "?", Desc: "Toggle this help"},
			{Key: "Esc", Desc: "Close help"},
			{Key: "q / Ctrl+C", Desc: "Quit"},
		},
	},
	{
		Title: "Spaces",
		Bindings: []HelpBinding{
			{Key: "s", Desc: "Cycle space sort order"},
			{Key: "up / k", Desc: "Scroll spaces up"},
			{Key: "down / j", Desc: "Scroll spaces down"},
			{Key: "PgUp / PgDn", Desc: "Scroll a page"},
			{Key: "Home / End", Desc: "Jump to first / last space"},
			{Key: "wheel", Desc: "Scroll with the mouse"},
		},
	},
}

var (
	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Background(ColorSurfaceBg).
			Padding(1, 2)

	helpTitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	helpSectionStyle = lipgloss.NewStyle().
				Foreground(ColorGraph).
				Bold(true)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true).
			Width(14)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)
)

// renderHelpOverlay replaces the dashboard with a centered shortcut list
// and the current polling settings.
func (m Model) renderHelpOverlay() string {
	lines := []string{helpTitleStyle.Render("Keyboard Shortcuts")}

	for _, section := range helpSections {
		lines = append(lines, "", helpSectionStyle.Render(section.Title))
		for _, b := range section.Bindings {
			lines = append(lines, helpKeyStyle.Render(b.Key)+helpDescStyle.Render(b.Desc))
		}
	}

	lines = append(lines, "",
		MutedStyle.Render(fmt.Sprintf("Fetching every %s, spaces sorted %s", m.intervalText(), m.sortOrder)),
		LabelStyle.Render("Press ? to close"),
	)

	return lipgloss.Place(
		m.sectionWidth(),
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		helpBoxStyle.Render(strings.Join(lines, "\n")),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(ColorDarkBg),
	)
}

func (m Model) intervalText() string {
	if m.interval > 0 {
		return m.interval.String()
	}
	return poller.DefaultInterval.String()
}
