package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/smartparking/parkwatch/internal/errors"
	"github.com/smartparking/parkwatch/internal/util"
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderTop())
	b.WriteString("\n")
	b.WriteString(m.renderSpacesSection())

	if m.ShowFooter() {
		b.WriteString("\n\n")
		b.WriteString(m.renderFooter())
	}

	return b.String()
}

// renderTop renders everything above the spaces table.
func (m Model) renderTop() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if metrics := m.renderMetrics(); metrics != "" {
		b.WriteString(metrics)
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderLots())
	return b.String()
}

// renderHeader renders the title, endpoint and refresh status.
func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render("parkwatch")

	parts := []string{m.endpoint}
	if m.interval > 0 {
		parts = append(parts, "every "+m.interval.String())
	}
	parts = append(parts, m.refreshStatus())

	stats := lipgloss.NewStyle().
		Foreground(ColorTextSecondary).
		Render(" | " + strings.Join(parts, " | "))

	header := title + stats
	if m.failStreak > 0 {
		header += ErrorStyle.Render(" | " + m.failureText())
	}
	return HeaderStyle.Render(header)
}

// refreshStatus describes the last successful render.
func (m Model) refreshStatus() string {
	if m.refreshing {
		return "refreshing…"
	}
	if m.view.RefreshedAt.IsZero() {
		return "waiting for data"
	}
	return fmt.Sprintf("updated %s (%s)", m.updatedAgo(), m.view.RefreshedText)
}

// updatedAgo is the humanized age of the last successful render.
func (m Model) updatedAgo() string {
	age := m.now().Sub(m.view.RefreshedAt)
	if age < time.Second {
		return "just now"
	}
	return humanize.RelTime(m.view.RefreshedAt, m.now(), "ago", "from now")
}

// failureText summarises the current run of failed fetches.
func (m Model) failureText() string {
	return fmt.Sprintf("✗ %s (%s)",
		util.Count(m.failStreak, "failed fetch", "failed fetches"), ErrorLabel(m.lastErr))
}

// ErrorLabel is a short name for a fetch failure: "HTTP 503", "NETWORK",
// "DECODE".
func ErrorLabel(err error) string {
	if err == nil {
		return "error"
	}
	if status, ok := errors.HTTPStatus(err); ok {
		return fmt.Sprintf("HTTP %d", status)
	}
	if code := errors.Code(err); code != "" {
		return code
	}
	return "error"
}

// renderMetrics renders the row of summary cards.
func (m Model) renderMetrics() string {
	if len(m.view.Metrics) == 0 {
		return ""
	}

	cards := make([]string, 0, len(m.view.Metrics))
	for _, metric := range m.view.Metrics {
		cards = append(cards, renderMetricCard(metric, metricCardWidth))
	}
	return m.layoutCards(cards, metricCardWidth)
}

// renderLots renders the lot grid or its placeholder.
func (m Model) renderLots() string {
	if m.view.Lots.Placeholder != "" {
		return PlaceholderStyle.Render(m.view.Lots.Placeholder)
	}

	cardWidth := m.calculateCardWidth()
	cards := make([]string, 0, len(m.view.Lots.Cards))
	for _, card := range m.view.Lots.Cards {
		cards = append(cards, m.renderLotCard(card, cardWidth))
	}
	return m.layoutCards(cards, cardWidth)
}

// calculateCardWidth determines the lot card width based on terminal width.
func (m Model) calculateCardWidth() int {
	if m.width == 0 || m.width >= BreakpointCompact {
		return lotCardWidth
	}
	w := m.width - 4 // Single column with margin
	if w < cardMinBarWidth+4 {
		w = cardMinBarWidth + 4
	}
	return w
}

// layoutCards arranges cards in rows based on terminal width.
func (m Model) layoutCards(cards []string, cardWidth int) string {
	if len(cards) == 0 {
		return ""
	}

	cardsPerRow := 1
	if m.width > 0 {
		// Account for card margins and borders
		effectiveCardWidth := cardWidth + 3
		cardsPerRow = m.width / effectiveCardWidth
		if cardsPerRow < 1 {
			cardsPerRow = 1
		}
	} else {
		cardsPerRow = BreakpointStandard / (cardWidth + 3)
	}

	var rows []string
	for i := 0; i < len(cards); i += cardsPerRow {
		end := i + cardsPerRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderSpacesSection renders the boxed spaces table with its scroll state.
func (m Model) renderSpacesSection() string {
	width := m.sectionWidth()

	status := "sort: " + m.sortOrder.String()
	if n := len(m.view.Spaces.Rows); n > 0 {
		status = fmt.Sprintf("%d · %s", n, status)
		if m.spaces.TotalLineCount() > m.spaces.Height {
			status += fmt.Sprintf(" · %3.f%%", m.spaces.ScrollPercent()*100)
		}
	}

	lines := []string{
		SectionHeader(m.locale.ColSpace, status, width),
		SectionContentLine(m.spacesHeader, width),
	}
	for _, line := range strings.Split(m.spaces.View(), "\n") {
		lines = append(lines, SectionContentLine(line, width))
	}
	lines = append(lines, SectionFooter(width))

	return strings.Join(lines, "\n")
}

// renderFooter renders the keyboard help footer.
func (m Model) renderFooter() string {
	hints := []string{
		"q quit",
		"r refresh",
		"s sort",
		"↑↓ scroll",
		"? help",
	}

	return FooterStyle.Render(strings.Join(hints, " | "))
}
