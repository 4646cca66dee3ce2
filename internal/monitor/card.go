package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/smartparking/parkwatch/internal/render"
)

// Card layout constants
const (
	lotCardWidth    = 38
	metricCardWidth = 18
	cardMinBarWidth = 10
)

// cardDividerStyle creates a subtle divider line with matching background
var cardDividerStyle = lipgloss.NewStyle().
	Foreground(ColorBorder).
	Background(ColorSurfaceBg)

// renderCardDivider creates a subtle thin divider line
func renderCardDivider(width int) string {
	divider := strings.Repeat("─", width)
	return cardDividerStyle.Render(divider)
}

// truncateWithEllipsis truncates a string to maxLen display cells, adding
// an ellipsis if needed.
func truncateWithEllipsis(s string, maxLen int) string {
	if maxLen <= 1 || lipgloss.Width(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > maxLen {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// renderCardLine renders a text line with proper background fill.
// Applies background to the entire line including content and padding.
func renderCardLine(content string, width int) string {
	contentWidth := lipgloss.Width(content)
	padding := ""
	if width > contentWidth {
		padding = strings.Repeat(" ", width-contentWidth)
	}
	lineStyle := lipgloss.NewStyle().Background(ColorSurfaceBg)
	return lineStyle.Render(content + padding)
}

// renderLotCard renders a single parking lot card. The border takes the
// lot's severity color.
func (m Model) renderLotCard(card render.LotCard, width int) string {
	style := CardStyle.Width(width).BorderForeground(SeverityColor(card.Severity))

	// Inner width for content (account for card padding)
	innerWidth := width - 4
	if innerWidth < cardMinBarWidth {
		innerWidth = cardMinBarWidth
	}

	var lines []string

	lines = append(lines, renderCardLine(TitleStyle.Render(truncateWithEllipsis(card.Title, innerWidth)), innerWidth))
	lines = append(lines, renderCardDivider(innerWidth))

	free := SeverityStyle(card.Severity).Bold(true).Render(card.FreeText)
	lines = append(lines, renderCardLine(free+" "+LabelStyle.Render(card.TotalText), innerWidth))
	lines = append(lines, renderCardLine(OccupancyBar(innerWidth, card.Free, card.TotalSpaces, card.Severity), innerWidth))

	if trend := m.history.Get(card.LotID, innerWidth); len(trend) > 1 {
		lines = append(lines, renderCardLine(RenderFreeTrend(trend, innerWidth, ColorGraph), innerWidth))
	}

	lines = append(lines, renderCardLine(MutedStyle.Render(truncateWithEllipsis(card.UpdatedText, innerWidth)), innerWidth))

	return style.Render(strings.Join(lines, "\n"))
}

// renderMetricCard renders one summary metric.
func renderMetricCard(metric render.Metric, width int) string {
	innerWidth := width - 4
	label := LabelStyle.Render(truncateWithEllipsis(metric.Label, innerWidth))
	value := BigValueStyle.Render(truncateWithEllipsis(metric.Text, innerWidth))
	return MetricCardStyle.Width(width).Render(label + "\n" + value)
}
