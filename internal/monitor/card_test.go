package monitor

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/smartparking/parkwatch/internal/render"
	"github.com/stretchr/testify/assert"
)

func TestTruncateWithEllipsis(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		expect string
	}{
		{"fits", "LOT A1", 10, "LOT A1"},
		{"exact", "LOT A1", 6, "LOT A1"},
		{"truncated", "PARCHEGGIO NORD", 8, "PARCHEG…"},
		{"tiny limit", "abc", 1, "abc"},
		{"wide runes", "停车场停车场", 5, "停车…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateWithEllipsis(tt.input, tt.maxLen)
			assert.Equal(t, tt.expect, got)
			if tt.maxLen > 1 {
				assert.LessOrEqual(t, lipgloss.Width(got), tt.maxLen)
			}
		})
	}
}

func TestRenderLotCard(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	m := testModel(nil)
	card := render.LotCard{
		LotID:       "A1",
		Free:        7,
		TotalSpaces: 20,
		Title:       "LOT A1",
		FreeText:    "7",
		TotalText:   "Out of 20",
		UpdatedText: "Last update: —",
		Severity:    render.SeverityWarn,
	}

	out := m.renderLotCard(card, lotCardWidth)
	assert.Contains(t, out, "LOT A1")
	assert.Contains(t, out, "7 Out of 20")
	assert.Contains(t, out, "Last update: —")
	assert.Contains(t, out, "▰")
	assert.NotContains(t, out, "▁")

	// A second sample adds the trend line.
	m.history.Push([]render.LotCard{card})
	card.Free = 20
	m.history.Push([]render.LotCard{card})
	withTrend := m.renderLotCard(card, lotCardWidth)
	assert.Equal(t, lipgloss.Height(out)+1, lipgloss.Height(withTrend))
	assert.True(t, strings.ContainsAny(withTrend, "▁▂▃▄▅▆▇█"))
}

func TestRenderMetricCard(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	out := renderMetricCard(render.Metric{Key: "lots", Label: "Lots", Text: "12"}, metricCardWidth)
	assert.Contains(t, out, "Lots")
	assert.Contains(t, out, "12")
	assert.Equal(t, 4, lipgloss.Height(out))
}
