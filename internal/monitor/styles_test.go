package monitor

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/smartparking/parkwatch/internal/render"
	"github.com/stretchr/testify/assert"
)

func TestSeverityColor(t *testing.T) {
	tests := []struct {
		severity render.Severity
		expect   lipgloss.Color
	}{
		{render.SeverityOK, ColorHealthy},
		{render.SeverityWarn, ColorWarning},
		{render.SeverityBad, ColorCritical},
		{render.Severity("unknown"), ColorWarning},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			assert.Equal(t, tt.expect, SeverityColor(tt.severity))
		})
	}
}

func TestRenderPill(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	tests := []struct {
		pill   render.Pill
		expect string
	}{
		{render.OccupancyPill(false, render.English), "◉ Free"},
		{render.OccupancyPill(true, render.English), "● Occupied"},
		{render.SensorPill(true, render.English), "◉ Online"},
		{render.SensorPill(false, render.Italian), "◌ Offline"},
		{render.Pill{Class: "other", Label: "?"}, "◉ ?"},
	}

	for _, tt := range tests {
		t.Run(tt.expect, func(t *testing.T) {
			assert.Equal(t, tt.expect, RenderPill(tt.pill))
		})
	}
}

func TestRenderPill_Colored(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	defer lipgloss.SetColorProfile(termenv.Ascii)

	ok := RenderPill(render.Pill{Class: render.PillOK, Label: "Free"})
	bad := RenderPill(render.Pill{Class: render.PillBad, Label: "Free"})

	assert.NotEqual(t, ok, bad)
	assert.Equal(t, lipgloss.Width(ok), lipgloss.Width(bad))
}

func TestOccupancyBar(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	tests := []struct {
		name   string
		width  int
		free   int
		total  int
		expect string
	}{
		{"quarter free", 10, 5, 20, "▰▰▰▰▰▰▰▱▱▱"},
		{"all free", 4, 8, 8, "▱▱▱▱"},
		{"full", 4, 0, 8, "▰▰▰▰"},
		{"no capacity", 4, 0, 0, "▱▱▱▱"},
		{"free above total", 4, 9, 8, "▱▱▱▱"},
		{"negative free", 4, -2, 8, "▰▰▰▰"},
		{"zero width", 0, 1, 2, "▱"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, OccupancyBar(tt.width, tt.free, tt.total, render.SeverityOK))
		})
	}
}

func TestSectionHeader(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	header := SectionHeader("Space", "sort: by lot", 40)
	assert.Equal(t, 40, lipgloss.Width(header))
	assert.Contains(t, header, "╭─ Space ")
	assert.Contains(t, header, " sort: by lot ╮")

	// Narrow widths still render both ends.
	assert.Contains(t, SectionHeader("Space", "value", 5), "value")
}

func TestSectionFooter(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	assert.Equal(t, "╰────╯", SectionFooter(6))
	assert.Equal(t, "╰╯", SectionFooter(0))
}

func TestSectionContentLine(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	assert.Equal(t, "│ ab     │", SectionContentLine("ab", 10))
	assert.Equal(t, 10, lipgloss.Width(SectionContentLine("", 10)))
}
