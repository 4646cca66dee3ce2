package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// trendBlocks are the eight bar heights, lowest first.
var trendBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// trendBlock maps a free-space percentage to a bar. The scale is fixed at
// 0-100 so cards of different lots compare at a glance.
func trendBlock(percent float64) rune {
	top := len(trendBlocks) - 1
	idx := int(percent / 100 * float64(top))
	switch {
	case idx < 0:
		idx = 0
	case idx > top:
		idx = top
	}
	return trendBlocks[idx]
}

// TrendLine renders free-space percentages as a row of bars, keeping the
// most recent width samples. Fewer samples are drawn as-is, not stretched.
func TrendLine(percents []float64, width int) string {
	if width <= 0 || len(percents) == 0 {
		return ""
	}
	if len(percents) > width {
		percents = percents[len(percents)-width:]
	}

	var b strings.Builder
	for _, p := range percents {
		b.WriteRune(trendBlock(p))
	}
	return b.String()
}

// RenderFreeTrend renders TrendLine in the given color.
func RenderFreeTrend(percents []float64, width int, color lipgloss.Color) string {
	line := TrendLine(percents, width)
	if line == "" {
		return ""
	}
	return lipgloss.NewStyle().Foreground(color).Render(line)
}
