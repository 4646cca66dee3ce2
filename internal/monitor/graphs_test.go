package monitor

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestTrendLine(t *testing.T) {
	tests := []struct {
		name     string
		percents []float64
		width    int
		expect   string
	}{
		{"empty", nil, 5, ""},
		{"zero width", []float64{50}, 0, ""},
		{"extremes", []float64{0, 100}, 2, "▁█"},
		{"midpoint", []float64{50}, 1, "▄"},
		{"short data not stretched", []float64{100}, 3, "█"},
		{"out of range clamped", []float64{-10, 250}, 2, "▁█"},
		{"keeps most recent", []float64{0, 0, 100, 0}, 2, "█▁"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, TrendLine(tt.percents, tt.width))
		})
	}
}

func TestRenderFreeTrend(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	assert.Empty(t, RenderFreeTrend([]float64{1, 2}, 0, ColorGraph))
	assert.Empty(t, RenderFreeTrend(nil, 10, ColorGraph))
	assert.Equal(t, "▁█", RenderFreeTrend([]float64{0, 100}, 10, ColorGraph))
}
