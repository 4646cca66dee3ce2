package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/smartparking/parkwatch/internal/render"
)

// columnGap separates table columns.
const columnGap = "  "

// SpaceTable lays out space rows as aligned columns. pill renders the two
// status columns, so the TUI can color them and plain output can not.
// Column widths fit the widest cell, measured without ANSI sequences.
func SpaceTable(rows []render.SpaceRow, loc render.Locale, pill func(render.Pill) string) (header string, lines []string) {
	headers := []string{loc.ColLot, loc.ColSpace, loc.ColState, loc.ColSensor, loc.ColLastSeen}

	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{
			r.LotID,
			r.SpaceID,
			pill(r.Occupancy),
			pill(r.Sensor),
			r.LastSeen,
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range cells {
		for i, c := range row {
			if w := lipgloss.Width(c); w > widths[i] {
				widths[i] = w
			}
		}
	}

	header = joinColumns(headers, widths)
	lines = make([]string, 0, len(cells))
	for _, row := range cells {
		lines = append(lines, joinColumns(row, widths))
	}
	return header, lines
}

// PlainPill renders a pill as its bare label.
func PlainPill(p render.Pill) string {
	return p.Label
}

func joinColumns(cols []string, widths []int) string {
	var b strings.Builder
	for i, c := range cols {
		if i > 0 {
			b.WriteString(columnGap)
		}
		b.WriteString(c)
		// no trailing padding on the last column
		if i < len(cols)-1 {
			if pad := widths[i] - lipgloss.Width(c); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
	}
	return b.String()
}
