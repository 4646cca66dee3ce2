package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/smartparking/parkwatch/internal/render"
)

// Dashboard color palette
const (
	// Background colors
	ColorDarkBg    = lipgloss.Color("#0A0A0F") // Deep void
	ColorSurfaceBg = lipgloss.Color("#12121A") // Dark surface
	ColorBorder    = lipgloss.Color("#2A2A4A") // Glass border (purple tint)

	// Semantic colors for lot severity and pills
	ColorHealthy  = lipgloss.Color("#39FF14") // Neon green
	ColorWarning  = lipgloss.Color("#FFAA00") // Electric amber
	ColorCritical = lipgloss.Color("#FF0055") // Hot red-pink

	// Text colors
	ColorTextPrimary   = lipgloss.Color("#FFFFFF") // Pure white
	ColorTextSecondary = lipgloss.Color("#B4B4D0") // Lavender gray
	ColorTextMuted     = lipgloss.Color("#6B6B8D") // Purple-gray

	// Accent colors - neon pink primary, cyan secondary
	ColorAccent    = lipgloss.Color("#FF2E97") // Neon pink
	ColorAccentDim = lipgloss.Color("#BF40FF") // Neon purple

	// Graph colors
	ColorGraph = lipgloss.Color("#00FFFF") // Neon cyan
)

// Base styles for the dashboard
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	// Card styles - no background set here, each line handles its own
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginRight(1).
			MarginBottom(1)

	MetricCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccentDim).
			Padding(0, 1).
			MarginRight(1)

	// Text styles
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	BigValueStyle = lipgloss.NewStyle().
			Foreground(ColorGraph).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary).
				Italic(true).
				Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorCritical).
			Bold(true)
)

// SeverityColor returns the card accent for a lot severity.
func SeverityColor(s render.Severity) lipgloss.Color {
	switch s {
	case render.SeverityOK:
		return ColorHealthy
	case render.SeverityBad:
		return ColorCritical
	default:
		return ColorWarning
	}
}

// SeverityStyle returns a style with the severity's foreground color.
func SeverityStyle(s render.Severity) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(SeverityColor(s))
}

// PillStyle returns the style for a status pill class.
func PillStyle(class string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch class {
	case render.PillOK, render.PillOnline:
		return base.Foreground(ColorHealthy)
	case render.PillBad:
		return base.Foreground(ColorCritical)
	case render.PillOffline:
		return base.Foreground(ColorTextMuted)
	default:
		return base.Foreground(ColorTextSecondary)
	}
}

// Status glyphs shown in front of pill labels.
const (
	GlyphOK      = "◉"
	GlyphBad     = "●"
	GlyphOnline  = "◉"
	GlyphOffline = "◌"
)

// RenderPill renders a pill as "glyph label" in its class color.
func RenderPill(p render.Pill) string {
	glyph := GlyphOK
	switch p.Class {
	case render.PillBad:
		glyph = GlyphBad
	case render.PillOnline:
		glyph = GlyphOnline
	case render.PillOffline:
		glyph = GlyphOffline
	}
	return PillStyle(p.Class).Render(glyph + " " + p.Label)
}

// OccupancyBar renders how much of a lot is taken, colored by severity.
func OccupancyBar(width, free, total int, sev render.Severity) string {
	if width < 1 {
		width = 1
	}

	filled := 0
	if total > 0 {
		used := total - free
		if used < 0 {
			used = 0
		}
		filled = used * width / total
	}
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("▰", filled) + strings.Repeat("▱", width-filled)
	return SeverityStyle(sev).Render(bar)
}

// SectionHeader renders a section header with the title on the left and value on the right.
// Format: ╭─ Title ────────────────────────────────────── Value ╮
func SectionHeader(title, value string, width int) string {
	if width < 10 {
		width = 10
	}

	// Left: "╭─ " (3 chars) + title + " " (1 char)
	leftWidth := 3 + lipgloss.Width(title) + 1

	// Right: " " (1 char) + value + " ╮" (2 chars)
	rightWidth := 1 + lipgloss.Width(value) + 2

	fillWidth := width - leftWidth - rightWidth
	if fillWidth < 1 {
		fillWidth = 1
	}

	middle := strings.Repeat("─", fillWidth)

	borderStyle := lipgloss.NewStyle().Foreground(ColorBorder)
	titleStyle := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(ColorGraph).Bold(true)

	return borderStyle.Render("╭─ ") +
		titleStyle.Render(title) +
		borderStyle.Render(" "+middle+" ") +
		valueStyle.Render(value) +
		borderStyle.Render(" ╮")
}

// SectionFooter renders the bottom border of a section.
// Format: ╰────────────────────────────────────────────────────╯
func SectionFooter(width int) string {
	if width < 2 {
		width = 2
	}

	middle := strings.Repeat("─", width-2)

	borderStyle := lipgloss.NewStyle().Foreground(ColorBorder)
	return borderStyle.Render("╰" + middle + "╯")
}

// SectionContentLine renders a content line with left and right borders, properly padded to width.
// Format: │ content                                              │
func SectionContentLine(content string, width int) string {
	if width < 4 {
		width = 4
	}

	borderStyle := lipgloss.NewStyle().Foreground(ColorBorder)

	contentWidth := lipgloss.Width(content)

	// Inner width is total width minus "│ " on the left and " │" on the right
	innerWidth := width - 4

	padding := innerWidth - contentWidth
	if padding < 0 {
		padding = 0
	}

	return borderStyle.Render("│") + " " + content + strings.Repeat(" ", padding) + " " + borderStyle.Render("│")
}
