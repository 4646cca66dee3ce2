package ui

import "github.com/charmbracelet/lipgloss"

// ANSI colors for line-oriented output. The dashboard has its own palette.
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorInfo    lipgloss.Color = "6" // Cyan
	ColorAccent  lipgloss.Color = "4" // Blue
	ColorMuted   lipgloss.Color = "8" // Gray (bright black)
)

// spinnerColors is cycled by the spinner animation.
var spinnerColors = []lipgloss.Color{ColorInfo, ColorAccent, ColorSuccess, ColorInfo}
