// Package ui provides the small terminal components parkwatch prints outside
// the dashboard: a fetch spinner, status symbols and the color palette for
// line-oriented output.
//
// # Color Scheme
//
// Colors are ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Successful fetches
//	ColorError     (red)    - Failed fetches
//	ColorInfo, ColorAccent  - Spinner animation
//	ColorMuted     (gray)   - Timings and secondary text
//
// # Terminal Detection
//
// IsTerminal decides whether a command renders the interactive dashboard
// and spinners or falls back to plain output suitable for pipes.
package ui
