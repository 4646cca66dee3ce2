// Package monitor implements the terminal parking dashboard.
//
// The dashboard shows the summary metric cards, one card per parking lot and
// a scrollable table of space sensors, all taken from the most recent
// snapshot the poller delivered.
//
// # Architecture
//
// The package uses the Bubble Tea framework (Model-Update-View):
//
//   - Model: holds the render.ViewState plus UI state (size, sort, help)
//   - Update: processes keystrokes, window sizes and poll outcomes
//   - View: draws the current state
//
// Poll outcomes reach the program through a Bridge, whose Deliver method is a
// poller.Handler. The poller serialises handler calls, so outcomes arrive in
// the order the program sends them and the last one rendered wins.
//
// # Failures
//
// A failed fetch replaces the lot cards and the space table with the
// locale's loading-error placeholder. Metric cards and the refresh time keep
// the values of the last success, and the header counts consecutive
// failures until the next success.
//
// # History and Sparklines
//
// History keeps a ring buffer of each lot's free-space percentage, pushed on
// every successful fetch. Lot cards draw it as a trend sparkline.
//
// # Plain Output
//
// RenderPlain and PlainPrinter produce the same regions without styling, for
// pipes and the one-shot command.
//
// # Keyboard Shortcuts
//
//	q, Ctrl+C   - Quit
//	r           - Fetch now
//	s           - Cycle space sort order
//	j/k, ↑/↓    - Scroll the space table
//	Home/End    - Jump to top / bottom
//	?           - Toggle help overlay
package monitor
