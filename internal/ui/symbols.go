package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Fetch succeeded
	SymbolFail    = "✗" // Fetch failed
	SymbolPending = "○" // Not started
)
