package ui

// Unicode symbols for status event lines.
const (
	SymbolSuccess = "✓" // Endpoint answered
	SymbolFail    = "✗" // Endpoint down
	SymbolStopped = "○" // Monitor stopped
)
