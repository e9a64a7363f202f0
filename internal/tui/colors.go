package tui

// Color constants for the punch TUI theme
const (
	ColorBorder = "#2F4A43" // Muted teal-grey

	// Text Colors
	ColorPrimaryText   = "#E8F0ED" // Titles, selected rows
	ColorSecondaryText = "#A7B8B2" // Timestamps, captions
	ColorDisabledText  = "#5F6E69" // Muted/empty-state text
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Teal theme)
	ColorAccentMain   = "#0D9488" // Active tab, borders, highlights
	ColorAccentBright = "#2DD4BF" // Clock digits, hover

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Saved confirmations
	ColorWarning = "#F59E0B" // Long-session warnings
)
