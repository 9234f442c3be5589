package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette for the dojo TUI. Cool base with one warm accent; every
// screen builds its own styles from these colors.
var (
	Primary   = lipgloss.Color("#38BDF8") // Sky
	Secondary = lipgloss.Color("#A78BFA") // Violet
	Accent    = lipgloss.Color("#FBBF24") // Amber
	Success   = lipgloss.Color("#4ADE80") // Green
	Error     = lipgloss.Color("#FB7185") // Rose
	Text      = lipgloss.Color("#E2E8F0") // Light slate
	TextDim   = lipgloss.Color("#64748B") // Mid slate
	BgCard    = lipgloss.Color("#1E293B") // Card background
	Border    = lipgloss.Color("#334155") // Dividers and frames
)
