package tui

import "github.com/charmbracelet/lipgloss"

// Color palette shared by the console tools and the setup wizard
var (
	ColorPrimary   = lipgloss.Color("#10A37F") // green accent
	ColorSecondary = lipgloss.Color("#06B6D4") // cyan

	ColorSuccess = lipgloss.Color("#22C55E")
	ColorError   = lipgloss.Color("#EF4444")
	ColorWarning = lipgloss.Color("#F59E0B")

	ColorText   = lipgloss.Color("#F8FAFC")
	ColorMuted  = lipgloss.Color("#94A3B8")
	ColorSubtle = lipgloss.Color("#64748B")
)
