package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Header style for titles and section headers
	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// Label style for field labels in summaries
	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	StyleError = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// Muted style for secondary text
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Subtle style for hints
	StyleSubtle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Italic(true)

	StyleHighlight = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)
)

const logoASCII = `
             _                            _
  __ _ _ __ | |_ ___ ___  _ __  ___  ___ | | ___
 / _' | '_ \| __/ __/ _ \| '_ \/ __|/ _ \| |/ _ \
| (_| | |_) | || (_| (_) | | | \__ \ (_) | |  __/
 \__, | .__/ \__\___\___/|_| |_|___/\___/|_|\___|
 |___/|_|`

// Logo returns the gptconsole ASCII art
func Logo() string {
	return StyleHeader.Render(strings.Trim(logoASCII, "\n"))
}

// Rule is a horizontal line of width characters
func Rule(char string, width int) string {
	return strings.Repeat(char, width)
}

func Success(format string, args ...any) string {
	return StyleSuccess.Render(fmt.Sprintf(format, args...))
}

func Error(format string, args ...any) string {
	return StyleError.Render(fmt.Sprintf(format, args...))
}

func Warning(format string, args ...any) string {
	return StyleWarning.Render(fmt.Sprintf(format, args...))
}

func Hint(format string, args ...any) string {
	return StyleSubtle.Render(fmt.Sprintf(format, args...))
}

// Field renders "label value" for summaries
func Field(label, value string) string {
	return StyleLabel.Render(label) + " " + value
}
