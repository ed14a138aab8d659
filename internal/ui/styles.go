// Package ui holds the terminal styles for the preview and prompt output.
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Note: Warp terminal fix is in internal/termfix package, imported first in main.go

var (
	ColorYellow = lipgloss.Color("#FFFF00")
	ColorRed    = lipgloss.Color("#FF0000")
	ColorGreen  = lipgloss.Color("#00FF00")
	ColorWhite  = lipgloss.Color("#FFFFFF")

	outlineStyle = lipgloss.NewStyle().Foreground(ColorWhite).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(ColorWhite).Bold(true)
	hashStyle    = lipgloss.NewStyle().Foreground(ColorYellow)
	noticeStyle  = lipgloss.NewStyle().Foreground(ColorYellow)
	errorStyle   = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(ColorGreen)
)

// plain suppresses styling when the environment has no color support, so
// prompts stay grep-able in pipes and dumb terminals
func plain() bool {
	return termenv.EnvColorProfile() == termenv.Ascii
}

func render(style lipgloss.Style, s string) string {
	if plain() {
		return s
	}
	return style.Render(s)
}

// Outline emphasizes the source -> target summary line
func Outline(s string) string { return render(outlineStyle, s) }

// Label emphasizes a field label such as "Merge request URL:"
func Label(s string) string { return render(labelStyle, s) }

// Hash colors a commit hash
func Hash(s string) string { return render(hashStyle, s) }

// Notice colors a warning the user should read before answering a prompt
func Notice(s string) string { return render(noticeStyle, s) }

// Error colors a fatal message prefix
func Error(s string) string { return render(errorStyle, s) }

// Success colors a completion message
func Success(s string) string { return render(successStyle, s) }
