// Package styles defines shared lipgloss styles for the interactive session.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor   = lipgloss.Color("#5FAFAF") // Teal accent
	secondaryColor = lipgloss.Color("#666666") // Gray for secondary text
	errorColor     = lipgloss.Color("#AF5F5F") // Muted terracotta for errors

	// TitleStyle for the greeting banner
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// PromptStyle for echoed user commands in the transcript
	PromptStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	// SubtleStyle for hints/help text
	SubtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// ErrorStyle for fatal I/O messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor)
)
