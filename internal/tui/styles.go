// Package tui provides an interactive terminal inspector for IPA
// transcriptions.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - titles
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - segments, subtitles
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - glyphs
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text
	ColorSuccess   = lipgloss.Color("#a8e6cf") // Green - well-formed entries
	ColorText      = lipgloss.Color("#f1faee") // Light text
	ColorLabel     = lipgloss.Color("#a8dadc") // Label color
	ColorBgAlt     = lipgloss.Color("#2d3436") // Alt background
	ColorBorder    = lipgloss.Color("#3d5a80") // Border color
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	entryStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1)

	entrySelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent).
				Background(ColorBgAlt).
				Padding(0, 1)

	entryBoundaryStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Padding(0, 1)

	entryStressStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Padding(0, 1)

	entryBadStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Padding(0, 1)

	glyphStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Background(ColorBgAlt).
			Padding(1, 4).
			Align(lipgloss.Center)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel).
			Bold(true).
			Width(12)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	detailBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	errorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
