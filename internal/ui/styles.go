package ui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/sailing-score/internal/forecast"
)

var (
	// Color palette
	colorPrimary = lipgloss.Color("#00BFFF") // Deep sky blue
	colorDanger  = lipgloss.Color("#FF6B6B")
	colorWarning = lipgloss.Color("#FFD93D")
	colorSuccess = lipgloss.Color("#6BCF7F")
	colorMuted   = lipgloss.Color("#6C757D")
	colorBorder  = lipgloss.Color("#4A90E2")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true).
			Padding(0, 2)

	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				MarginTop(1)

	sectionBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2).
			MarginBottom(1)

	dangerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorDanger).
			Foreground(colorDanger).
			Padding(0, 2)

	slotStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			MarginRight(1)

	selectedSlotStyle = slotStyle.
				Border(lipgloss.ThickBorder()).
				BorderForeground(lipgloss.Color("#FFFFFF"))
)

// bandStyle colours text by score band.
func bandStyle(b forecast.Band) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(b.Color())).Bold(true)
}

// bandBadge renders a score on a band-coloured background.
func bandBadge(score int) string {
	b := forecast.Classify(score)
	return lipgloss.NewStyle().
		Background(lipgloss.Color(b.Color())).
		Foreground(lipgloss.Color("#000000")).
		Bold(true).
		Padding(0, 1).
		Render(strconv.Itoa(score))
}
