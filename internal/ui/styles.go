package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	PrimaryColor = lipgloss.Color("#4B6BFD")
	AccentColor  = lipgloss.Color("#38FFB6")
	SuccessColor = lipgloss.Color("#75F591")
	WarningColor = lipgloss.Color("#FFB238")
	ErrorColor   = lipgloss.Color("#FF4D4D")
	TextColor    = lipgloss.Color("#FFFFFF")
	DimTextColor = lipgloss.Color("#AAAAAA")

	// Styles
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(DimTextColor).
			MarginBottom(1)

	InfoStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	HighlightStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(1, 2)

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(AccentColor).
				Bold(true).
				Padding(0, 1)

	TableCellStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(0, 1)

	LogoStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(1, 0)

	FooterStyle = lipgloss.NewStyle().
			Foreground(DimTextColor).
			Align(lipgloss.Center).
			Padding(1, 0)
)
