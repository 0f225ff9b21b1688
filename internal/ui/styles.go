package ui

import "github.com/charmbracelet/lipgloss"

// Night palette, kept dark so the rays carry the color
var (
	ColorText        = lipgloss.Color("#E0E0E0")
	ColorDim         = lipgloss.Color("#6C6C7A")
	ColorAccent      = lipgloss.Color("#EF9A9A")
	ColorBarBG       = lipgloss.Color("#1A1A24")
	ColorBorderNorm  = lipgloss.Color("#3A3A4A")
	ColorBorderPause = lipgloss.Color("#FFAA00")
	ColorLive        = lipgloss.Color("#80CBC4")
	ColorWarning     = lipgloss.Color("#FFAA00")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorBarBG).
			Foreground(ColorText).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorText)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorBarBG).
			Foreground(ColorText).
			Padding(0, 1)

	StyleStatusLive = lipgloss.NewStyle().
			Foreground(ColorLive).
			Bold(true)

	StyleStatusPaused = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StyleLevel = lipgloss.NewStyle().
			Foreground(ColorAccent)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderNorm)

	StylePanelPaused = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderPause)

	StyleLegend = lipgloss.NewStyle().
			Foreground(ColorDim)
)
