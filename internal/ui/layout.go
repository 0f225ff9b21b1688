package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ComposeLayout stacks the menu bar, ray panel and status bar.
func ComposeLayout(menuBar, rayPanel, statusBar string) string {
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, rayPanel, statusBar)
}

// RenderLegend centres a dim hint line across width.
func RenderLegend(width int, text string) string {
	legend := StyleLegend.Render(text)
	pad := max(0, (width-lipgloss.Width(legend))/2)
	return strings.Repeat(" ", pad) + legend
}
