package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rainbow-ray.klederson.com/internal/config"
)

const maxSourceName = 16

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, sourceName string, paused bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"P", "ause"},
		{"+-", " alpha"},
		{"[]", " hue"},
		{"Q", "uit"},
	}

	var menu strings.Builder
	for _, k := range keys {
		menu.WriteString("  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label))
	}

	status := StyleStatusLive.Render("LIVE")
	if paused {
		status = StyleStatusPaused.Render("PAUSED")
	}

	if r := []rune(sourceName); len(r) > maxSourceName {
		sourceName = string(r[:maxSourceName-1]) + "…"
	}
	sourceInfo := StyleMenuLabel.Render(fmt.Sprintf("Source: %s", sourceName))

	left := StyleMenuKey.Render(title) + menu.String()
	right := status + "  " + sourceInfo + " "

	gap := max(0, width-lipgloss.Width(left)-lipgloss.Width(right)-2)
	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
