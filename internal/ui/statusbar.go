package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var sparkBlocks = []rune(" ▁▂▃▄▅▆▇█")

// Status is the data shown in the bottom bar.
type Status struct {
	Paused     bool
	Frames     uint64
	FrameID    int
	Resolution int
	Alpha      float64
	Hue        float64
	Levels     []float64 // Oldest first, each in [0, 1]
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, s Status) string {
	state := StyleStatusLive.Render("[LIVE]")
	if s.Paused {
		state = StyleStatusPaused.Render("[PAUSED]")
	}

	info := fmt.Sprintf(" Rays: %d  Frame: %d (%d)  Alpha: %.2f  Hue: %ddeg  ",
		s.Resolution, s.Frames, s.FrameID, s.Alpha, int(s.Hue))

	head := state + StyleStatusBar.Render(info)
	levels := s.Levels
	if room := max(0, width-lipgloss.Width(head)-2); len(levels) > room {
		levels = levels[len(levels)-room:]
	}
	content := head + StyleLevel.Render(Sparkline(levels))

	gap := max(0, width-lipgloss.Width(content)-2)
	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}

// Sparkline renders values in [0, 1] as block characters.
func Sparkline(values []float64) string {
	var sb strings.Builder
	top := len(sparkBlocks) - 1
	for _, v := range values {
		idx := int(v*float64(top) + 0.5)
		idx = min(top, max(0, idx))
		sb.WriteRune(sparkBlocks[idx])
	}
	return sb.String()
}
