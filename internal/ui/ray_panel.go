package ui

// RenderRayPanel wraps the ray canvas with a styled border. The canvas is
// rendered externally to avoid import cycles.
func RenderRayPanel(width, height int, content, legend string, paused bool) string {
	style := StylePanelBorder
	if paused {
		style = StylePanelPaused
	}
	return style.Width(width - 2).Height(height - 2).Render(content + "\n" + legend)
}
