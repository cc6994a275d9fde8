package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderActiveOverlay centers the active popup in the content row.
func (m *Model) renderActiveOverlay(width, height int) string {
	popupWidth := max(20, min(width-PopupPadding, 80))
	var popup string
	switch m.overlay {
	case overlayRecent:
		popup = m.renderRecentPopup(popupWidth)
	case overlayPrefs:
		popup = m.renderPrefsPopup(popupWidth)
	case overlayPrompt:
		popup = m.renderPromptPopup(popupWidth)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, popup)
}

func (m *Model) renderPromptPopup(width int) string {
	innerWidth := max(0, width-m.styles.popup.GetHorizontalFrameSize())
	m.input.Width = max(1, innerWidth-lipgloss.Width(m.input.Prompt)-1)
	lines := []string{
		m.styles.title.Render(m.input.Placeholder),
		"",
		m.input.View(),
	}
	return m.styles.popup.Width(max(0, width-m.styles.popup.GetHorizontalBorderSize())).Render(strings.Join(lines, "\n"))
}
