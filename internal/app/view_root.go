package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View draws the full UI: title bar, optional toolbar, the panel and main
// row (or the active popup), and the footer.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	layout := m.calculateLayout()
	rows := []string{m.renderTitleBar(m.width)}
	if layout.ToolbarVisible {
		rows = append(rows, m.renderToolbar(m.width))
	}

	var content string
	if m.overlay != overlayNone {
		content = m.renderActiveOverlay(m.width, layout.ContentHeight)
	} else {
		main := m.renderMain(layout.MainWidth, layout.ContentHeight)
		if layout.PanelWidth > 0 {
			panel := m.renderPanel(layout.PanelWidth, layout.ContentHeight)
			content = lipgloss.JoinHorizontal(lipgloss.Top, panel, main)
		} else {
			content = main
		}
	}
	rows = append(rows, padBlock(content, m.width, layout.ContentHeight))
	rows = append(rows, m.renderStatus(m.width))
	return padBlock(strings.Join(rows, "\n"), m.width, m.height)
}
