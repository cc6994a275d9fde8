package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/treykane/markditor/internal/locale"
)

// renderStatus draws the two footer rows: status message, then key help.
func (m *Model) renderStatus(width int) string {
	status := m.status
	if status == "" {
		status = m.tr.T(locale.MsgReady)
	}
	statusLine := " " + status
	if metrics := m.documentMetricsSummary(); metrics != "" {
		gap := width - lipgloss.Width(statusLine) - lipgloss.Width(metrics) - 1
		if gap > 0 {
			statusLine += strings.Repeat(" ", gap) + metrics
		}
	}
	statusLine = truncate(statusLine, width)
	if m.docs.Current().Dirty {
		statusLine = m.styles.dirty.Render(statusLine)
	} else {
		statusLine = m.styles.status.Render(statusLine)
	}
	m.help.Width = max(0, width-1)
	return statusLine + "\n " + m.help.ShortHelpView(m.helpBindings())
}
