package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/treykane/markditor/internal/locale"
)

// renderTitleBar draws the app name, the document name with its unsaved
// marker, and the effective theme on the right.
func (m *Model) renderTitleBar(width int) string {
	left := " " + m.tr.T(locale.MsgAppName)
	doc := m.docs.Current()
	if doc.Open() {
		name := doc.Name()
		if doc.Untitled {
			name = m.tr.T(locale.MsgUntitled)
		}
		left += " · " + name
		if doc.Dirty {
			left += " ● " + m.tr.T(locale.MsgUnsavedIndicator)
		}
	}
	right := fmt.Sprintf("%s: %s ", m.tr.T(locale.MsgPrefTheme), m.prefs.ThemeMode())

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	line := left
	if gap > 0 {
		line += strings.Repeat(" ", gap) + right
	}
	return m.styles.titleBar.Width(width).Render(truncate(line, width))
}

// renderToolbar draws the shortcut menu row.
func (m *Model) renderToolbar(width int) string {
	items := []struct{ action, id string }{
		{actionOpenFile, locale.MsgOpenFile},
		{actionOpenFolder, locale.MsgOpenFolder},
		{actionSaveAs, locale.MsgSaveAs},
		{actionRecent, locale.MsgRecentlyOpened},
		{actionPreferences, locale.MsgPreferences},
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		key := m.primaryActionKey(item.action, "")
		if key == "" {
			continue
		}
		parts = append(parts, key+" "+m.tr.T(item.id))
	}
	return m.styles.toolbar.Render(truncate(" "+strings.Join(parts, "   "), width))
}
