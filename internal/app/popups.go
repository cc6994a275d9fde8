package app

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/treykane/markditor/internal/locale"
	"github.com/treykane/markditor/internal/preference"
)

// recentEntry is one row of the recently-opened popup.
type recentEntry struct {
	path   string
	folder bool
}

func (m *Model) openRecentPopup() {
	m.openOverlay(overlayRecent)
	m.filter.Placeholder = m.tr.T(locale.MsgFilter)
	m.filter.SetValue("")
	m.filter.Focus()
	m.recentCursor = 0
	m.rebuildRecentEntries()
	if len(m.recentEntries) == 0 {
		m.status = m.tr.T(locale.MsgNoHistory)
	}
}

// rebuildRecentEntries lists files then folders from the history, narrowed
// by the filter.
func (m *Model) rebuildRecentEntries() {
	st := m.prefs.State()
	all := make([]recentEntry, 0, len(st.FileHistory)+len(st.FolderHistory))
	for _, path := range st.FileHistory {
		all = append(all, recentEntry{path: path})
	}
	for _, path := range st.FolderHistory {
		all = append(all, recentEntry{path: path, folder: true})
	}
	m.recentEntries = filterRecentEntries(all, m.filter.Value())
	m.recentCursor = clamp(m.recentCursor, 0, max(0, len(m.recentEntries)-1))
}

// filterRecentEntries fuzzy-matches query against the entry paths, best
// matches first. Ties keep history order. An empty query keeps everything.
func filterRecentEntries(entries []recentEntry, query string) []recentEntry {
	query = strings.TrimSpace(query)
	if query == "" {
		return entries
	}
	targets := make([]string, len(entries))
	for i, e := range entries {
		targets[i] = e.path
	}
	ranks := fuzzy.RankFindFold(query, targets)
	sort.Stable(ranks)
	out := make([]recentEntry, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, entries[r.OriginalIndex])
	}
	return out
}

func (m *Model) selectedRecentEntry() (recentEntry, bool) {
	if m.recentCursor < 0 || m.recentCursor >= len(m.recentEntries) {
		return recentEntry{}, false
	}
	return m.recentEntries[m.recentCursor], true
}

func (m *Model) handleRecentPopupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cursor, selectPressed, closePressed, handled := handlePopupListNav(msg, m.recentCursor, len(m.recentEntries))
	if handled {
		m.recentCursor = cursor
		switch {
		case closePressed:
			m.closeOverlay()
		case selectPressed:
			return m.openRecentEntry()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, popupKeys.Remove):
		entry, ok := m.selectedRecentEntry()
		if !ok {
			return m, nil
		}
		if entry.folder {
			m.prefs.RemoveFromFolderHistory(entry.path)
		} else {
			m.prefs.RemoveFromFileHistory(entry.path)
		}
		m.welcomePage.reset()
		m.rebuildRecentEntries()
		m.status = m.tr.T(locale.MsgRemovedHistory) + ": " + displayPath(entry.path)
		return m, nil
	case key.Matches(msg, popupKeys.Copy):
		if entry, ok := m.selectedRecentEntry(); ok {
			m.copyPathToClipboard(entry.path)
		}
		return m, nil
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.recentCursor = 0
		m.rebuildRecentEntries()
	}
	return m, cmd
}

func (m *Model) openRecentEntry() (tea.Model, tea.Cmd) {
	entry, ok := m.selectedRecentEntry()
	if !ok {
		return m, nil
	}
	m.closeOverlay()
	if entry.folder {
		if err := m.openFolder(entry.path); err != nil {
			m.setStatusError("Open folder failed", err, "path", entry.path)
		}
		return m, nil
	}
	return m, openPathCmd(entry.path)
}

func (m *Model) renderRecentPopup(width int) string {
	innerWidth := max(0, width-m.styles.popup.GetHorizontalFrameSize())
	lines := []string{
		m.styles.title.Render(m.tr.T(locale.MsgRecentlyOpened)),
		m.filter.View(),
	}
	if len(m.recentEntries) == 0 {
		lines = append(lines, m.styles.muted.Render(m.tr.T(locale.MsgNoHistory)))
	}

	visible := max(1, RecentPopupHeight-len(lines)-m.styles.popup.GetVerticalFrameSize())
	start := 0
	if m.recentCursor >= visible {
		start = m.recentCursor - visible + 1
	}
	end := min(len(m.recentEntries), start+visible)
	for i := start; i < end; i++ {
		entry := m.recentEntries[i]
		marker := "  "
		if entry.folder {
			marker = "▸ "
		}
		line := marker + truncateLeft(displayPath(entry.path), max(0, innerWidth-2))
		if i == m.recentCursor {
			line = m.styles.selected.Render(line)
		}
		lines = append(lines, line)
	}
	return m.styles.popup.Width(max(0, width-m.styles.popup.GetHorizontalBorderSize())).Render(strings.Join(lines, "\n"))
}

// prefRow identifies a row of the preferences popup.
type prefRow int

const (
	prefRowTheme prefRow = iota
	prefRowAutoSave
	prefRowInterval
	prefRowToolbar
	prefRowLanguage
	prefRowCount
)

func (m *Model) openPrefsPopup() {
	m.openOverlay(overlayPrefs)
	m.prefsCursor = 0
}

func (m *Model) handlePrefsPopupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cursor, selectPressed, closePressed, handled := handlePopupListNav(msg, m.prefsCursor, int(prefRowCount))
	if handled {
		m.prefsCursor = cursor
		switch {
		case closePressed:
			m.closeOverlay()
		case selectPressed:
			m.adjustPref(prefRow(cursor), 1)
		}
		return m, nil
	}
	switch {
	case key.Matches(msg, popupKeys.PrefsUp):
		m.prefsCursor = clamp(m.prefsCursor-1, 0, int(prefRowCount)-1)
	case key.Matches(msg, popupKeys.PrefsDown):
		m.prefsCursor = clamp(m.prefsCursor+1, 0, int(prefRowCount)-1)
	case key.Matches(msg, popupKeys.Change):
		m.adjustPref(prefRow(m.prefsCursor), 1)
	case key.Matches(msg, popupKeys.Back):
		m.adjustPref(prefRow(m.prefsCursor), -1)
	}
	return m, nil
}

// adjustPref applies one step of change to a preference. delta only matters
// for the interval; the other rows cycle or toggle.
func (m *Model) adjustPref(row prefRow, delta int) {
	st := m.prefs.State()
	switch row {
	case prefRowTheme:
		m.prefs.SetThemeMode(st.PrefThemeMode.Next())
	case prefRowAutoSave:
		m.prefs.ToggleAutoSave(!st.AutoSave)
	case prefRowInterval:
		m.prefs.SetAutoSaveInterval(max(preference.MinAutoSaveInterval, st.AutoSaveInterval+delta*AutoSaveIntervalStep))
	case prefRowToolbar:
		show := !st.DefaultShowToolbar
		m.prefs.ToggleDefaultShowToolbar(show)
		m.showToolbar = show
		m.applyLayout(m.calculateLayout())
	case prefRowLanguage:
		m.prefs.SetLanguageCode(locale.Next(st.LanguageCode))
		m.welcomePage.reset()
	}
}

func (m *Model) onOff(v bool) string {
	if v {
		return m.tr.T(locale.MsgOn)
	}
	return m.tr.T(locale.MsgOff)
}

func (m *Model) renderPrefsPopup(width int) string {
	st := m.prefs.State()
	theme := string(st.PrefThemeMode)
	if effective := m.prefs.ThemeMode(); effective != st.PrefThemeMode {
		theme = fmt.Sprintf("%s (%s)", theme, effective)
	}
	rows := []struct {
		label string
		value string
	}{
		{m.tr.T(locale.MsgPrefTheme), theme},
		{m.tr.T(locale.MsgPrefAutoSave), m.onOff(st.AutoSave)},
		{m.tr.T(locale.MsgPrefInterval), fmt.Sprintf("%d ms", st.AutoSaveInterval)},
		{m.tr.T(locale.MsgPrefToolbar), m.onOff(st.DefaultShowToolbar)},
		{m.tr.T(locale.MsgPrefLanguage), st.LanguageCode},
	}

	lines := []string{m.styles.title.Render(m.tr.T(locale.MsgPreferences)), ""}
	for i, row := range rows {
		line := fmt.Sprintf("%-24s ‹ %s ›", row.label, row.value)
		if i == m.prefsCursor {
			line = m.styles.selected.Render(line)
		}
		lines = append(lines, line)
	}
	return m.styles.popup.Width(max(0, width-m.styles.popup.GetHorizontalBorderSize())).Render(strings.Join(lines, "\n"))
}
