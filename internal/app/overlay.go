package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// overlayMode identifies the popup drawn over the content row.
type overlayMode int

const (
	overlayNone overlayMode = iota
	overlayRecent
	overlayPrefs
	overlayPrompt
)

func (o overlayMode) String() string {
	switch o {
	case overlayNone:
		return "none"
	case overlayRecent:
		return "recent"
	case overlayPrefs:
		return "prefs"
	case overlayPrompt:
		return "prompt"
	}
	return "unknown"
}

// openOverlay activates one overlay and ensures any previous overlay state is cleaned up.
func (m *Model) openOverlay(mode overlayMode) {
	if m.overlay == mode {
		return
	}
	m.closeOverlay()
	m.overlay = mode
	m.editor.Blur()
}

// closeOverlay dismisses the active overlay and resets overlay-specific state.
// A pending dialog is answered as cancelled so the waiting command returns.
func (m *Model) closeOverlay() {
	switch m.overlay {
	case overlayRecent:
		m.filter.Blur()
		m.filter.SetValue("")
		m.recentEntries = nil
		m.recentCursor = 0
	case overlayPrefs:
		m.prefsCursor = 0
	case overlayPrompt:
		m.answerPrompt("", false)
	}
	m.overlay = overlayNone
	m.refocus()
}

func (m *Model) isOverlay(mode overlayMode) bool {
	return m.overlay == mode
}

// handlePopupListNav handles the shared up/down/select/close key patterns used by list popups.
// It returns (nextCursor, selectPressed, closePressed, handled).
func handlePopupListNav(msg tea.KeyMsg, cursor, count int) (int, bool, bool, bool) {
	switch {
	case key.Matches(msg, popupKeys.Close):
		return cursor, false, true, true
	case key.Matches(msg, popupKeys.Up):
		if count <= 0 {
			return 0, false, false, true
		}
		return clamp(cursor-1, 0, count-1), false, false, true
	case key.Matches(msg, popupKeys.Down):
		if count <= 0 {
			return 0, false, false, true
		}
		return clamp(cursor+1, 0, count-1), false, false, true
	case key.Matches(msg, popupKeys.Select):
		return cursor, true, false, true
	default:
		return cursor, false, false, false
	}
}
