package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/markditor/internal/locale"
)

// handleKey routes key presses: the active overlay first, then global
// shortcuts, then the focused area.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.overlay {
	case overlayPrompt:
		return m.handlePromptKey(msg)
	case overlayRecent:
		return m.handleRecentPopupKey(msg)
	case overlayPrefs:
		return m.handlePrefsPopupKey(msg)
	}

	if model, cmd, handled := m.handleGlobalKey(msg); handled {
		return model, cmd
	}

	switch {
	case m.panelFocus && m.panelVisible():
		return m.handlePanelKey(msg)
	case m.preview && m.docs.HasDocOpened():
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case m.docs.HasDocOpened():
		before := m.captureEditorSnapshot()
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		m.recordTypingMutation(before, m.captureEditorSnapshot(), time.Now())
		m.syncDocument()
		return m, cmd
	}
	return m, nil
}

// handleGlobalKey runs the action bound to msg, if any.
func (m *Model) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch m.actionForKey(msg.String()) {
	case actionQuit:
		m.syncDocument()
		return m, tea.Quit, true
	case actionOpenFile:
		return m, m.openFileDialogCmd(), true
	case actionOpenFolder:
		return m, m.openFolderDialogCmd(), true
	case actionSave:
		return m, m.startSave(false), true
	case actionSaveAs:
		return m, m.startSave(true), true
	case actionNewDocument:
		return m, m.newDocument(), true
	case actionRecent:
		m.openRecentPopup()
		return m, nil, true
	case actionPreferences:
		m.openPrefsPopup()
		return m, nil, true
	case actionTogglePanel:
		m.showPanel = !m.showPanel
		m.applyLayout(m.calculateLayout())
		m.refocus()
		return m, nil, true
	case actionPanelShrink:
		return m, m.resizePanel(-PanelSizeStep), true
	case actionPanelGrow:
		return m, m.resizePanel(PanelSizeStep), true
	case actionTogglePreview:
		m.togglePreview()
		return m, nil, true
	case actionToggleToolbar:
		m.showToolbar = !m.showToolbar
		m.applyLayout(m.calculateLayout())
		return m, nil, true
	case actionClearHistory:
		m.prefs.ClearAllHistory()
		m.welcomePage.reset()
		m.status = m.tr.T(locale.MsgHistoryCleared)
		return m, nil, true
	case actionDevTools:
		return m, m.devToolsCmd(), true
	case actionUndo:
		if m.editorFocused() {
			m.undoEditorChange()
			return m, nil, true
		}
	case actionRedo:
		if m.editorFocused() {
			m.redoEditorChange()
			return m, nil, true
		}
	case actionSwitchFocus:
		if m.panelVisible() && m.docs.HasDocOpened() {
			m.panelFocus = !m.panelFocus
			m.refocus()
			return m, nil, true
		}
	}
	return m, nil, false
}

// togglePreview switches the main panel between the editor and the rendered
// document.
func (m *Model) togglePreview() {
	if !m.docs.HasDocOpened() {
		m.status = m.tr.T(locale.MsgNoDocument)
		return
	}
	m.syncDocument()
	m.preview = !m.preview
	if m.preview {
		m.viewport.GotoTop()
	}
	m.refocus()
}
