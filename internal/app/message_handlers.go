package app

import (
	"errors"
	"io/fs"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/markditor/internal/config"
	"github.com/treykane/markditor/internal/locale"
	"github.com/treykane/markditor/internal/platform"
)

// fileOpenedMsg carries the result of a file dialog or a direct open.
type fileOpenedMsg struct {
	file platform.File
	ok   bool
	err  error // set for direct opens that failed
}

// folderChosenMsg carries the result of the folder dialog.
type folderChosenMsg struct {
	path string
	ok   bool
}

// savedMsg carries the result of a save. gen is the document generation
// the save started from.
type savedMsg struct {
	path      string
	content   string
	gen       int
	ok        bool
	cancelled bool
	auto      bool
}

// pendingSave is a save waiting for the one in flight to finish.
type pendingSave struct {
	path    string
	content string
	gen     int
}

// devToolsMsg reports that diagnostics were switched on.
type devToolsMsg struct {
	info string
}

// autoSaveTickMsg is emitted by the autosave timer.
type autoSaveTickMsg struct{}

func (m *Model) openFileDialogCmd() tea.Cmd {
	p, ctx := m.platform, m.ctx
	return func() tea.Msg {
		f, ok := p.OpenFile(ctx)
		return fileOpenedMsg{file: f, ok: ok}
	}
}

// openPathCmd reads path without a dialog, for history entries and the
// directory panel.
func openPathCmd(path string) tea.Cmd {
	return func() tea.Msg {
		content, err := platform.ReadFile(path)
		if err != nil {
			return fileOpenedMsg{file: platform.File{Path: path}, err: err}
		}
		return fileOpenedMsg{file: platform.File{Path: path, Content: content}, ok: true}
	}
}

func (m *Model) openFolderDialogCmd() tea.Cmd {
	p, ctx := m.platform, m.ctx
	return func() tea.Msg {
		path, ok := p.OpenFolder(ctx)
		return folderChosenMsg{path: path, ok: ok}
	}
}

// saveCmd writes content to path, asking for a destination first when path
// is empty. gen tags the result with the document it belongs to.
func (m *Model) saveCmd(path, content string, gen int, auto bool) tea.Cmd {
	p, ctx := m.platform, m.ctx
	return func() tea.Msg {
		if path == "" {
			chosen, ok := p.ShowSaveDialog(ctx)
			if !ok {
				return savedMsg{gen: gen, cancelled: true, auto: auto}
			}
			path = chosen
		}
		ok := p.SaveFile(ctx, path, content)
		return savedMsg{path: path, content: content, gen: gen, ok: ok, auto: auto}
	}
}

// flushBeforeSwitch deals with unsaved edits before the editor loads another
// document. A dirty titled document is saved when autosave is on; otherwise
// the edits are dropped and discarded names the document for the status
// line.
func (m *Model) flushBeforeSwitch() (cmd tea.Cmd, discarded string) {
	m.syncDocument()
	doc := m.docs.Current()
	if !doc.Dirty {
		return nil, ""
	}
	name := doc.Name()
	if doc.Untitled {
		name = m.tr.T(locale.MsgUntitled)
	}
	if doc.Path == "" || !m.prefs.State().AutoSave {
		appLog.Warn("discarding unsaved changes", "path", doc.Path)
		return nil, name
	}
	if m.saving {
		m.queuedSaves = append(m.queuedSaves, pendingSave{path: doc.Path, content: doc.Content, gen: m.docGen})
		return nil, ""
	}
	m.saving = true
	return m.saveCmd(doc.Path, doc.Content, m.docGen, true), ""
}

func (m *Model) devToolsCmd() tea.Cmd {
	p, ctx := m.platform, m.ctx
	return func() tea.Msg {
		p.OpenDevTools(ctx)
		return devToolsMsg{info: p.SystemInfo(ctx)}
	}
}

func (m *Model) saveConfigCmd() tea.Cmd {
	if m.configDir == "" {
		return nil
	}
	dir, cfg := m.configDir, m.cfg
	return func() tea.Msg {
		if err := config.Save(dir, cfg); err != nil {
			appLog.Warn("save config", "dir", dir, "error", err)
		}
		return nil
	}
}

// startSave begins a save of the current document. saveAs forces the save
// dialog.
func (m *Model) startSave(saveAs bool) tea.Cmd {
	doc := m.docs.Current()
	if !doc.Open() {
		m.status = m.tr.T(locale.MsgNoDocument)
		return nil
	}
	if m.saving {
		return nil
	}
	m.syncDocument()
	path := doc.Path
	if saveAs {
		path = ""
	}
	m.saving = true
	return m.saveCmd(path, m.docs.Current().Content, m.docGen, false)
}

// scheduleAutoSave queues the next autosave check at the current interval.
func (m *Model) scheduleAutoSave() tea.Cmd {
	d := m.prefs.AutoSaveDuration()
	if d < MinAutoSaveTick {
		d = MinAutoSaveTick
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return autoSaveTickMsg{}
	})
}

// handleAutoSaveTick saves a dirty titled document when autosave is on. The
// next tick is always scheduled so interval changes apply from the next
// cycle.
func (m *Model) handleAutoSaveTick() (tea.Model, tea.Cmd) {
	next := m.scheduleAutoSave()
	if !m.prefs.State().AutoSave || m.saving {
		return m, next
	}
	m.syncDocument()
	doc := m.docs.Current()
	if !doc.Dirty || doc.Path == "" {
		return m, next
	}
	m.saving = true
	return m, tea.Batch(next, m.saveCmd(doc.Path, doc.Content, m.docGen, true))
}

func (m *Model) handleFileOpened(msg fileOpenedMsg) (tea.Model, tea.Cmd) {
	if msg.ok {
		if cur := m.docs.Current(); cur.Open() && !cur.Untitled && cur.Path == msg.file.Path {
			// already open; keep the buffer and any unsaved edits
			m.panelFocus = false
			m.refocus()
			m.status = displayPath(cur.Path)
			return m, nil
		}
		return m, m.loadDocument(msg.file)
	}
	if msg.err == nil {
		m.status = m.tr.T(locale.MsgCancelled)
		return m, nil
	}
	if errors.Is(msg.err, fs.ErrNotExist) {
		m.prefs.RemoveFromFileHistory(msg.file.Path)
		m.status = m.tr.T(locale.MsgRemovedHistory) + ": " + displayPath(msg.file.Path)
		appLog.Warn("recent file no longer exists", "path", msg.file.Path)
		return m, nil
	}
	m.setStatusError("Open failed: "+displayPath(msg.file.Path), msg.err, "path", msg.file.Path)
	return m, nil
}

func (m *Model) handleFolderChosen(msg folderChosenMsg) (tea.Model, tea.Cmd) {
	if !msg.ok {
		m.status = m.tr.T(locale.MsgCancelled)
		return m, nil
	}
	if err := m.openFolder(msg.path); err != nil {
		m.setStatusError("Open folder failed", err, "path", msg.path)
	}
	return m, nil
}

// handleSaved applies a save result. A result for a document that has since
// been replaced only updates the status line.
func (m *Model) handleSaved(msg savedMsg) (tea.Model, tea.Cmd) {
	m.saving = false
	next := m.startQueuedSave()
	switch {
	case msg.cancelled:
		m.status = m.tr.T(locale.MsgCancelled)
		return m, next
	case !msg.ok:
		m.status = m.tr.T(locale.MsgSaveFailed) + ": " + displayPath(msg.path)
		return m, next
	}

	name := filepath.Base(msg.path)
	if msg.gen == m.docGen {
		m.docs.MarkSaved(msg.path, msg.content)
		name = m.docs.Current().Name()
	} else {
		appLog.Debug("save finished for replaced document", "path", msg.path)
	}
	if msg.auto {
		m.status = m.tr.T(locale.MsgAutoSaved, map[string]any{"Name": name})
	} else {
		m.status = m.tr.T(locale.MsgSaved, map[string]any{"Name": name})
	}
	appLog.Debug("document saved", "path", msg.path, "auto", msg.auto)
	return m, next
}

// startQueuedSave runs the oldest save deferred by flushBeforeSwitch, if any.
func (m *Model) startQueuedSave() tea.Cmd {
	if len(m.queuedSaves) == 0 {
		return nil
	}
	q := m.queuedSaves[0]
	m.queuedSaves = m.queuedSaves[1:]
	m.saving = true
	return m.saveCmd(q.path, q.content, q.gen, true)
}

func (m *Model) handleDevTools(msg devToolsMsg) (tea.Model, tea.Cmd) {
	appLog.Info("system info", "info", msg.info)
	m.status = m.tr.T(locale.MsgDevTools) + " · " + msg.info
	return m, nil
}
