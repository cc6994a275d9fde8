package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/markditor/internal/config"
	"github.com/treykane/markditor/internal/locale"
	"github.com/treykane/markditor/internal/platform"
)

// PromptBridge implements platform.Prompter with an in-app path dialog.
// Prompt runs on a command goroutine and blocks until the user answers in
// the UI or ctx is done.
type PromptBridge struct {
	requests chan promptRequest
}

type promptRequest struct {
	kind  platform.DialogKind
	reply chan promptReply
}

type promptReply struct {
	path string
	ok   bool
}

// promptRequestMsg delivers a dialog request to the update loop.
type promptRequestMsg promptRequest

// NewPromptBridge returns an idle bridge.
func NewPromptBridge() *PromptBridge {
	return &PromptBridge{requests: make(chan promptRequest)}
}

var _ platform.Prompter = (*PromptBridge)(nil)

// Prompt implements platform.Prompter.
func (b *PromptBridge) Prompt(ctx context.Context, kind platform.DialogKind) (string, bool) {
	req := promptRequest{kind: kind, reply: make(chan promptReply, 1)}
	select {
	case b.requests <- req:
	case <-ctx.Done():
		return "", false
	}
	select {
	case r := <-req.reply:
		return r.path, r.ok
	case <-ctx.Done():
		return "", false
	}
}

// wait returns a command that delivers the next dialog request. The command
// returns nil once ctx is done.
func (b *PromptBridge) wait(ctx context.Context) tea.Cmd {
	if b == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case req := <-b.requests:
			return promptRequestMsg(req)
		case <-ctx.Done():
			return nil
		}
	}
}

func (m *Model) handlePromptRequest(msg promptRequestMsg) (tea.Model, tea.Cmd) {
	m.prompts = append(m.prompts, promptRequest(msg))
	if len(m.prompts) == 1 {
		m.showPrompt()
	}
	return m, m.bridge.wait(m.ctx)
}

// showPrompt presents the dialog at the head of the queue.
func (m *Model) showPrompt() {
	if len(m.prompts) == 0 {
		return
	}
	req := m.prompts[0]
	if m.overlay != overlayPrompt {
		m.openOverlay(overlayPrompt)
	}
	m.input.Placeholder = m.promptTitle(req.kind)
	m.input.SetValue(m.promptDefault(req.kind))
	m.input.CursorEnd()
	m.input.Focus()
	m.status = ""
}

func (m *Model) promptTitle(kind platform.DialogKind) string {
	switch kind {
	case platform.DialogOpenFolder:
		return m.tr.T(locale.MsgOpenFolder)
	case platform.DialogSaveFile:
		return m.tr.T(locale.MsgSaveAs)
	default:
		return m.tr.T(locale.MsgOpenFile)
	}
}

// promptDefault seeds the dialog with the open folder, or the working
// directory, followed by a separator.
func (m *Model) promptDefault(kind platform.DialogKind) string {
	dir := ""
	if root := m.dirs.Root(); root != nil {
		dir = root.Path
	} else if wd, err := os.Getwd(); err == nil {
		dir = wd
	}
	if dir == "" {
		return ""
	}
	if kind == platform.DialogSaveFile {
		return filepath.Join(dir, m.tr.T(locale.MsgUntitled)+".md")
	}
	return dir + string(filepath.Separator)
}

// answerPrompt replies to the dialog at the head of the queue.
func (m *Model) answerPrompt(path string, ok bool) {
	if len(m.prompts) == 0 {
		return
	}
	req := m.prompts[0]
	m.prompts = m.prompts[1:]
	req.reply <- promptReply{path: path, ok: ok}
	m.input.Blur()
	m.input.SetValue("")
}

// finishPrompt answers the current dialog and shows the next queued one, or
// closes the overlay.
func (m *Model) finishPrompt(path string, ok bool) {
	m.answerPrompt(path, ok)
	if len(m.prompts) > 0 {
		m.showPrompt()
		return
	}
	m.overlay = overlayNone
	m.refocus()
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, popupKeys.Close):
		m.finishPrompt("", false)
		m.status = m.tr.T(locale.MsgCancelled)
		return m, nil
	case key.Matches(msg, popupKeys.Select):
		value := strings.TrimSpace(m.input.Value())
		if value == "" {
			return m, nil
		}
		path, err := config.NormalizePath(value)
		if err != nil {
			m.setStatusError(m.tr.T(locale.MsgCancelled), err, "input", value)
			m.finishPrompt("", false)
			return m, nil
		}
		m.finishPrompt(path, true)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
