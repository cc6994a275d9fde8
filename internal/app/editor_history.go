package app

import (
	"time"

	"github.com/treykane/markditor/internal/locale"
)

// Keystrokes closer together than this collapse into one undo step.
const typingBurstIdleWindow = 750 * time.Millisecond

const maxUndoSnapshots = 200

// editorSnapshot captures the editor text and cursor position.
type editorSnapshot struct {
	value string
	row   int
	col   int
}

func (m *Model) captureEditorSnapshot() editorSnapshot {
	info := m.editor.LineInfo()
	return editorSnapshot{
		value: m.editor.Value(),
		row:   m.editor.Line(),
		col:   info.StartColumn + info.ColumnOffset,
	}
}

// restoreEditorSnapshot puts snapshot back into the editor. SetValue leaves
// the cursor on the last line, so it walks up to the saved row.
func (m *Model) restoreEditorSnapshot(snapshot editorSnapshot) {
	m.editor.SetValue(snapshot.value)
	row := max(0, snapshot.row)
	for m.editor.Line() > row {
		m.editor.CursorUp()
	}
	m.editor.SetCursor(snapshot.col)
	m.syncDocument()
}

func (m *Model) resetEditHistory() {
	m.editorUndo = nil
	m.editorRedo = nil
	m.finalizeTypingBurst()
}

func (m *Model) pushUndo(snapshot editorSnapshot) {
	m.editorUndo = append(m.editorUndo, snapshot)
	if len(m.editorUndo) > maxUndoSnapshots {
		m.editorUndo = m.editorUndo[len(m.editorUndo)-maxUndoSnapshots:]
	}
	m.editorRedo = nil
}

func (m *Model) finalizeTypingBurst() {
	m.typingBurstActive = false
	m.typingBurstLastInputAt = time.Time{}
}

// recordTypingMutation pushes before onto the undo stack unless it continues
// the current typing burst. Cursor-only moves are not recorded.
func (m *Model) recordTypingMutation(before, after editorSnapshot, now time.Time) {
	if before.value == after.value {
		return
	}
	if !m.typingBurstActive || now.Sub(m.typingBurstLastInputAt) > typingBurstIdleWindow {
		m.pushUndo(before)
	}
	m.typingBurstActive = true
	m.typingBurstLastInputAt = now
}

func (m *Model) undoEditorChange() {
	m.finalizeTypingBurst()
	if len(m.editorUndo) == 0 {
		m.status = m.tr.T(locale.MsgNothingToUndo)
		return
	}
	current := m.captureEditorSnapshot()
	last := m.editorUndo[len(m.editorUndo)-1]
	m.editorUndo = m.editorUndo[:len(m.editorUndo)-1]
	m.editorRedo = append(m.editorRedo, current)
	m.restoreEditorSnapshot(last)
	m.status = m.tr.T(locale.MsgUndid)
}

func (m *Model) redoEditorChange() {
	m.finalizeTypingBurst()
	if len(m.editorRedo) == 0 {
		m.status = m.tr.T(locale.MsgNothingToRedo)
		return
	}
	current := m.captureEditorSnapshot()
	next := m.editorRedo[len(m.editorRedo)-1]
	m.editorRedo = m.editorRedo[:len(m.editorRedo)-1]
	m.editorUndo = append(m.editorUndo, current)
	m.restoreEditorSnapshot(next)
	m.status = m.tr.T(locale.MsgRedid)
}
