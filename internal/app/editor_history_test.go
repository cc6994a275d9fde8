package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/markditor/internal/platform"
)

func TestTypingBurstCollapsesIntoOneUndoStep(t *testing.T) {
	m, _, deps := newTestModel(t)
	m.loadDocument(platform.File{Path: "/notes/a.md", Content: ""})

	m.Update(runes("a"))
	m.Update(runes("b"))
	m.Update(runes("c"))
	if len(m.editorUndo) != 1 {
		t.Fatalf("expected one undo step for a typing burst, got %d", len(m.editorUndo))
	}

	m.Update(keyPress(tea.KeyCtrlZ))
	if m.editor.Value() != "" || deps.docs.Current().Content != "" {
		t.Fatalf("undo should restore the empty buffer, got %q", m.editor.Value())
	}
	if m.status != "Undid edit" {
		t.Fatalf("unexpected status %q", m.status)
	}

	m.Update(keyPress(tea.KeyCtrlY))
	if m.editor.Value() != "abc" || deps.docs.Current().Content != "abc" {
		t.Fatalf("redo should restore the typed text, got %q", m.editor.Value())
	}
}

func TestRecordTypingMutationSplitsAfterIdle(t *testing.T) {
	m := &Model{}
	now := time.Unix(100, 0)
	s0 := editorSnapshot{value: ""}
	s1 := editorSnapshot{value: "a", col: 1}
	s2 := editorSnapshot{value: "ab", col: 2}

	m.recordTypingMutation(s0, s1, now)
	m.recordTypingMutation(s1, s2, now.Add(typingBurstIdleWindow+time.Millisecond))
	if len(m.editorUndo) != 2 {
		t.Fatalf("expected a new step after the idle window, got %d", len(m.editorUndo))
	}

	m.recordTypingMutation(s2, s2, now.Add(time.Hour))
	if len(m.editorUndo) != 2 {
		t.Fatal("unchanged text must not record a step")
	}
}

func TestNewEditClearsRedo(t *testing.T) {
	m := &Model{editorRedo: []editorSnapshot{{value: "x"}}}
	m.recordTypingMutation(editorSnapshot{}, editorSnapshot{value: "y"}, time.Now())
	if len(m.editorRedo) != 0 {
		t.Fatal("a new edit should drop the redo chain")
	}
}

func TestUndoStackIsBounded(t *testing.T) {
	m := &Model{}
	for i := 0; i < maxUndoSnapshots+10; i++ {
		m.pushUndo(editorSnapshot{row: i})
	}
	if len(m.editorUndo) != maxUndoSnapshots {
		t.Fatalf("expected %d snapshots, got %d", maxUndoSnapshots, len(m.editorUndo))
	}
	if m.editorUndo[0].row != 10 {
		t.Fatalf("oldest snapshots should be dropped, first row %d", m.editorUndo[0].row)
	}
}

func TestUndoWithEmptyHistory(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.loadDocument(platform.File{Path: "/notes/a.md", Content: "x"})

	m.Update(keyPress(tea.KeyCtrlZ))
	if m.status != "Nothing to undo" || m.editor.Value() != "x" {
		t.Fatalf("unexpected state %q / %q", m.status, m.editor.Value())
	}
}

func TestUndoRestoresCursorRow(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.loadDocument(platform.File{Path: "/notes/a.md", Content: "one\ntwo\nthree"})
	m.restoreEditorSnapshot(editorSnapshot{value: "one\ntwo\nthree", row: 1, col: 2})

	snap := m.captureEditorSnapshot()
	if snap.row != 1 || snap.col != 2 {
		t.Fatalf("expected cursor at 1:2, got %d:%d", snap.row, snap.col)
	}
}

func TestLoadingDocumentResetsHistory(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.loadDocument(platform.File{Path: "/notes/a.md", Content: ""})
	m.Update(runes("a"))

	m.loadDocument(platform.File{Path: "/notes/b.md", Content: ""})
	if len(m.editorUndo) != 0 || len(m.editorRedo) != 0 {
		t.Fatal("switching documents should clear undo history")
	}
}
