// Package document holds the state of the document open in the editor.
package document

import (
	"path/filepath"

	"github.com/treykane/markditor/internal/observable"
)

// State is the observable document state. An empty Path means no document
// is open, or an untitled document that has never been saved.
type State struct {
	Path    string
	Content string
	Dirty   bool
	// Untitled is set for a new document that has no path yet.
	Untitled bool
}

// Open reports whether any document, titled or not, is loaded.
func (s State) Open() bool {
	return s.Path != "" || s.Untitled
}

// Name returns the base name shown in the title bar.
func (s State) Name() string {
	if s.Path == "" {
		if s.Untitled {
			return "Untitled"
		}
		return ""
	}
	return filepath.Base(s.Path)
}

// Store publishes document state changes.
type Store struct {
	value *observable.Value[State]
}

// NewStore returns a store with no document open.
func NewStore() *Store {
	return &Store{value: observable.New(State{})}
}

// Current returns the current document state.
func (s *Store) Current() State {
	return s.value.Get()
}

// HasDocOpened reports whether the editor should be shown.
func (s *Store) HasDocOpened() bool {
	return s.value.Get().Open()
}

// Subscribe implements observable.Subscriber.
func (s *Store) Subscribe(fn observable.Listener[State]) func() {
	return s.value.Subscribe(fn)
}

// Open replaces the current document with the file at path.
func (s *Store) Open(path, content string) {
	s.value.Set(State{Path: path, Content: content})
}

// New starts an untitled document.
func (s *Store) New() {
	s.value.Set(State{Untitled: true})
}

// SetContent replaces the buffer and marks the document dirty when it changed.
func (s *Store) SetContent(content string) {
	s.value.Update(func(cur State) State {
		if cur.Content == content {
			return cur
		}
		cur.Content = content
		cur.Dirty = true
		return cur
	})
}

// MarkSaved records that content was written to path, giving an untitled
// document its path. The document stays dirty if the buffer has changed
// since content was captured.
func (s *Store) MarkSaved(path, content string) {
	s.value.Update(func(cur State) State {
		cur.Path = path
		cur.Untitled = false
		cur.Dirty = cur.Content != content
		return cur
	})
}

// Close drops the open document.
func (s *Store) Close() {
	s.value.Set(State{})
}
