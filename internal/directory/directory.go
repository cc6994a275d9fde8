// Package directory holds the state of the folder open in the directory panel.
//
// The panel shows a flattened tree: each expanded folder contributes its
// children directly after itself, one depth level deeper. Only folders and
// markdown files are listed and dot-entries are skipped, so the tree matches
// what the editor can open.
package directory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/treykane/markditor/internal/logging"
	"github.com/treykane/markditor/internal/observable"
)

var log = logging.New("directory")

// ErrNotDirectory is returned by Open when the path is not a folder.
var ErrNotDirectory = errors.New("not a directory")

// Root identifies the open folder.
type Root struct {
	Path string
	Name string
}

// Item is one row of the flattened tree.
type Item struct {
	Path  string
	Name  string
	Depth int
	IsDir bool
}

// State is the observable directory state. A nil Root means no folder is open.
type State struct {
	Root     *Root
	Items    []Item
	Expanded map[string]bool
}

// Store publishes directory state changes.
type Store struct {
	value *observable.Value[State]
}

// NewStore returns a store with no folder open.
func NewStore() *Store {
	return &Store{value: observable.New(State{})}
}

// Current returns the current directory state.
func (s *Store) Current() State {
	return s.value.Get()
}

// Root returns the open folder, or nil.
func (s *Store) Root() *Root {
	return s.value.Get().Root
}

// Subscribe implements observable.Subscriber.
func (s *Store) Subscribe(fn observable.Listener[State]) func() {
	return s.value.Subscribe(fn)
}

// Open makes path the open folder and builds its first tree level.
func (s *Store) Open(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve folder %q: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("open folder %q: %w", abs, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("open folder %q: %w", abs, ErrNotDirectory)
	}

	root := &Root{Path: abs, Name: filepath.Base(abs)}
	expanded := map[string]bool{abs: true}
	s.value.Set(State{
		Root:     root,
		Items:    BuildTree(abs, expanded),
		Expanded: expanded,
	})
	return nil
}

// Refresh rebuilds the tree of the open folder. The Root value is kept so
// subscribers watching for a new folder see no change.
func (s *Store) Refresh() {
	s.value.Update(func(cur State) State {
		if cur.Root == nil {
			return cur
		}
		cur.Items = BuildTree(cur.Root.Path, cur.Expanded)
		return cur
	})
}

// Toggle expands or collapses the folder at path. The root cannot collapse.
func (s *Store) Toggle(path string) {
	s.value.Update(func(cur State) State {
		if cur.Root == nil || path == cur.Root.Path {
			return cur
		}
		expanded := make(map[string]bool, len(cur.Expanded)+1)
		for k, v := range cur.Expanded {
			expanded[k] = v
		}
		expanded[path] = !expanded[path]
		cur.Expanded = expanded
		cur.Items = BuildTree(cur.Root.Path, expanded)
		return cur
	})
}

// Close drops the open folder.
func (s *Store) Close() {
	s.value.Set(State{})
}

// ExpandedDirs returns the root and every expanded folder beneath it, the set
// a watcher needs to observe.
func (st State) ExpandedDirs() []string {
	if st.Root == nil {
		return nil
	}
	dirs := []string{st.Root.Path}
	for _, item := range st.Items {
		if item.IsDir && st.Expanded[item.Path] {
			dirs = append(dirs, item.Path)
		}
	}
	return dirs
}

// BuildTree returns the flattened tree under root, descending only into
// folders marked in expanded. Each level lists folders first, then files,
// case-insensitively by name.
func BuildTree(root string, expanded map[string]bool) []Item {
	items := []Item{}
	walkTree(root, 0, expanded, &items)
	return items
}

func walkTree(dir string, depth int, expanded map[string]bool, items *[]Item) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Warn("read tree directory", "path", dir, "error", err)
		return
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !entry.IsDir() && !IsMarkdown(name) {
			continue
		}
		path := filepath.Join(dir, name)
		*items = append(*items, Item{
			Path:  path,
			Name:  name,
			Depth: depth,
			IsDir: entry.IsDir(),
		})
		if entry.IsDir() && expanded[path] {
			walkTree(path, depth+1, expanded, items)
		}
	}
}

// IsMarkdown reports whether name has a markdown extension.
func IsMarkdown(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
