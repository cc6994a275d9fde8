package preference

import (
	"sync"

	"github.com/treykane/markditor/internal/directory"
	"github.com/treykane/markditor/internal/document"
	"github.com/treykane/markditor/internal/observable"
)

// InitDirectoryOpenListener keeps the history lists in step with the open
// document and folder. A document path that becomes non-empty and differs
// from the previous one is appended to the file history; a folder root that
// becomes non-nil and differs from the previous one is appended to the folder
// history.
//
// The returned function removes both subscriptions and must be called when
// the owner shuts down. Calling it again is a no-op.
func (s *Store) InitDirectoryOpenListener(
	documents observable.Subscriber[document.State],
	directories observable.Subscriber[directory.State],
) func() {
	unsubscribeFile := documents.Subscribe(func(cur, prev document.State) {
		if cur.Path != "" && cur.Path != prev.Path {
			s.AppendFileHistory(cur.Path)
		}
	})

	unsubscribeFolder := directories.Subscribe(func(cur, prev directory.State) {
		if cur.Root != nil && !sameRoot(cur.Root, prev.Root) {
			s.AppendFolderHistory(cur.Root.Path)
		}
	})

	var once sync.Once
	return func() {
		once.Do(func() {
			unsubscribeFile()
			unsubscribeFolder()
		})
	}
}

func sameRoot(a, b *directory.Root) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
