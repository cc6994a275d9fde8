// watcher.go keeps the directory panel in step with the filesystem.
//
// A directory.Watcher observes the open folder and every expanded subfolder
// (fsnotify is not recursive). Its debounced callback runs on a timer
// goroutine, so it only signals a buffered channel; a long-lived command
// turns that signal into a dirChangedMsg for the update loop, which
// rebuilds the tree and resubscribes to the current set of folders.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/markditor/internal/directory"
)

// dirChangedMsg reports that something under a watched folder changed.
type dirChangedMsg struct{}

// startWatcher creates the filesystem watcher. Failures are logged and the
// panel simply stops refreshing on its own.
func (m *Model) startWatcher() {
	m.dirEvents = make(chan struct{}, 1)
	events := m.dirEvents
	w, err := directory.NewWatcher(directory.DefaultWatchDebounce, func() {
		select {
		case events <- struct{}{}:
		default:
		}
	})
	if err != nil {
		appLog.Warn("start directory watcher", "error", err)
		return
	}
	m.watcher = w
	m.unsubs = append(m.unsubs, m.dirs.Subscribe(func(cur, _ directory.State) {
		w.Watch(cur.ExpandedDirs())
	}))
	w.Watch(m.dirs.Current().ExpandedDirs())
}

// waitForDirChange returns a command that delivers the next change signal.
func (m *Model) waitForDirChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	events := m.dirEvents
	return func() tea.Msg {
		<-events
		return dirChangedMsg{}
	}
}

func (m *Model) handleDirChanged() (tea.Model, tea.Cmd) {
	if m.dirs.Root() != nil {
		appLog.Debug("folder changed on disk", "root", m.dirs.Root().Path)
		m.dirs.Refresh()
		m.clampPanelCursor()
	}
	return m, m.waitForDirChange()
}
