package directory

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDebounce coalesces bursts of filesystem events (editors often
// write a temp file, rename it, then chmod it) into a single refresh.
const DefaultWatchDebounce = 200 * time.Millisecond

// Watcher observes a set of folders and calls onChange once per burst of
// events. fsnotify is not recursive, so callers pass every expanded folder
// to Watch.
type Watcher struct {
	fs       *fsnotify.Watcher
	onChange func()
	debounce time.Duration

	mu      sync.Mutex
	watched map[string]bool
	timer   *time.Timer
	closed  bool
	done    chan struct{}
}

// NewWatcher starts the event loop. onChange runs on a timer goroutine.
func NewWatcher(debounce time.Duration, onChange func()) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}
	w := &Watcher{
		fs:       fs,
		onChange: onChange,
		debounce: debounce,
		watched:  map[string]bool{},
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Watch replaces the watched set with dirs.
func (w *Watcher) Watch(dirs []string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}

	want := make(map[string]bool, len(dirs))
	for _, dir := range dirs {
		want[dir] = true
	}
	for dir := range w.watched {
		if want[dir] {
			continue
		}
		if err := w.fs.Remove(dir); err != nil {
			log.Debug("unwatch folder", "path", dir, "error", err)
		}
		delete(w.watched, dir)
	}
	for dir := range want {
		if w.watched[dir] {
			continue
		}
		if err := w.fs.Add(dir); err != nil {
			log.Warn("watch folder", "path", dir, "error", err)
			continue
		}
		w.watched[dir] = true
	}
}

// Close stops the watcher. Pending debounced callbacks are cancelled.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	err := w.fs.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
				continue
			}
			w.schedule()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Warn("folder watcher", "error", err)
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	if closed || w.onChange == nil {
		return
	}
	w.onChange()
}
