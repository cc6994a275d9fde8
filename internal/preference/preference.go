// Package preference implements the preference and history store.
//
// The store is the single writer of the user's preferences (theme, autosave,
// toolbar default, language) and of two most-recently-used lists: opened
// files and opened folders. It is constructed once at startup from a Storage,
// handed to the components that need it, and persists itself after every
// committed mutation.
//
// Validation failures are silent: an out-of-range autosave interval or an
// unknown theme mode leaves the state untouched and notifies nobody. Callers
// that need to know whether a write took effect re-read State.
package preference

import (
	"math"
	"sync"
	"time"

	"github.com/treykane/markditor/internal/logging"
	"github.com/treykane/markditor/internal/observable"
)

var log = logging.New("preference")

// StorageName is the name of the persisted preference record.
const StorageName = "markditor-pref-storage"

// Defaults and bounds.
const (
	DefaultMaxHistoryLength = 10
	DefaultAutoSaveInterval = 5000
	DefaultLanguageCode     = "en-US"

	MinAutoSaveInterval = 1000
	MaxAutoSaveInterval = math.MaxInt32
)

// ThemeMode is a theme preference. Stored preferences may be any of the three
// values; the effective theme returned by Store.ThemeMode is light or dark.
type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"
)

// Valid reports whether m is one of the three known modes.
func (m ThemeMode) Valid() bool {
	switch m {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// Next cycles light → dark → system → light.
func (m ThemeMode) Next() ThemeMode {
	switch m {
	case ThemeLight:
		return ThemeDark
	case ThemeDark:
		return ThemeSystem
	default:
		return ThemeLight
	}
}

// State is the persisted preference record.
type State struct {
	PrefThemeMode      ThemeMode `json:"prefThemeMode"`
	AutoSaveInterval   int       `json:"autoSaveInterval"`
	AutoSave           bool      `json:"autoSave"`
	FileHistory        []string  `json:"fileHistory"`
	FolderHistory      []string  `json:"folderHistory"`
	DefaultShowToolbar bool      `json:"defaultShowToolbar"`
	LanguageCode       string    `json:"languageCode"`
}

// DefaultState returns the record used for absent keys. languageCode is the
// host locale; an empty code falls back to DefaultLanguageCode.
func DefaultState(languageCode string) State {
	if languageCode == "" {
		languageCode = DefaultLanguageCode
	}
	return State{
		PrefThemeMode:      ThemeSystem,
		AutoSaveInterval:   DefaultAutoSaveInterval,
		AutoSave:           true,
		FileHistory:        []string{},
		FolderHistory:      []string{},
		DefaultShowToolbar: true,
		LanguageCode:       languageCode,
	}
}

func (s State) clone() State {
	s.FileHistory = append([]string{}, s.FileHistory...)
	s.FolderHistory = append([]string{}, s.FolderHistory...)
	return s
}

// Options configures a Store.
type Options struct {
	// Storage persists the record. Nil keeps state in memory only.
	Storage Storage
	// ColorScheme supplies the live host light/dark signal used when the
	// preference is ThemeSystem. Nil uses DefaultColorScheme.
	ColorScheme ColorScheme
	// MaxHistoryLength bounds both history lists. Zero uses the default.
	MaxHistoryLength int
	// LanguageCode is the host locale used when none is persisted.
	LanguageCode string
	// SyncTheme is invoked after the theme preference changes so the
	// editing surface can restyle itself.
	SyncTheme func()
	// ChangeLanguage is invoked with the new code before it is stored so the
	// translation layer switches first.
	ChangeLanguage func(code string)
}

// Store is the preference/history store.
type Store struct {
	value      *observable.Value[State]
	storage    Storage
	scheme     ColorScheme
	maxHistory int

	syncTheme      func()
	changeLanguage func(code string)

	persistMu sync.Mutex
}

// New loads the persisted record and returns a ready store. Load failures
// are logged and the defaults are used.
func New(opts Options) *Store {
	maxHistory := opts.MaxHistoryLength
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistoryLength
	}
	storage := opts.Storage
	if storage == nil {
		storage = NewMemoryStorage()
	}
	scheme := opts.ColorScheme
	if scheme == nil {
		scheme = DefaultColorScheme()
	}

	defaults := DefaultState(opts.LanguageCode)
	state, err := storage.Load(defaults)
	if err != nil {
		log.Warn("load preferences, using defaults", "error", err)
		state = defaults
	}

	s := &Store{
		value:          observable.New(normalize(state, defaults, maxHistory)),
		storage:        storage,
		scheme:         scheme,
		maxHistory:     maxHistory,
		syncTheme:      opts.SyncTheme,
		changeLanguage: opts.ChangeLanguage,
	}
	s.value.Subscribe(func(State, State) { s.persist() })
	return s
}

// normalize repairs a loaded record so the store invariants hold from the
// first read.
func normalize(st, defaults State, maxHistory int) State {
	if !st.PrefThemeMode.Valid() {
		st.PrefThemeMode = defaults.PrefThemeMode
	}
	if !validInterval(st.AutoSaveInterval) {
		st.AutoSaveInterval = defaults.AutoSaveInterval
	}
	if st.LanguageCode == "" {
		st.LanguageCode = defaults.LanguageCode
	}
	st.FileHistory = trimHistory(dedupePaths(st.FileHistory), maxHistory)
	st.FolderHistory = trimHistory(dedupePaths(st.FolderHistory), maxHistory)
	return st
}

func validInterval(ms int) bool {
	return ms >= MinAutoSaveInterval && ms <= MaxAutoSaveInterval
}

// persist writes the latest committed state. It always saves the current
// value rather than the one it was notified with, so concurrent mutations
// can only leave the record newer, never older.
func (s *Store) persist() {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()
	if err := s.storage.Save(s.value.Get()); err != nil {
		log.Warn("persist preferences", "error", err)
	}
}

func (s *Store) mutate(fn func(*State)) {
	s.value.Update(func(cur State) State {
		next := cur.clone()
		fn(&next)
		return next
	})
}

// State returns a copy of the persisted fields.
func (s *Store) State() State {
	return s.value.Get().clone()
}

// Subscribe registers a listener called after every committed mutation.
func (s *Store) Subscribe(fn observable.Listener[State]) func() {
	return s.value.Subscribe(fn)
}

// MaxHistoryLength reports the history capacity.
func (s *Store) MaxHistoryLength() int {
	return s.maxHistory
}

// ThemeMode resolves the preference to light or dark. For ThemeSystem the
// host signal is read on every call.
func (s *Store) ThemeMode() ThemeMode {
	switch s.value.Get().PrefThemeMode {
	case ThemeLight:
		return ThemeLight
	case ThemeDark:
		return ThemeDark
	}
	if s.scheme.PrefersDark() {
		return ThemeDark
	}
	return ThemeLight
}

// AutoSaveDuration returns the autosave interval as a duration.
func (s *Store) AutoSaveDuration() time.Duration {
	return time.Duration(s.value.Get().AutoSaveInterval) * time.Millisecond
}

// SetLanguageCode switches the translation layer to code, then stores it.
// The code is not validated.
func (s *Store) SetLanguageCode(code string) {
	if s.changeLanguage != nil {
		s.changeLanguage(code)
	}
	s.mutate(func(st *State) { st.LanguageCode = code })
}

// SetThemeMode stores the theme preference and resyncs the editor theme.
// Unknown modes are ignored.
func (s *Store) SetThemeMode(mode ThemeMode) {
	if !mode.Valid() {
		return
	}
	s.mutate(func(st *State) { st.PrefThemeMode = mode })
	if s.syncTheme != nil {
		s.syncTheme()
	}
}

// AppendFileHistory moves path to the front of the file history.
func (s *Store) AppendFileHistory(path string) {
	s.mutate(func(st *State) {
		st.FileHistory = prependHistory(st.FileHistory, path, s.maxHistory)
	})
}

// AppendFolderHistory moves path to the front of the folder history.
func (s *Store) AppendFolderHistory(path string) {
	s.mutate(func(st *State) {
		st.FolderHistory = prependHistory(st.FolderHistory, path, s.maxHistory)
	})
}

// RemoveFromFileHistory drops every occurrence of path.
func (s *Store) RemoveFromFileHistory(path string) {
	s.mutate(func(st *State) {
		st.FileHistory = removePath(st.FileHistory, path)
	})
}

// RemoveFromFolderHistory drops every occurrence of path.
func (s *Store) RemoveFromFolderHistory(path string) {
	s.mutate(func(st *State) {
		st.FolderHistory = removePath(st.FolderHistory, path)
	})
}

// ClearAllHistory empties both history lists.
func (s *Store) ClearAllHistory() {
	s.mutate(func(st *State) {
		st.FileHistory = []string{}
		st.FolderHistory = []string{}
	})
}

// SetDefaultShowToolbar stores whether new editors show the toolbar.
func (s *Store) SetDefaultShowToolbar(show bool) {
	s.mutate(func(st *State) { st.DefaultShowToolbar = show })
}

// ToggleDefaultShowToolbar is an alias of SetDefaultShowToolbar.
func (s *Store) ToggleDefaultShowToolbar(show bool) {
	s.SetDefaultShowToolbar(show)
}

// ToggleAutoSave stores the autosave flag.
func (s *Store) ToggleAutoSave(enabled bool) {
	s.mutate(func(st *State) { st.AutoSave = enabled })
}

// SetAutoSaveInterval stores ms if it lies in
// [MinAutoSaveInterval, MaxAutoSaveInterval] and silently ignores it otherwise.
func (s *Store) SetAutoSaveInterval(ms int) {
	if !validInterval(ms) {
		return
	}
	s.mutate(func(st *State) { st.AutoSaveInterval = ms })
}
