package preference

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Storage loads and saves the preference record.
type Storage interface {
	// Load returns the persisted record laid over defaults, so keys absent
	// from the record keep their default value. A missing record is not an
	// error.
	Load(defaults State) (State, error)
	Save(State) error
}

// recordVersion is written alongside the state so the layout can evolve.
const recordVersion = 0

// record is the on-disk envelope: {"state": {...}, "version": 0}.
type record struct {
	State   json.RawMessage `json:"state"`
	Version int             `json:"version"`
}

// legacyFields holds keys written by earlier releases.
type legacyFields struct {
	AutoSaveInerval *int `json:"autoSaveInerval,omitempty"`
}

// FileStorage keeps the record as a JSON file.
type FileStorage struct {
	path string
}

// NewFileStorage returns a storage backed by the file at path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Path returns the backing file path.
func (f *FileStorage) Path() string {
	return f.path
}

// Load implements Storage.
func (f *FileStorage) Load(defaults State) (State, error) {
	st := defaults.clone()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return st, nil
		}
		return defaults, fmt.Errorf("read preferences %q: %w", f.path, err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return defaults, fmt.Errorf("parse preferences %q: %w", f.path, err)
	}
	if len(rec.State) == 0 || string(rec.State) == "null" {
		return st, nil
	}
	if err := json.Unmarshal(rec.State, &st); err != nil {
		return defaults, fmt.Errorf("parse preferences state %q: %w", f.path, err)
	}

	var legacy legacyFields
	if err := json.Unmarshal(rec.State, &legacy); err == nil && legacy.AutoSaveInerval != nil {
		if !hasKey(rec.State, "autoSaveInterval") {
			st.AutoSaveInterval = *legacy.AutoSaveInerval
		}
	}
	return st, nil
}

// Save implements Storage. The file is replaced atomically.
func (f *FileStorage) Save(st State) error {
	state, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}
	data, err := json.MarshalIndent(record{State: state, Version: recordVersion}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal preferences record: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace preferences: %w", err)
	}
	return nil
}

func hasKey(obj json.RawMessage, key string) bool {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(obj, &keys); err != nil {
		return false
	}
	_, ok := keys[key]
	return ok
}

// MemoryStorage keeps the record in memory. Saves counts every Save call.
type MemoryStorage struct {
	mu    sync.Mutex
	state *State
	Saves int
	// Err, when set, is returned by every Save.
	Err error
}

// NewMemoryStorage returns an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Load implements Storage.
func (m *MemoryStorage) Load(defaults State) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return defaults.clone(), nil
	}
	return m.state.clone(), nil
}

// Save implements Storage.
func (m *MemoryStorage) Save(st State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Saves++
	if m.Err != nil {
		return m.Err
	}
	saved := st.clone()
	m.state = &saved
	return nil
}

// Saved returns the last saved record and whether one exists.
func (m *MemoryStorage) Saved() (State, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return State{}, false
	}
	return m.state.clone(), true
}
