package preference

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestFileStorageMissingFileReturnsDefaults(t *testing.T) {
	fs := NewFileStorage(filepath.Join(t.TempDir(), "missing.json"))
	defaults := DefaultState("en-US")

	st, err := fs.Load(defaults)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(st, defaults) {
		t.Fatalf("expected defaults, got %+v", st)
	}
}

func TestFileStorageRoundTripLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", StorageName+".json")
	fs := NewFileStorage(path)

	want := DefaultState("en-US")
	want.PrefThemeMode = ThemeDark
	want.FileHistory = []string{"/a.md"}
	want.FolderHistory = []string{"/notes"}
	if err := fs.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var raw struct {
		State   map[string]any `json:"state"`
		Version int            `json:"version"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, key := range []string{"prefThemeMode", "autoSaveInterval", "autoSave", "fileHistory", "folderHistory", "defaultShowToolbar", "languageCode"} {
		if _, ok := raw.State[key]; !ok {
			t.Fatalf("persisted state missing key %q: %s", key, data)
		}
	}
	if raw.Version != 0 {
		t.Fatalf("expected version 0, got %d", raw.Version)
	}

	got, err := fs.Load(DefaultState("en-US"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", want, got)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file should be renamed away, stat err=%v", err)
	}
}

func TestFileStorageAbsentKeysKeepDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte(`{"state":{"autoSave":false},"version":0}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	st, err := NewFileStorage(path).Load(DefaultState("en-GB"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if st.AutoSave {
		t.Fatal("expected persisted autoSave=false")
	}
	if st.PrefThemeMode != ThemeSystem || st.AutoSaveInterval != DefaultAutoSaveInterval || !st.DefaultShowToolbar || st.LanguageCode != "en-GB" {
		t.Fatalf("absent keys should keep defaults, got %+v", st)
	}
}

func TestFileStorageReadsLegacyIntervalKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte(`{"state":{"autoSaveInerval":8000},"version":0}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	st, err := NewFileStorage(path).Load(DefaultState(""))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if st.AutoSaveInterval != 8000 {
		t.Fatalf("expected legacy interval 8000, got %d", st.AutoSaveInterval)
	}
}

func TestFileStorageCurrentKeyWinsOverLegacy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	body := `{"state":{"autoSaveInerval":8000,"autoSaveInterval":3000},"version":0}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	st, err := NewFileStorage(path).Load(DefaultState(""))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if st.AutoSaveInterval != 3000 {
		t.Fatalf("expected 3000, got %d", st.AutoSaveInterval)
	}
}

func TestFileStorageMalformedRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte(`{"state":`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	defaults := DefaultState("")
	st, err := NewFileStorage(path).Load(defaults)
	if err == nil || !strings.Contains(err.Error(), "parse preferences") {
		t.Fatalf("expected parse error, got %v", err)
	}
	if !reflect.DeepEqual(st, defaults) {
		t.Fatalf("expected defaults on error, got %+v", st)
	}
}

func TestStoreLoadsFromFileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	first := New(Options{Storage: NewFileStorage(path), ColorScheme: &fakeScheme{}})
	first.AppendFolderHistory("/notes")
	first.SetThemeMode(ThemeLight)

	second := New(Options{Storage: NewFileStorage(path), ColorScheme: &fakeScheme{dark: true}})
	st := second.State()
	if !reflect.DeepEqual(st.FolderHistory, []string{"/notes"}) {
		t.Fatalf("expected persisted folder history, got %v", st.FolderHistory)
	}
	if second.ThemeMode() != ThemeLight {
		t.Fatalf("expected persisted light theme, got %q", second.ThemeMode())
	}
}

func TestStoreWithCorruptFileStartsFromDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	s := New(Options{Storage: NewFileStorage(path), ColorScheme: &fakeScheme{}, LanguageCode: "en-US"})
	if !reflect.DeepEqual(s.State(), DefaultState("en-US")) {
		t.Fatalf("expected defaults, got %+v", s.State())
	}
}
