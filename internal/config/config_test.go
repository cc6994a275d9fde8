package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadReturnsDefaultsWhenMissing(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("expected defaults %+v, got %+v", Default(), cfg)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".markditor")

	if err := Save(dir, Config{HistoryLimit: 5, PanelSize: 30, Workspace: "~/docs"}); err != nil {
		t.Fatalf("save config: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if loaded.HistoryLimit != 5 {
		t.Fatalf("expected history limit 5, got %d", loaded.HistoryLimit)
	}
	if loaded.PanelSize != 30 {
		t.Fatalf("expected panel size 30, got %d", loaded.PanelSize)
	}
	expected := filepath.Join(home, "docs")
	if loaded.Workspace != expected {
		t.Fatalf("expected workspace %q, got %q", expected, loaded.Workspace)
	}

	info, err := os.Stat(ConfigPath(dir))
	if err != nil {
		t.Fatalf("stat config path: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected 0600 permissions, got %v", info.Mode().Perm())
	}
}

func TestSaveRejectsOutOfRangePanelSize(t *testing.T) {
	err := Save(t.TempDir(), Config{PanelSize: 80})
	if !errors.Is(err, ErrInvalidPanelSize) {
		t.Fatalf("expected ErrInvalidPanelSize, got %v", err)
	}
}

func TestLoadRejectsNegativeHistoryLimit(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(ConfigPath(dir), []byte(`{"history_limit": -1}`), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(dir); !errors.Is(err, ErrInvalidHistoryLimit) {
		t.Fatalf("expected ErrInvalidHistoryLimit, got %v", err)
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(ConfigPath(dir), []byte("{"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestNormalizePathRejectsEmpty(t *testing.T) {
	if _, err := NormalizePath("   "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestPrefStoragePathUsesRecordName(t *testing.T) {
	got := PrefStoragePath("/cfg")
	if filepath.Base(got) != "markditor-pref-storage.json" {
		t.Fatalf("unexpected storage file %q", got)
	}
}

func TestLoadKeybindingsAndKeymapFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := t.TempDir()
	data := `{"keybindings": {"file.open": "alt+o"}, "keymap_file": "~/keys.json"}`
	if err := os.WriteFile(ConfigPath(dir), []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Keybindings["file.open"] != "alt+o" {
		t.Fatalf("unexpected keybindings %v", cfg.Keybindings)
	}
	if cfg.KeymapFile != filepath.Join(home, "keys.json") {
		t.Fatalf("expected expanded keymap path, got %q", cfg.KeymapFile)
	}
	if got := KeymapPath(dir); got != filepath.Join(dir, "keymap.json") {
		t.Fatalf("unexpected default keymap path %q", got)
	}
}
