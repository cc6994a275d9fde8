package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/treykane/markditor/internal/config"
)

func TestActionForKeyDefaults(t *testing.T) {
	m := &Model{}
	m.loadKeybindings(config.Config{}, "")

	cases := map[string]string{
		"ctrl+q":     actionQuit,
		"ctrl+c":     actionQuit,
		"ctrl+o":     actionOpenFile,
		"alt+s":      actionSaveAs,
		"f2":         actionPreferences,
		"ctrl+,":     actionPreferences,
		"ctrl+right": actionPanelGrow,
		"tab":        actionSwitchFocus,
		"x":          "",
	}
	for key, want := range cases {
		if got := m.actionForKey(key); got != want {
			t.Fatalf("actionForKey(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestLoadKeybindingsOverrideReplacesDefaults(t *testing.T) {
	m := &Model{}
	m.loadKeybindings(config.Config{
		Keybindings: map[string]string{
			actionPreferences: "F3",
			"no.such.action":  "f4",
		},
	}, "")

	if got := m.actionForKey("f3"); got != actionPreferences {
		t.Fatalf("expected f3 to open preferences, got %q", got)
	}
	if got := m.actionForKey("f2"); got != "" {
		t.Fatalf("expected default f2 to be replaced, got %q", got)
	}
	if got := m.actionForKey("f4"); got != "" {
		t.Fatalf("unknown action must not bind, got %q", got)
	}
}

func TestKeymapFileWinsOverInlineBindings(t *testing.T) {
	dir := t.TempDir()
	keymap := `{"file.open": "alt+o"}`
	if err := os.WriteFile(filepath.Join(dir, "keymap.json"), []byte(keymap), 0o600); err != nil {
		t.Fatalf("write keymap: %v", err)
	}

	m := &Model{}
	m.loadKeybindings(config.Config{Keybindings: map[string]string{actionOpenFile: "f5"}}, dir)

	if got := m.actionForKey("alt+o"); got != actionOpenFile {
		t.Fatalf("expected keymap file binding, got %q", got)
	}
	if got := m.actionForKey("f5"); got != "" {
		t.Fatalf("inline binding should be overridden, got %q", got)
	}
}

func TestLoadKeymapFileIgnoresBadInput(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0o600); err != nil {
		t.Fatalf("write keymap: %v", err)
	}
	if got := loadKeymapFile(bad); got != nil {
		t.Fatalf("expected nil for malformed file, got %v", got)
	}
	if got := loadKeymapFile(filepath.Join(dir, "missing.json")); got != nil {
		t.Fatalf("expected nil for missing file, got %v", got)
	}
}

func TestConflictingBindingKeepsOneAction(t *testing.T) {
	m := &Model{}
	m.loadKeybindings(config.Config{Keybindings: map[string]string{actionOpenFolder: "ctrl+o"}}, "")

	if got := m.actionForKey("ctrl+o"); got != actionOpenFile && got != actionOpenFolder {
		t.Fatalf("expected one of the conflicting actions, got %q", got)
	}
	first := m.actionForKey("ctrl+o")
	m.rebuildActionKeyIndex()
	if got := m.actionForKey("ctrl+o"); got != first {
		t.Fatalf("conflict resolution should be stable, got %q then %q", first, got)
	}
}

func TestNormalizeKeyString(t *testing.T) {
	tests := map[string]string{
		"Ctrl+O": "ctrl+o",
		" Y ":    "shift+y",
		"f2":     "f2",
		"":       "",
	}
	for in, want := range tests {
		if got := normalizeKeyString(in); got != want {
			t.Fatalf("normalizeKeyString(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestReboundKeyDrivesModelAndToolbar(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.loadKeybindings(config.Config{Keybindings: map[string]string{actionRecent: "ctrl+g"}}, "")

	m.Update(keyPress(tea.KeyCtrlR))
	if m.overlay != overlayNone {
		t.Fatal("old binding should no longer open the popup")
	}
	m.Update(keyPress(tea.KeyCtrlG))
	if !m.isOverlay(overlayRecent) {
		t.Fatal("new binding should open the recent popup")
	}
	if got := m.primaryActionKey(actionRecent, ""); got != "^g" {
		t.Fatalf("unexpected toolbar label %q", got)
	}
}

func TestHelpRowFollowsBindings(t *testing.T) {
	m, _, _ := newTestModel(t)
	// file.open sorts first, so it takes ctrl+e and folder.open is left unbound
	m.loadKeybindings(config.Config{Keybindings: map[string]string{actionOpenFile: "ctrl+e"}}, "")

	help := ansi.Strip(m.renderStatus(200))
	if !strings.Contains(help, "^e open") {
		t.Fatalf("expected rebound key in help, got %q", help)
	}
	if strings.Contains(help, "folder") {
		t.Fatalf("unbound action should be hidden, got %q", help)
	}
	if got := m.primaryActionKey(actionOpenFolder, "-"); got != "-" {
		t.Fatalf("unbound action should use the fallback label, got %q", got)
	}
}

func TestHelpRowIsTranslated(t *testing.T) {
	m, _, deps := newTestModel(t)
	deps.prefs.SetLanguageCode("zh-CN")
	if help := ansi.Strip(m.renderStatus(200)); !strings.Contains(help, "^o 打开") {
		t.Fatalf("expected translated help, got %q", help)
	}
}
