package app

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/markditor/internal/config"
	"github.com/treykane/markditor/internal/directory"
	"github.com/treykane/markditor/internal/document"
	"github.com/treykane/markditor/internal/locale"
	"github.com/treykane/markditor/internal/platform"
	"github.com/treykane/markditor/internal/preference"
)

type saveCall struct {
	path    string
	content string
}

// fakePlatform answers dialogs from its fields and records saves.
type fakePlatform struct {
	mu sync.Mutex

	openFile platform.File
	openOK   bool
	folder   string
	folderOK bool
	savePath string
	saveAsOK bool
	saveFail bool

	saves    []saveCall
	devTools int
}

func (f *fakePlatform) OpenFile(context.Context) (platform.File, bool) {
	return f.openFile, f.openOK
}

func (f *fakePlatform) OpenFolder(context.Context) (string, bool) {
	return f.folder, f.folderOK
}

func (f *fakePlatform) SaveFile(_ context.Context, path, content string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves = append(f.saves, saveCall{path: path, content: content})
	return !f.saveFail
}

func (f *fakePlatform) ShowSaveDialog(context.Context) (string, bool) {
	return f.savePath, f.saveAsOK
}

func (f *fakePlatform) SystemInfo(context.Context) string { return "test-host" }

func (f *fakePlatform) OpenDevTools(context.Context) {
	f.mu.Lock()
	f.devTools++
	f.mu.Unlock()
}

type testDeps struct {
	prefs   *preference.Store
	storage *preference.MemoryStorage
	docs    *document.Store
	dirs    *directory.Store
	tr      *locale.Translator
}

// newTestModel wires a model to in-memory stores the way main does and
// sizes it to a 120x40 terminal.
func newTestModel(t *testing.T) (*Model, *fakePlatform, testDeps) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var m *Model
	tr := locale.NewTranslator("en-US")
	storage := preference.NewMemoryStorage()
	prefs := preference.New(preference.Options{
		Storage:        storage,
		ColorScheme:    preference.ColorSchemeFunc(func() bool { return true }),
		LanguageCode:   "en-US",
		ChangeLanguage: tr.SetLanguage,
		SyncTheme: func() {
			if m != nil {
				m.SyncTheme()
			}
		},
	})
	docs := document.NewStore()
	dirs := directory.NewStore()
	teardown := prefs.InitDirectoryOpenListener(docs, dirs)

	fp := &fakePlatform{}
	m = New(Deps{
		Prefs:       prefs,
		Documents:   docs,
		Directories: dirs,
		Platform:    fp,
		Translator:  tr,
		Config:      config.Default(),
	})
	t.Cleanup(func() {
		m.Close()
		teardown()
	})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, fp, testDeps{prefs: prefs, storage: storage, docs: docs, dirs: dirs, tr: tr}
}

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func keyPress(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// runCmd executes cmd and feeds its message back into the model.
func runCmd(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if msg := cmd(); msg != nil {
		m.Update(msg)
	}
}
