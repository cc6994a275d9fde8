package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/markditor/internal/config"
	"github.com/treykane/markditor/internal/directory"
	"github.com/treykane/markditor/internal/document"
	"github.com/treykane/markditor/internal/locale"
	"github.com/treykane/markditor/internal/platform"
	"github.com/treykane/markditor/internal/preference"
)

// Platform is the host API the shell drives: the platform contract plus a
// folder dialog.
type Platform interface {
	platform.API
	OpenFolder(ctx context.Context) (string, bool)
}

// Deps are the collaborators a Model is built from.
type Deps struct {
	Prefs       *preference.Store
	Documents   *document.Store
	Directories *directory.Store
	Platform    Platform
	// Prompts receives the dialogs Platform opens. May be nil when
	// Platform never prompts.
	Prompts    *PromptBridge
	Translator *locale.Translator
	Config     config.Config
	// ConfigDir is where panel size changes are saved. Empty disables saving.
	ConfigDir string
	// Context bounds platform calls. Nil uses context.Background.
	Context context.Context
}

// Model holds the Bubble Tea state for the entire UI.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	// Injected stores and services
	prefs     *preference.Store
	docs      *document.Store
	dirs      *directory.Store
	platform  Platform
	bridge    *PromptBridge
	tr        *locale.Translator
	cfg       config.Config
	configDir string

	// UI widgets
	editor   textarea.Model
	viewport viewport.Model
	input    textinput.Model
	filter   textinput.Model
	help     help.Model
	styles   styles
	dark     bool
	themed   bool
	status   string

	// Layout sizing
	width       int
	height      int
	panelSize   int
	showPanel   bool
	showToolbar bool

	// Main panel state
	preview     bool
	previewPage renderedBlock
	welcomePage renderedBlock
	saving      bool
	queuedSaves []pendingSave
	docGen      int // bumped whenever another document is loaded
	panelFocus  bool
	panelCursor int
	panelOffset int

	// Editor undo history
	editorUndo             []editorSnapshot
	editorRedo             []editorSnapshot
	typingBurstActive      bool
	typingBurstLastInputAt time.Time

	// Keybindings
	keyForAction map[string][]string
	keyToAction  map[string]string
	bindings     map[string]key.Binding

	// Overlays
	overlay       overlayMode
	prompts       []promptRequest
	recentEntries []recentEntry
	recentCursor  int
	prefsCursor   int

	// Filesystem watching
	watcher   *directory.Watcher
	dirEvents chan struct{}
	unsubs    []func()
}

// New builds the UI model around the injected stores. The model starts
// showing whatever document and folder the stores already hold.
func New(deps Deps) *Model {
	parent := deps.Context
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	input := textinput.New()
	input.CharLimit = InputCharLimit

	filter := textinput.New()
	filter.CharLimit = FilterCharLimit
	filter.Prompt = "/ "

	editor := textarea.New()
	editor.CharLimit = 0
	editor.MaxHeight = 0

	m := &Model{
		ctx:         ctx,
		cancel:      cancel,
		prefs:       deps.Prefs,
		docs:        deps.Documents,
		dirs:        deps.Directories,
		platform:    deps.Platform,
		bridge:      deps.Prompts,
		tr:          deps.Translator,
		cfg:         deps.Config,
		configDir:   deps.ConfigDir,
		editor:      editor,
		viewport:    viewport.New(0, 0),
		input:       input,
		filter:      filter,
		help:        help.New(),
		panelSize:   clampPanelSize(deps.Config.PanelSize),
		showPanel:   true,
		showToolbar: deps.Prefs.State().DefaultShowToolbar,
	}
	m.loadKeybindings(deps.Config, deps.ConfigDir)
	m.applyTheme()
	m.status = m.tr.T(locale.MsgReady)

	if doc := m.docs.Current(); doc.Open() {
		m.editor.SetValue(doc.Content)
	}
	m.startWatcher()
	m.refocus()
	return m
}

// Close stops the watcher, cancels in-flight platform calls and drops the
// model's store subscriptions.
func (m *Model) Close() {
	m.cancel()
	for _, unsubscribe := range m.unsubs {
		unsubscribe()
	}
	m.unsubs = nil
	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			appLog.Warn("close directory watcher", "error", err)
		}
	}
}

// SyncTheme restyles the UI for the current effective theme. The preference
// store calls it after the theme preference changes.
func (m *Model) SyncTheme() {
	m.applyTheme()
}

func (m *Model) applyTheme() {
	dark := m.prefs.ThemeMode() == preference.ThemeDark
	if m.themed && dark == m.dark {
		return
	}
	m.themed = true
	m.dark = dark
	m.styles = newStyles(dark)
	applyEditorTheme(&m.editor, dark)
	applyHelpTheme(&m.help, dark)
	m.welcomePage.reset()
	m.previewPage.reset()
	appLog.Debug("applied theme", "dark", dark)
}

// Open loads path into the editor when it is a file, or opens it in the
// directory panel when it is a folder. It is meant for startup, before any
// edits exist.
func (m *Model) Open(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("open %q: %w", path, err)
	}
	if info.IsDir() {
		return m.openFolder(path)
	}
	content, err := platform.ReadFile(path)
	if err != nil {
		return fmt.Errorf("open %q: %w", path, err)
	}
	m.loadDocument(platform.File{Path: path, Content: content})
	return nil
}

// SetStatus replaces the footer status message.
func (m *Model) SetStatus(status string) {
	m.status = status
}

// Init starts the long-lived commands: cursor blink, dialog and watcher
// listeners, and the autosave loop.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.bridge.wait(m.ctx),
		m.waitForDirChange(),
		m.scheduleAutoSave(),
	)
}

// Update is the Bubble Tea update loop: handle events and emit commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applyTheme()
		m.applyLayout(m.calculateLayout())
		m.adjustPanelOffset()
		return m, nil
	case promptRequestMsg:
		return m.handlePromptRequest(msg)
	case dirChangedMsg:
		return m.handleDirChanged()
	case autoSaveTickMsg:
		return m.handleAutoSaveTick()
	case fileOpenedMsg:
		return m.handleFileOpened(msg)
	case folderChosenMsg:
		return m.handleFolderChosen(msg)
	case savedMsg:
		return m.handleSaved(msg)
	case devToolsMsg:
		return m.handleDevTools(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.editorFocused() {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

// editorFocused reports whether keystrokes go to the textarea.
func (m *Model) editorFocused() bool {
	return m.overlay == overlayNone && !m.panelFocus && !m.preview && m.docs.HasDocOpened()
}

// refocus gives the textarea focus when it should have it.
func (m *Model) refocus() {
	if !m.panelVisible() {
		m.panelFocus = false
	}
	if !m.docs.HasDocOpened() && m.panelVisible() {
		m.panelFocus = true
	}
	if m.editorFocused() {
		m.editor.Focus()
		return
	}
	m.editor.Blur()
}

// loadDocument shows f in the editor. The returned command saves the
// document being replaced when it had unsaved edits.
func (m *Model) loadDocument(f platform.File) tea.Cmd {
	flush, discarded := m.flushBeforeSwitch()
	m.docGen++
	m.docs.Open(f.Path, f.Content)
	m.editor.SetValue(f.Content)
	m.resetEditHistory()
	m.preview = false
	m.previewPage.reset()
	m.panelFocus = false
	m.refocus()
	m.status = displayPath(f.Path)
	m.reportDiscarded(discarded)
	return flush
}

// openFolder opens path in the directory panel. Folders that no longer exist
// are dropped from the history.
func (m *Model) openFolder(path string) error {
	if err := m.dirs.Open(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, directory.ErrNotDirectory) {
			m.prefs.RemoveFromFolderHistory(path)
		}
		return err
	}
	m.showPanel = true
	m.panelCursor = 0
	m.panelOffset = 0
	m.applyLayout(m.calculateLayout())
	m.refocus()
	m.status = displayPath(m.dirs.Root().Path)
	return nil
}

// newDocument starts an untitled document. Like loadDocument it may return
// a save of the replaced document.
func (m *Model) newDocument() tea.Cmd {
	flush, discarded := m.flushBeforeSwitch()
	m.docGen++
	m.docs.New()
	m.editor.SetValue("")
	m.resetEditHistory()
	m.preview = false
	m.panelFocus = false
	m.refocus()
	m.status = m.tr.T(locale.MsgUntitled)
	m.reportDiscarded(discarded)
	return flush
}

func (m *Model) reportDiscarded(name string) {
	if name != "" {
		m.status = m.tr.T(locale.MsgDiscarded, map[string]any{"Name": name})
	}
}

// syncDocument pushes the editor buffer into the document store.
func (m *Model) syncDocument() {
	if !m.docs.HasDocOpened() {
		return
	}
	m.docs.SetContent(m.editor.Value())
}
