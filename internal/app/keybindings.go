package app

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/treykane/markditor/internal/config"
	"github.com/treykane/markditor/internal/locale"
)

// Global actions, checked whenever no popup is open. Undo, redo and focus
// switching fall through to the focused widget when they do not apply.
// Users rebind them through the "keybindings" object in config.json or the
// keymap file; a rebinding replaces every default key of that action.
const (
	actionQuit          = "app.quit"
	actionOpenFile      = "file.open"
	actionOpenFolder    = "folder.open"
	actionSave          = "file.save"
	actionSaveAs        = "file.save_as"
	actionNewDocument   = "file.new"
	actionRecent        = "recent.open"
	actionPreferences   = "prefs.open"
	actionTogglePanel   = "panel.toggle"
	actionPanelShrink   = "panel.shrink"
	actionPanelGrow     = "panel.grow"
	actionTogglePreview = "preview.toggle"
	actionToggleToolbar = "toolbar.toggle"
	actionClearHistory  = "history.clear"
	actionDevTools      = "devtools.open"
	actionSwitchFocus   = "focus.toggle"
	actionUndo          = "edit.undo"
	actionRedo          = "edit.redo"
)

// defaultActionKeys maps each action to its factory-default keys, in Bubble
// Tea key notation. The first key is the one shown in the toolbar.
var defaultActionKeys = map[string][]string{
	actionQuit:          {"ctrl+q", "ctrl+c"},
	actionOpenFile:      {"ctrl+o"},
	actionOpenFolder:    {"ctrl+e"},
	actionSave:          {"ctrl+s"},
	actionSaveAs:        {"alt+s"},
	actionNewDocument:   {"ctrl+n"},
	actionRecent:        {"ctrl+r"},
	actionPreferences:   {"f2", "ctrl+,"},
	actionTogglePanel:   {"ctrl+b"},
	actionPanelShrink:   {"ctrl+left"},
	actionPanelGrow:     {"ctrl+right"},
	actionTogglePreview: {"ctrl+p"},
	actionToggleToolbar: {"ctrl+t"},
	actionClearHistory:  {"ctrl+l"},
	actionDevTools:      {"f12"},
	actionSwitchFocus:   {"tab"},
	actionUndo:          {"ctrl+z"},
	actionRedo:          {"ctrl+y"},
}

// loadKeybindings builds the key<->action maps from the defaults, then the
// inline config overrides, then the keymap file. Later sources win.
func (m *Model) loadKeybindings(cfg config.Config, configDir string) {
	m.keyForAction = map[string][]string{}
	for action, keys := range defaultActionKeys {
		m.keyForAction[action] = append([]string(nil), keys...)
	}

	for action, key := range cfg.Keybindings {
		m.applyKeybindingOverride(action, key)
	}

	keymap := cfg.KeymapFile
	if keymap == "" && configDir != "" {
		keymap = config.KeymapPath(configDir)
	}
	for action, key := range loadKeymapFile(keymap) {
		m.applyKeybindingOverride(action, key)
	}

	m.rebuildActionKeyIndex()
}

// loadKeymapFile reads a flat JSON object of action -> key. A missing file
// is not an error.
//
//	{"file.open": "alt+o", "preview.toggle": "f5"}
func loadKeymapFile(path string) map[string]string {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			appLog.Warn("read keymap file", "path", path, "error", err)
		}
		return nil
	}
	overrides := map[string]string{}
	if err := json.Unmarshal(data, &overrides); err != nil {
		appLog.Warn("parse keymap file", "path", path, "error", err)
		return nil
	}
	return overrides
}

// applyKeybindingOverride replaces the keys of a known action. Unknown
// actions are logged and ignored.
func (m *Model) applyKeybindingOverride(action, key string) {
	action = strings.TrimSpace(action)
	key = normalizeKeyString(key)
	if action == "" || key == "" {
		return
	}
	if _, ok := defaultActionKeys[action]; !ok {
		appLog.Warn("ignore unknown keybinding action", "action", action)
		return
	}
	m.keyForAction[action] = []string{key}
}

// rebuildActionKeyIndex builds the key -> action lookup and one key.Binding
// per action holding the keys it actually owns. When two actions claim one
// key the conflict is logged and only one of them keeps it.
func (m *Model) rebuildActionKeyIndex() {
	m.keyToAction = map[string]string{}
	m.bindings = map[string]key.Binding{}
	actions := make([]string, 0, len(m.keyForAction))
	for action := range m.keyForAction {
		actions = append(actions, action)
	}
	slices.Sort(actions)
	for _, action := range actions {
		var owned []string
		for _, k := range m.keyForAction[action] {
			if k == "" {
				continue
			}
			if existing, ok := m.keyToAction[k]; ok && existing != action {
				appLog.Warn("keybinding conflict ignored", "key", k, "action", action, "existing_action", existing)
				continue
			}
			m.keyToAction[k] = action
			owned = append(owned, k)
		}
		if len(owned) == 0 {
			m.bindings[action] = key.NewBinding(key.WithDisabled())
			continue
		}
		m.bindings[action] = key.NewBinding(
			key.WithKeys(owned...),
			key.WithHelp(shortKeyLabel(owned[0]), ""),
		)
	}
}

// normalizeKeyString lowercases a key and turns a single upper-case letter
// into "shift+<letter>", the way Bubble Tea reports shifted runes.
//
//	normalizeKeyString("Ctrl+O") → "ctrl+o"
//	normalizeKeyString(" Y ")    → "shift+y"
func normalizeKeyString(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if len([]rune(key)) == 1 && strings.ToUpper(key) == key && strings.ToLower(key) != key {
		return "shift+" + strings.ToLower(key)
	}
	return strings.ToLower(key)
}

// actionForKey returns the action bound to key, or "".
func (m *Model) actionForKey(key string) string {
	if m.keyToAction == nil {
		return ""
	}
	return m.keyToAction[normalizeKeyString(key)]
}

// primaryActionKey is the short toolbar label of the first key bound to
// action, or fallback when nothing is bound.
func (m *Model) primaryActionKey(action, fallback string) string {
	b, ok := m.bindings[action]
	if !ok || !b.Enabled() || b.Help().Key == "" {
		return fallback
	}
	return b.Help().Key
}

// browseHelpActions are the actions listed in the help row when no popup
// is open, with their help descriptions.
var browseHelpActions = []struct{ action, descID string }{
	{actionOpenFile, locale.MsgHelpOpen},
	{actionOpenFolder, locale.MsgHelpFolder},
	{actionSave, locale.MsgHelpSave},
	{actionNewDocument, locale.MsgHelpNew},
	{actionRecent, locale.MsgHelpRecent},
	{actionPreferences, locale.MsgHelpPrefs},
	{actionTogglePanel, locale.MsgHelpPanel},
	{actionSwitchFocus, locale.MsgHelpFocus},
	{actionTogglePreview, locale.MsgHelpPreview},
	{actionQuit, locale.MsgHelpQuit},
}

// popupKeyMap holds the fixed keys of the popups and the path prompt.
type popupKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PrefsUp   key.Binding
	PrefsDown key.Binding
	Select    key.Binding
	Change    key.Binding
	Back      key.Binding
	Remove    key.Binding
	Copy      key.Binding
	Close     key.Binding
}

// The recent popup types into its filter, so letter keys only navigate the
// preferences popup.
var popupKeys = popupKeyMap{
	Up:        key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑/↓", "")),
	Down:      key.NewBinding(key.WithKeys("down", "ctrl+n")),
	PrefsUp:   key.NewBinding(key.WithKeys("k")),
	PrefsDown: key.NewBinding(key.WithKeys("j")),
	Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "")),
	Change:    key.NewBinding(key.WithKeys("right", "l", " "), key.WithHelp("←/→", "")),
	Back:      key.NewBinding(key.WithKeys("left", "h")),
	Remove:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "")),
	Copy:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("^y", "")),
	Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "")),
}

// withDesc returns a copy of b whose help reads descID in the current
// language.
func (m *Model) withDesc(b key.Binding, descID string) key.Binding {
	b.SetHelp(b.Help().Key, m.tr.T(descID))
	return b
}

// helpBindings lists the bindings shown in the help row for the active
// overlay.
func (m *Model) helpBindings() []key.Binding {
	switch m.overlay {
	case overlayRecent:
		return []key.Binding{
			m.withDesc(popupKeys.Up, locale.MsgHelpMove),
			m.withDesc(popupKeys.Select, locale.MsgHelpOpen),
			m.withDesc(popupKeys.Remove, locale.MsgHelpRemove),
			m.withDesc(popupKeys.Copy, locale.MsgHelpCopy),
			m.withDesc(popupKeys.Close, locale.MsgHelpClose),
		}
	case overlayPrefs:
		return []key.Binding{
			m.withDesc(popupKeys.Up, locale.MsgHelpMove),
			m.withDesc(popupKeys.Change, locale.MsgHelpChange),
			m.withDesc(popupKeys.Close, locale.MsgHelpClose),
		}
	case overlayPrompt:
		return []key.Binding{
			m.withDesc(popupKeys.Select, locale.MsgHelpConfirm),
			m.withDesc(popupKeys.Close, locale.MsgHelpCancel),
		}
	}
	out := make([]key.Binding, 0, len(browseHelpActions))
	for _, item := range browseHelpActions {
		out = append(out, m.withDesc(m.bindings[item.action], item.descID))
	}
	return out
}

// shortKeyLabel renders a key the way the toolbar and help rows do:
// "ctrl+o" becomes "^o", everything else stays as typed.
func shortKeyLabel(key string) string {
	key = normalizeKeyString(key)
	if rest, ok := strings.CutPrefix(key, "ctrl+"); ok && rest != "" {
		return "^" + rest
	}
	return key
}
