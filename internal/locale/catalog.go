package locale

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message ids used by the UI.
const (
	MsgAppName          = "app.name"
	MsgUntitled         = "document.untitled"
	MsgWelcomeHeading   = "welcome.heading"
	MsgWelcomeIntro     = "welcome.intro"
	MsgRecentFiles      = "history.files"
	MsgRecentFolders    = "history.folders"
	MsgNoHistory        = "history.empty"
	MsgOpenFolder       = "menu.open_folder"
	MsgOpenFile         = "menu.open_file"
	MsgSaveAs           = "menu.save_as"
	MsgRecentlyOpened   = "menu.recent"
	MsgRefresh          = "menu.refresh"
	MsgPreferences      = "pref.title"
	MsgPrefTheme        = "pref.theme"
	MsgPrefAutoSave     = "pref.autosave"
	MsgPrefInterval     = "pref.interval"
	MsgPrefToolbar      = "pref.toolbar"
	MsgPrefLanguage     = "pref.language"
	MsgOn               = "common.on"
	MsgOff              = "common.off"
	MsgReady            = "status.ready"
	MsgSaved            = "status.saved"
	MsgAutoSaved        = "status.autosaved"
	MsgSaveFailed       = "status.save_failed"
	MsgCancelled        = "status.cancelled"
	MsgHistoryCleared   = "status.history_cleared"
	MsgCopiedPath       = "status.copied_path"
	MsgRemovedHistory   = "status.removed_history"
	MsgDevTools         = "status.devtools"
	MsgHelpOpen         = "help.open"
	MsgHelpFolder       = "help.folder"
	MsgHelpSave         = "help.save"
	MsgHelpNew          = "help.new"
	MsgHelpRecent       = "help.recent"
	MsgHelpPrefs        = "help.prefs"
	MsgHelpPanel        = "help.panel"
	MsgHelpFocus        = "help.focus"
	MsgHelpPreview      = "help.preview"
	MsgHelpQuit         = "help.quit"
	MsgHelpMove         = "help.move"
	MsgHelpChange       = "help.change"
	MsgHelpRemove       = "help.remove"
	MsgHelpCopy         = "help.copy"
	MsgHelpClose        = "help.close"
	MsgHelpConfirm      = "help.confirm"
	MsgHelpCancel       = "help.cancel"
	MsgNoDocument       = "status.no_document"
	MsgFilter           = "history.filter"
	MsgDirectoryEmpty   = "directory.empty"
	MsgUnsavedIndicator = "document.unsaved"
	MsgUndid            = "edit.undid"
	MsgRedid            = "edit.redid"
	MsgNothingToUndo    = "edit.nothing_to_undo"
	MsgNothingToRedo    = "edit.nothing_to_redo"
	MsgDiscarded        = "status.discarded"
	MsgWorkspaceMissing = "status.workspace_missing"
)

var catalogs = map[language.Tag][]*i18n.Message{
	language.English: {
		{ID: MsgAppName, Other: "Markditor"},
		{ID: MsgUntitled, Other: "Untitled"},
		{ID: MsgWelcomeHeading, Other: "Welcome to Markditor"},
		{ID: MsgWelcomeIntro, Other: "Open a markdown file or a folder to start writing."},
		{ID: MsgRecentFiles, Other: "Recent files"},
		{ID: MsgRecentFolders, Other: "Recent folders"},
		{ID: MsgNoHistory, Other: "Nothing opened yet."},
		{ID: MsgOpenFolder, Other: "Open folder..."},
		{ID: MsgOpenFile, Other: "Open file..."},
		{ID: MsgSaveAs, Other: "Save as..."},
		{ID: MsgRecentlyOpened, Other: "Recently opened"},
		{ID: MsgRefresh, Other: "Refresh"},
		{ID: MsgPreferences, Other: "Preferences"},
		{ID: MsgPrefTheme, Other: "Theme"},
		{ID: MsgPrefAutoSave, Other: "Autosave"},
		{ID: MsgPrefInterval, Other: "Autosave interval"},
		{ID: MsgPrefToolbar, Other: "Show toolbar by default"},
		{ID: MsgPrefLanguage, Other: "Language"},
		{ID: MsgOn, Other: "on"},
		{ID: MsgOff, Other: "off"},
		{ID: MsgReady, Other: "Ready"},
		{ID: MsgSaved, Other: "Saved {{.Name}}"},
		{ID: MsgAutoSaved, Other: "Autosaved {{.Name}}"},
		{ID: MsgSaveFailed, Other: "Save failed"},
		{ID: MsgCancelled, Other: "Cancelled"},
		{ID: MsgHistoryCleared, Other: "History cleared"},
		{ID: MsgCopiedPath, Other: "Copied path"},
		{ID: MsgRemovedHistory, Other: "Removed from history"},
		{ID: MsgDevTools, Other: "Debug logging enabled"},
		{ID: MsgHelpOpen, Other: "open"},
		{ID: MsgHelpFolder, Other: "folder"},
		{ID: MsgHelpSave, Other: "save"},
		{ID: MsgHelpNew, Other: "new"},
		{ID: MsgHelpRecent, Other: "recent"},
		{ID: MsgHelpPrefs, Other: "prefs"},
		{ID: MsgHelpPanel, Other: "panel"},
		{ID: MsgHelpFocus, Other: "focus"},
		{ID: MsgHelpPreview, Other: "preview"},
		{ID: MsgHelpQuit, Other: "quit"},
		{ID: MsgHelpMove, Other: "move"},
		{ID: MsgHelpChange, Other: "change"},
		{ID: MsgHelpRemove, Other: "remove"},
		{ID: MsgHelpCopy, Other: "copy path"},
		{ID: MsgHelpClose, Other: "close"},
		{ID: MsgHelpConfirm, Other: "confirm"},
		{ID: MsgHelpCancel, Other: "cancel"},
		{ID: MsgNoDocument, Other: "No document open"},
		{ID: MsgFilter, Other: "Filter"},
		{ID: MsgDirectoryEmpty, Other: "(empty)"},
		{ID: MsgUnsavedIndicator, Other: "modified"},
		{ID: MsgUndid, Other: "Undid edit"},
		{ID: MsgRedid, Other: "Redid edit"},
		{ID: MsgNothingToUndo, Other: "Nothing to undo"},
		{ID: MsgNothingToRedo, Other: "Nothing to redo"},
		{ID: MsgDiscarded, Other: "Discarded unsaved changes to {{.Name}}"},
		{ID: MsgWorkspaceMissing, Other: "Workspace not found: {{.Path}}"},
	},
	language.Make("zh-CN"): {
		{ID: MsgAppName, Other: "Markditor"},
		{ID: MsgUntitled, Other: "未命名"},
		{ID: MsgWelcomeHeading, Other: "欢迎使用 Markditor"},
		{ID: MsgWelcomeIntro, Other: "打开一个 Markdown 文件或文件夹开始写作。"},
		{ID: MsgRecentFiles, Other: "最近文件"},
		{ID: MsgRecentFolders, Other: "最近文件夹"},
		{ID: MsgNoHistory, Other: "暂无记录。"},
		{ID: MsgOpenFolder, Other: "打开文件夹..."},
		{ID: MsgOpenFile, Other: "打开文件..."},
		{ID: MsgSaveAs, Other: "另存为..."},
		{ID: MsgRecentlyOpened, Other: "最近打开"},
		{ID: MsgRefresh, Other: "刷新"},
		{ID: MsgPreferences, Other: "偏好设置"},
		{ID: MsgPrefTheme, Other: "主题"},
		{ID: MsgPrefAutoSave, Other: "自动保存"},
		{ID: MsgPrefInterval, Other: "自动保存间隔"},
		{ID: MsgPrefToolbar, Other: "默认显示工具栏"},
		{ID: MsgPrefLanguage, Other: "语言"},
		{ID: MsgOn, Other: "开"},
		{ID: MsgOff, Other: "关"},
		{ID: MsgReady, Other: "就绪"},
		{ID: MsgSaved, Other: "已保存 {{.Name}}"},
		{ID: MsgAutoSaved, Other: "已自动保存 {{.Name}}"},
		{ID: MsgSaveFailed, Other: "保存失败"},
		{ID: MsgCancelled, Other: "已取消"},
		{ID: MsgHistoryCleared, Other: "已清除历史记录"},
		{ID: MsgCopiedPath, Other: "已复制路径"},
		{ID: MsgRemovedHistory, Other: "已从历史记录移除"},
		{ID: MsgDevTools, Other: "已开启调试日志"},
		{ID: MsgHelpOpen, Other: "打开"},
		{ID: MsgHelpFolder, Other: "文件夹"},
		{ID: MsgHelpSave, Other: "保存"},
		{ID: MsgHelpNew, Other: "新建"},
		{ID: MsgHelpRecent, Other: "最近"},
		{ID: MsgHelpPrefs, Other: "设置"},
		{ID: MsgHelpPanel, Other: "侧栏"},
		{ID: MsgHelpFocus, Other: "切换焦点"},
		{ID: MsgHelpPreview, Other: "预览"},
		{ID: MsgHelpQuit, Other: "退出"},
		{ID: MsgHelpMove, Other: "移动"},
		{ID: MsgHelpChange, Other: "修改"},
		{ID: MsgHelpRemove, Other: "移除"},
		{ID: MsgHelpCopy, Other: "复制路径"},
		{ID: MsgHelpClose, Other: "关闭"},
		{ID: MsgHelpConfirm, Other: "确认"},
		{ID: MsgHelpCancel, Other: "取消"},
		{ID: MsgNoDocument, Other: "没有打开的文档"},
		{ID: MsgFilter, Other: "筛选"},
		{ID: MsgDirectoryEmpty, Other: "（空）"},
		{ID: MsgUnsavedIndicator, Other: "已修改"},
		{ID: MsgUndid, Other: "已撤销"},
		{ID: MsgRedid, Other: "已重做"},
		{ID: MsgNothingToUndo, Other: "没有可撤销的操作"},
		{ID: MsgNothingToRedo, Other: "没有可重做的操作"},
		{ID: MsgDiscarded, Other: "已放弃 {{.Name}} 的未保存修改"},
		{ID: MsgWorkspaceMissing, Other: "找不到工作区：{{.Path}}"},
	},
}
