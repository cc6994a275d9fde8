package app

import (
	"fmt"
	"strings"

	"github.com/treykane/markditor/internal/locale"
)

// renderMain draws the editor, the preview, or the welcome page.
func (m *Model) renderMain(width, height int) string {
	doc := m.docs.Current()
	style := m.styles.viewPane
	var content string
	switch {
	case doc.Open() && m.preview:
		key := fmt.Sprintf("%t/%d/", m.dark, m.viewport.Width) + doc.Content
		m.viewport.SetContent(m.previewPage.get(key, func() string {
			return renderMarkdown(doc.Content, m.viewport.Width, m.dark)
		}))
		content = m.viewport.View()
	case doc.Open():
		style = m.styles.editPane
		content = m.editor.View()
	default:
		innerWidth := max(0, width-style.GetHorizontalFrameSize())
		markdown := m.welcomeMarkdown()
		key := fmt.Sprintf("%t/%d/", m.dark, innerWidth) + markdown
		content = m.welcomePage.get(key, func() string {
			return renderMarkdown(markdown, innerWidth, m.dark)
		})
	}
	return style.
		Width(max(0, width-style.GetHorizontalBorderSize())).
		Height(max(0, height-style.GetVerticalBorderSize())).
		MaxHeight(height).
		Render(content)
}

// welcomeMarkdown is the start page shown when no document is open.
func (m *Model) welcomeMarkdown() string {
	st := m.prefs.State()
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", m.tr.T(locale.MsgWelcomeHeading), m.tr.T(locale.MsgWelcomeIntro))
	writeHistory := func(title string, paths []string) {
		fmt.Fprintf(&b, "## %s\n\n", title)
		if len(paths) == 0 {
			fmt.Fprintf(&b, "%s\n\n", m.tr.T(locale.MsgNoHistory))
			return
		}
		for _, path := range paths {
			fmt.Fprintf(&b, "- `%s`\n", displayPath(path))
		}
		b.WriteString("\n")
	}
	writeHistory(m.tr.T(locale.MsgRecentFiles), st.FileHistory)
	writeHistory(m.tr.T(locale.MsgRecentFolders), st.FolderHistory)
	return b.String()
}
