package app

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/lipgloss"
)

// styles is the set of lipgloss styles for one theme. It is rebuilt whenever
// the effective theme changes.
type styles struct {
	pane      lipgloss.Style
	popup     lipgloss.Style
	panelPane lipgloss.Style
	editPane  lipgloss.Style
	viewPane  lipgloss.Style
	selected  lipgloss.Style
	title     lipgloss.Style
	titleBar  lipgloss.Style
	toolbar   lipgloss.Style
	status    lipgloss.Style
	dirty     lipgloss.Style
	muted     lipgloss.Style
}

type palette struct {
	text, muted, accent, edit, bar, barText, dirty, cursorLine lipgloss.Color
}

var (
	darkPalette = palette{
		text:       "252",
		muted:      "244",
		accent:     "62",
		edit:       "204",
		bar:        "236",
		barText:    "252",
		dirty:      "211",
		cursorLine: "53",
	}
	lightPalette = palette{
		text:       "235",
		muted:      "243",
		accent:     "25",
		edit:       "161",
		bar:        "254",
		barText:    "235",
		dirty:      "160",
		cursorLine: "189",
	}
)

func paletteFor(dark bool) palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

func newStyles(dark bool) styles {
	p := paletteFor(dark)
	pane := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	return styles{
		pane:      pane,
		popup:     lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(p.accent).Padding(0, 1),
		panelPane: pane.BorderForeground(p.muted),
		editPane:  pane.BorderForeground(p.edit),
		viewPane:  pane.BorderForeground(p.accent),
		selected:  lipgloss.NewStyle().Reverse(true),
		title:     lipgloss.NewStyle().Bold(true),
		titleBar:  lipgloss.NewStyle().Background(p.bar).Foreground(p.barText).Bold(true),
		toolbar:   lipgloss.NewStyle().Foreground(p.accent),
		status:    lipgloss.NewStyle().Foreground(p.muted),
		dirty:     lipgloss.NewStyle().Foreground(p.dirty),
		muted:     lipgloss.NewStyle().Foreground(p.muted),
	}
}

// applyEditorTheme restyles the textarea for the given theme.
func applyEditorTheme(editor *textarea.Model, dark bool) {
	p := paletteFor(dark)
	focused, blurred := textarea.DefaultStyles()

	base := lipgloss.NewStyle().Foreground(p.text)
	muted := lipgloss.NewStyle().Foreground(p.muted)
	cursorLine := lipgloss.NewStyle().Background(p.cursorLine).Foreground(p.text)
	lineNumber := lipgloss.NewStyle().Foreground(p.edit)
	prompt := lipgloss.NewStyle().Foreground(p.edit)

	focused.Base = base
	focused.Text = base
	focused.CursorLine = cursorLine
	focused.CursorLineNumber = lineNumber.Bold(true)
	focused.LineNumber = lineNumber
	focused.Prompt = prompt
	focused.Placeholder = muted

	blurred.Base = base
	blurred.Text = muted
	blurred.CursorLine = muted
	blurred.CursorLineNumber = lineNumber
	blurred.LineNumber = lineNumber
	blurred.Prompt = prompt
	blurred.Placeholder = muted

	editor.FocusedStyle = focused
	editor.BlurredStyle = blurred
	editor.Prompt = "│ "
	editor.EndOfBufferCharacter = ' '
	editor.ShowLineNumbers = true
}

// applyHelpTheme colors the footer key help: keys in the accent color,
// descriptions muted.
func applyHelpTheme(h *help.Model, dark bool) {
	p := paletteFor(dark)
	muted := lipgloss.NewStyle().Foreground(p.muted)
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(p.accent)
	h.Styles.ShortDesc = muted
	h.Styles.ShortSeparator = muted
	h.Styles.Ellipsis = muted
}
