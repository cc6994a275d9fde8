package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/markditor/internal/directory"
	"github.com/treykane/markditor/internal/locale"
)

// handlePanelKey handles navigation in the directory panel.
func (m *Model) handlePanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.dirs.Current().Items
	switch msg.String() {
	case "up", "k":
		m.movePanelCursor(-1)
	case "down", "j":
		m.movePanelCursor(1)
	case "enter", "right", "l":
		item := m.selectedPanelItem()
		if item == nil {
			return m, nil
		}
		if item.IsDir {
			m.dirs.Toggle(item.Path)
			m.clampPanelCursor()
			return m, nil
		}
		return m, openPathCmd(item.Path)
	case "left", "h":
		item := m.selectedPanelItem()
		if item != nil && item.IsDir && m.dirs.Current().Expanded[item.Path] {
			m.dirs.Toggle(item.Path)
			m.clampPanelCursor()
		}
	case "r":
		m.dirs.Refresh()
		m.clampPanelCursor()
		m.status = m.tr.T(locale.MsgRefresh)
	case "esc":
		if m.docs.HasDocOpened() {
			m.panelFocus = false
			m.refocus()
		}
	case "home", "g":
		m.panelCursor = 0
		m.adjustPanelOffset()
	case "end", "G":
		m.panelCursor = max(0, len(items)-1)
		m.adjustPanelOffset()
	}
	return m, nil
}

func (m *Model) selectedPanelItem() *directory.Item {
	items := m.dirs.Current().Items
	if m.panelCursor < 0 || m.panelCursor >= len(items) {
		return nil
	}
	item := items[m.panelCursor]
	return &item
}

func (m *Model) movePanelCursor(delta int) {
	items := m.dirs.Current().Items
	if len(items) == 0 {
		return
	}
	m.panelCursor = clamp(m.panelCursor+delta, 0, len(items)-1)
	m.adjustPanelOffset()
}

func (m *Model) clampPanelCursor() {
	items := m.dirs.Current().Items
	m.panelCursor = clamp(m.panelCursor, 0, max(0, len(items)-1))
	m.adjustPanelOffset()
}

// panelVisibleRows is the number of tree rows that fit under the panel header.
func (m *Model) panelVisibleRows() int {
	layout := m.calculateLayout()
	return max(0, layout.ContentHeight-m.styles.panelPane.GetVerticalFrameSize()-1)
}

func (m *Model) adjustPanelOffset() {
	visible := m.panelVisibleRows()
	if visible == 0 {
		m.panelOffset = 0
		return
	}
	if m.panelCursor < m.panelOffset {
		m.panelOffset = m.panelCursor
	}
	if m.panelCursor >= m.panelOffset+visible {
		m.panelOffset = m.panelCursor - visible + 1
	}
}

// renderPanel draws the directory panel.
func (m *Model) renderPanel(width, height int) string {
	style := m.styles.panelPane
	innerWidth := max(0, width-style.GetHorizontalFrameSize())
	innerHeight := max(0, height-style.GetVerticalFrameSize())

	st := m.dirs.Current()
	header := m.styles.title.Render(st.Root.Name)
	lines := []string{truncate(header, innerWidth)}

	items := st.Items
	if len(items) == 0 {
		lines = append(lines, m.styles.muted.Render(m.tr.T(locale.MsgDirectoryEmpty)))
	}

	visible := max(0, innerHeight-1)
	start := clamp(m.panelOffset, 0, max(0, len(items)-1))
	end := min(len(items), start+visible)
	for i := start; i < end; i++ {
		line := formatTreeItem(items[i], st.Expanded)
		if m.panelFocus && i == m.panelCursor {
			line = m.styles.selected.Render(line)
		}
		lines = append(lines, truncate(line, innerWidth))
	}

	return style.
		Width(max(0, width-style.GetHorizontalBorderSize())).
		Height(max(0, height-style.GetVerticalBorderSize())).
		Render(strings.Join(lines, "\n"))
}

func formatTreeItem(item directory.Item, expanded map[string]bool) string {
	indent := strings.Repeat("  ", item.Depth)
	if item.IsDir {
		marker := "▸"
		if expanded[item.Path] {
			marker = "▾"
		}
		return indent + marker + " " + item.Name
	}
	return indent + "  " + item.Name
}
