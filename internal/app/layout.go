// layout.go centralizes the terminal layout calculations.
//
// From top to bottom the screen holds the title bar, the optional toolbar,
// the content row and the footer. The content row is a horizontal split: the
// directory panel on the left (only while a folder is open and the panel is
// not hidden) and the main panel on the right. The panel width is a
// percentage of the terminal width, clamped to the configured bounds.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/markditor/internal/config"
)

// LayoutDimensions holds all calculated layout dimensions for the UI.
type LayoutDimensions struct {
	PanelWidth     int // width of the directory panel including its border, 0 when hidden
	MainWidth      int // width of the main panel including its border
	ContentHeight  int // height of the content row
	EditorWidth    int // usable width inside the main panel
	EditorHeight   int // usable height inside the main panel
	ToolbarVisible bool
}

// clampPanelSize bounds a directory panel percentage.
func clampPanelSize(percent int) int {
	return clamp(percent, config.MinPanelSize, config.MaxPanelSize)
}

// panelVisible reports whether the directory panel takes up space.
func (m *Model) panelVisible() bool {
	return m.showPanel && m.dirs.Root() != nil
}

// calculateLayout computes all UI dimensions from the terminal size.
func (m *Model) calculateLayout() LayoutDimensions {
	chrome := TitleBarRows + FooterRows
	if m.showToolbar {
		chrome += ToolbarRows
	}
	contentHeight := max(0, m.height-chrome)

	panelWidth := 0
	if m.panelVisible() {
		panelWidth = m.width * clampPanelSize(m.panelSize) / 100
	}
	mainWidth := max(0, m.width-panelWidth)

	frame := m.styles.editPane
	return LayoutDimensions{
		PanelWidth:     panelWidth,
		MainWidth:      mainWidth,
		ContentHeight:  contentHeight,
		EditorWidth:    max(0, mainWidth-frame.GetHorizontalFrameSize()),
		EditorHeight:   max(0, contentHeight-frame.GetVerticalFrameSize()),
		ToolbarVisible: m.showToolbar,
	}
}

// applyLayout resizes the editor and preview widgets to the main panel.
func (m *Model) applyLayout(layout LayoutDimensions) {
	m.editor.SetWidth(layout.EditorWidth)
	m.editor.SetHeight(layout.EditorHeight)
	m.viewport.Width = layout.EditorWidth
	m.viewport.Height = layout.EditorHeight
}

// resizePanel moves the directory panel edge by delta percent and returns a
// command persisting the new size, or nil when the size did not change.
func (m *Model) resizePanel(delta int) tea.Cmd {
	next := clampPanelSize(m.panelSize + delta)
	if next == m.panelSize {
		return nil
	}
	m.panelSize = next
	m.applyLayout(m.calculateLayout())
	m.cfg.PanelSize = next
	return m.saveConfigCmd()
}
