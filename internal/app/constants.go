package app

import "time"

// Layout constants define the fixed rows and spacing of the UI.
const (
	// TitleBarRows is the height of the title bar.
	TitleBarRows = 1
	// ToolbarRows is the height of the toolbar when it is shown.
	ToolbarRows = 1
	// FooterRows is the height of the status and help area.
	FooterRows = 2

	// PanelSizeStep is how many percent the panel.shrink and panel.grow
	// actions move the directory panel edge.
	PanelSizeStep = 5

	// RecentPopupHeight is the fixed height of the recently-opened popup.
	RecentPopupHeight = 14
	// PopupPadding is the horizontal margin around popups.
	PopupPadding = 8
)

// Input limits define maximum sizes for user input.
const (
	// InputCharLimit is the maximum number of characters allowed in a path
	// dialog.
	InputCharLimit = 4096
	// FilterCharLimit bounds the recent popup filter.
	FilterCharLimit = 120
)

// Timing constants.
const (
	// AutoSaveIntervalStep is how far left/right moves the interval in the
	// preferences popup.
	AutoSaveIntervalStep = 1000
	// MinAutoSaveTick keeps the autosave loop from spinning when the stored
	// interval is unusable.
	MinAutoSaveTick = time.Second
)
