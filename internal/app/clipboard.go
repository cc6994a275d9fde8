package app

import (
	"github.com/atotto/clipboard"

	"github.com/treykane/markditor/internal/locale"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// copyPathToClipboard copies path to the system clipboard and reports the
// outcome in the footer.
func (m *Model) copyPathToClipboard(path string) {
	if path == "" {
		return
	}
	if err := writeClipboard(path); err != nil {
		m.setStatusError("Clipboard copy failed", err, "path", path)
		return
	}
	m.status = m.tr.T(locale.MsgCopiedPath) + ": " + displayPath(path)
}
