package app

import (
	"log/slog"

	"github.com/treykane/markditor/internal/logging"
)

// appLog is the package-level structured logger for the app package.
//
// The level follows MARKDITOR_LOG_LEVEL and the --log-level flag, and
// switches to debug when dev tools are opened. Output goes to stderr so it
// does not interfere with the terminal UI.
var appLog = logging.New("app")

// setStatusError shows status in the footer and logs err with any extra
// slog-style key-value attrs.
//
//	m.setStatusError(m.tr.T(locale.MsgSaveFailed), err, "path", path)
func (m *Model) setStatusError(status string, err error, attrs ...any) {
	m.status = status
	fields := make([]any, 0, len(attrs)+2)
	fields = append(fields, slog.Any("error", err))
	fields = append(fields, attrs...)
	appLog.Error(status, fields...)
}
