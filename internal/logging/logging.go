// Package logging provides a shared, structured logger for markditor.
//
// It wraps [log/slog] with a single initialization point so every component
// shares the same handler and level. The level is read once from the
// MARKDITOR_LOG_LEVEL environment variable (debug, info, warn, error) and can
// be changed later with SetLevel, which is how the platform's dev-tools switch
// turns on debug output for a running session.
//
// Usage:
//
//	log := logging.New("preference")
//	log.Info("loaded preferences", "path", p)
//
// Output goes to stderr until SetOutput redirects it; the markditor command
// points it at a log file so records never draw over the terminal UI.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// EnvLogLevel names the environment variable holding the startup log level.
const EnvLogLevel = "MARKDITOR_LOG_LEVEL"

var (
	initLogger sync.Once
	baseLogger *slog.Logger

	// level is shared by the base handler so SetLevel affects every
	// component logger already handed out.
	level = new(slog.LevelVar)

	output = &swapWriter{w: os.Stderr}
)

// swapWriter lets SetOutput redirect loggers that were already handed out.
type swapWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *swapWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func (s *swapWriter) set(w io.Writer) {
	s.mu.Lock()
	s.w = w
	s.mu.Unlock()
}

// New returns a structured logger tagged with component=<component>.
// An empty component returns the base logger.
func New(component string) *slog.Logger {
	initLogger.Do(func() {
		level.Set(ParseLevel(os.Getenv(EnvLogLevel)))
		baseLogger = slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{
			Level: level,
		}))
	})
	if component == "" {
		return baseLogger
	}
	return baseLogger.With("component", component)
}

// SetOutput redirects log output for every logger, including ones created
// before the call. A nil writer is ignored.
func SetOutput(w io.Writer) {
	if w == nil {
		return
	}
	output.set(w)
}

// SetLevel changes the active level for all loggers.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// Level reports the active level.
func Level() slog.Level {
	return level.Level()
}

// ParseLevel converts a human-readable level name to a [slog.Level].
//
// Recognized values (case-insensitive, whitespace-trimmed):
//   - "debug"           → slog.LevelDebug
//   - "warn", "warning" → slog.LevelWarn
//   - "error"           → slog.LevelError
//   - anything else     → slog.LevelInfo
func ParseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
