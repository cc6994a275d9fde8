// Package platform is the boundary through which the UI asks the host for
// file and OS operations.
//
// Every operation may block (a dialog waits for the user) and reports
// cancellation or failure through its boolean result rather than an error:
// the UI only needs to know whether it got something to work with. Details
// of failures are logged here.
package platform

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/treykane/markditor/internal/logging"
)

var log = logging.New("platform")

// MaxFileBytes bounds the size of a file OpenFile will load.
const MaxFileBytes = 8 << 20

var errTooLarge = errors.New("file too large")

// File is a document loaded by OpenFile.
type File struct {
	Path    string
	Content string
}

// API is the platform contract consumed by the UI.
type API interface {
	// OpenFile asks the user for a file and loads it.
	OpenFile(ctx context.Context) (File, bool)
	// SaveFile writes content to path.
	SaveFile(ctx context.Context, path, content string) bool
	// ShowSaveDialog asks the user for a destination path.
	ShowSaveDialog(ctx context.Context) (string, bool)
	// SystemInfo describes the host.
	SystemInfo(ctx context.Context) string
	// OpenDevTools turns on diagnostics for the running session.
	OpenDevTools(ctx context.Context)
}

// DialogKind selects which dialog a Prompter shows.
type DialogKind int

const (
	DialogOpenFile DialogKind = iota
	DialogSaveFile
	DialogOpenFolder
)

func (k DialogKind) String() string {
	switch k {
	case DialogOpenFile:
		return "open-file"
	case DialogSaveFile:
		return "save-file"
	case DialogOpenFolder:
		return "open-folder"
	}
	return fmt.Sprintf("dialog(%d)", int(k))
}

// Prompter shows a path dialog and blocks until the user answers.
type Prompter interface {
	Prompt(ctx context.Context, kind DialogKind) (path string, ok bool)
}

// Local implements API on the local filesystem, delegating dialogs to a
// Prompter supplied by the UI.
type Local struct {
	prompter Prompter
	version  string
}

// NewLocal returns a Local platform. version is reported by SystemInfo.
func NewLocal(prompter Prompter, version string) *Local {
	return &Local{prompter: prompter, version: version}
}

var _ API = (*Local)(nil)

// OpenFile implements API.
func (l *Local) OpenFile(ctx context.Context) (File, bool) {
	path, ok := l.prompt(ctx, DialogOpenFile)
	if !ok {
		return File{}, false
	}
	content, err := ReadFile(path)
	if err != nil {
		log.Warn("open file", "path", path, "error", err)
		return File{}, false
	}
	return File{Path: path, Content: content}, true
}

// OpenFolder asks the user for a folder.
func (l *Local) OpenFolder(ctx context.Context) (string, bool) {
	path, ok := l.prompt(ctx, DialogOpenFolder)
	if !ok {
		return "", false
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		log.Warn("open folder", "path", path, "error", err)
		return "", false
	}
	return path, true
}

// SaveFile implements API. The file is replaced atomically.
func (l *Local) SaveFile(ctx context.Context, path, content string) bool {
	if ctx.Err() != nil || path == "" {
		return false
	}
	if err := WriteFile(path, content); err != nil {
		log.Warn("save file", "path", path, "error", err)
		return false
	}
	log.Debug("saved file", "path", path, "bytes", len(content))
	return true
}

// ShowSaveDialog implements API.
func (l *Local) ShowSaveDialog(ctx context.Context) (string, bool) {
	return l.prompt(ctx, DialogSaveFile)
}

// SystemInfo implements API.
func (l *Local) SystemInfo(context.Context) string {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	version := l.version
	if version == "" {
		version = "dev"
	}
	return fmt.Sprintf("markditor %s on %s/%s (%s), host %s", version, runtime.GOOS, runtime.GOARCH, runtime.Version(), host)
}

// OpenDevTools implements API by switching the logger to debug level.
func (l *Local) OpenDevTools(context.Context) {
	logging.SetLevel(slog.LevelDebug)
	log.Info("debug logging enabled")
}

func (l *Local) prompt(ctx context.Context, kind DialogKind) (string, bool) {
	if l.prompter == nil || ctx.Err() != nil {
		return "", false
	}
	path, ok := l.prompter.Prompt(ctx, kind)
	if !ok || path == "" {
		log.Debug("dialog cancelled", "kind", kind)
		return "", false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	return abs, true
}

// ReadFile loads a regular file of at most MaxFileBytes.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%s: not a regular file", path)
	}
	if info.Size() > MaxFileBytes {
		return "", fmt.Errorf("%s: %w (%d bytes)", path, errTooLarge, info.Size())
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteFile writes content to a temp file next to path and renames it over
// path, keeping the original file mode when one exists.
func WriteFile(path, content string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create parent dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), mode); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace file: %w", err)
	}
	return nil
}
