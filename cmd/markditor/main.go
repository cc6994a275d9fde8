package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/markditor/internal/app"
	"github.com/treykane/markditor/internal/config"
	"github.com/treykane/markditor/internal/directory"
	"github.com/treykane/markditor/internal/document"
	"github.com/treykane/markditor/internal/locale"
	"github.com/treykane/markditor/internal/logging"
	"github.com/treykane/markditor/internal/platform"
	"github.com/treykane/markditor/internal/preference"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = ""

const logFileName = "markditor.log"

type options struct {
	configDir string
	workspace string
	logLevel  string
	logFile   string
	path      string
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("markditor", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.configDir, "config-dir", "", "directory holding config.json and preferences (default ~/.markditor)")
	fs.StringVar(&opts.workspace, "workspace", "", "folder to open in the side panel")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&opts.logFile, "log-file", "", "log destination (default <config-dir>/"+logFileName+")")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: markditor [flags] [FILE|FOLDER]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return options{}, errors.New("at most one path may be given")
	}
	opts.path = fs.Arg(0)
	return opts, nil
}

func run(opts options) error {
	dir := opts.configDir
	if dir == "" {
		d, err := config.DefaultDir()
		if err != nil {
			return err
		}
		dir = d
	} else {
		d, err := config.NormalizePath(dir)
		if err != nil {
			return fmt.Errorf("config dir: %w", err)
		}
		dir = d
	}

	closeLog, err := setupLogging(dir, opts)
	if err != nil {
		return err
	}
	defer closeLog()
	log := logging.New("main")

	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var m *app.Model
	hostLanguage := locale.Detect()
	tr := locale.NewTranslator(hostLanguage)
	prefs := preference.New(preference.Options{
		Storage:          preference.NewFileStorage(config.PrefStoragePath(dir)),
		MaxHistoryLength: cfg.HistoryLimit,
		LanguageCode:     hostLanguage,
		ChangeLanguage:   tr.SetLanguage,
		SyncTheme: func() {
			if m != nil {
				m.SyncTheme()
			}
		},
	})
	tr.SetLanguage(prefs.State().LanguageCode)

	docs := document.NewStore()
	dirs := directory.NewStore()
	teardown := prefs.InitDirectoryOpenListener(docs, dirs)
	defer teardown()

	bridge := app.NewPromptBridge()
	m = app.New(app.Deps{
		Prefs:       prefs,
		Documents:   docs,
		Directories: dirs,
		Platform:    platform.NewLocal(bridge, version),
		Prompts:     bridge,
		Translator:  tr,
		Config:      cfg,
		ConfigDir:   dir,
		Context:     ctx,
	})
	defer m.Close()

	if err := openStartupPaths(m, tr, opts, cfg, log); err != nil {
		return err
	}

	log.Info("starting", "version", version, "config_dir", dir)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// startupOpener is the part of the app model used to open startup paths.
type startupOpener interface {
	Open(path string) error
	SetStatus(status string)
}

// openStartupPaths opens the workspace folder and then the path argument.
// Paths given on the command line must open; a configured workspace that
// has gone missing only produces a warning.
func openStartupPaths(m startupOpener, tr *locale.Translator, opts options, cfg config.Config, log *slog.Logger) error {
	workspace, explicit := opts.workspace, true
	if workspace == "" {
		workspace, explicit = cfg.Workspace, false
	}
	if workspace != "" {
		err := openPath(m, workspace)
		switch {
		case err == nil:
		case explicit:
			return err
		default:
			log.Warn("configured workspace unavailable", "workspace", workspace, "error", err)
			m.SetStatus(tr.T(locale.MsgWorkspaceMissing, map[string]any{"Path": workspace}))
		}
	}
	if opts.path != "" {
		return openPath(m, opts.path)
	}
	return nil
}

func openPath(m startupOpener, path string) error {
	abs, err := config.NormalizePath(path)
	if err != nil {
		return err
	}
	return m.Open(abs)
}

// setupLogging applies the requested level and sends records to a file so
// they stay out of the terminal UI.
func setupLogging(dir string, opts options) (func(), error) {
	if opts.logLevel != "" {
		logging.SetLevel(logging.ParseLevel(opts.logLevel))
	}
	path := opts.logFile
	if path == "" {
		path = filepath.Join(dir, logFileName)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logging.SetOutput(f)
	return func() {
		logging.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}
