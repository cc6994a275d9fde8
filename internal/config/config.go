package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/treykane/markditor/internal/logging"
)

const (
	configDirName       = ".markditor"
	configFileName      = "config.json"
	prefStorageFileName = "markditor-pref-storage.json"
	keymapFileName      = "keymap.json"
)

// Panel and history bounds.
const (
	DefaultHistoryLimit = 10
	DefaultPanelSize    = 20
	MinPanelSize        = 15
	MaxPanelSize        = 45
)

var log = logging.New("config")

var (
	ErrInvalidPanelSize    = errors.New("panel_size out of range")
	ErrInvalidHistoryLimit = errors.New("history_limit must be positive")
)

// Config stores user-editable markditor settings that are not preferences
// (preferences live in the preference storage record).
type Config struct {
	HistoryLimit int    `json:"history_limit,omitempty"`
	PanelSize    int    `json:"panel_size,omitempty"`
	Workspace    string `json:"workspace,omitempty"`
	// Keybindings maps action names ("file.open") to a replacement key.
	Keybindings map[string]string `json:"keybindings,omitempty"`
	// KeymapFile is a JSON object of the same shape as Keybindings whose
	// entries win over the inline ones. Empty means keymap.json in the
	// config dir.
	KeymapFile string `json:"keymap_file,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		HistoryLimit: DefaultHistoryLimit,
		PanelSize:    DefaultPanelSize,
	}
}

// DefaultDir returns ~/.markditor.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, configDirName), nil
}

// ConfigPath returns the config file path inside dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, configFileName)
}

// PrefStoragePath returns the path of the persisted preference record.
func PrefStoragePath(dir string) string {
	return filepath.Join(dir, prefStorageFileName)
}

// KeymapPath returns the default keymap override file inside dir.
func KeymapPath(dir string) string {
	return filepath.Join(dir, keymapFileName)
}

// Load reads the config in dir. A missing file yields Default().
func Load(dir string) (Config, error) {
	cfg := Default()

	path := ConfigPath(dir)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save validates cfg and writes it to dir.
func Save(dir string, cfg Config) error {
	if err := cfg.normalize(); err != nil {
		return err
	}

	path := ConfigPath(dir)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	log.Info("saved config", "path", path)
	return nil
}

func (c *Config) normalize() error {
	if c.HistoryLimit == 0 {
		c.HistoryLimit = DefaultHistoryLimit
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidHistoryLimit, c.HistoryLimit)
	}
	if c.PanelSize == 0 {
		c.PanelSize = DefaultPanelSize
	}
	if c.PanelSize < MinPanelSize || c.PanelSize > MaxPanelSize {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidPanelSize, c.PanelSize, MinPanelSize, MaxPanelSize)
	}
	c.Workspace = strings.TrimSpace(c.Workspace)
	if c.Workspace != "" {
		ws, err := NormalizePath(c.Workspace)
		if err != nil {
			return fmt.Errorf("invalid workspace: %w", err)
		}
		c.Workspace = ws
	}
	c.KeymapFile = strings.TrimSpace(c.KeymapFile)
	if c.KeymapFile != "" {
		km, err := NormalizePath(c.KeymapFile)
		if err != nil {
			return fmt.Errorf("invalid keymap_file: %w", err)
		}
		c.KeymapFile = km
	}
	return nil
}

// NormalizePath expands a leading ~ and returns a clean absolute path.
func NormalizePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is required")
	}

	expanded, err := expandHome(trimmed)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", err
	}

	return filepath.Clean(abs), nil
}

func expandHome(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
	}
	return path, nil
}
