package preference

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// EnvColorScheme lets the host (or a user) force the system signal.
const EnvColorScheme = "MARKDITOR_COLOR_SCHEME"

// ColorScheme is the host light/dark signal.
type ColorScheme interface {
	PrefersDark() bool
}

// ColorSchemeFunc adapts a function to ColorScheme.
type ColorSchemeFunc func() bool

// PrefersDark implements ColorScheme.
func (f ColorSchemeFunc) PrefersDark() bool { return f() }

// ColorSchemeDetector is one source of the host signal.
type ColorSchemeDetector interface {
	Name() string
	// Priority orders detectors; higher is consulted first.
	Priority() int
	// Detect returns the preference and whether detection succeeded.
	Detect() (prefersDark bool, ok bool)
}

// ColorSchemeResolver asks its detectors in priority order on every call and
// falls back to dark when none answers.
type ColorSchemeResolver struct {
	detectors []ColorSchemeDetector
}

// NewColorSchemeResolver returns a resolver over detectors.
func NewColorSchemeResolver(detectors ...ColorSchemeDetector) *ColorSchemeResolver {
	r := &ColorSchemeResolver{}
	for _, d := range detectors {
		r.Register(d)
	}
	return r
}

// Register adds a detector.
func (r *ColorSchemeResolver) Register(d ColorSchemeDetector) {
	r.detectors = append(r.detectors, d)
	sort.SliceStable(r.detectors, func(i, j int) bool {
		return r.detectors[i].Priority() > r.detectors[j].Priority()
	})
}

// PrefersDark implements ColorScheme.
func (r *ColorSchemeResolver) PrefersDark() bool {
	for _, d := range r.detectors {
		if dark, ok := d.Detect(); ok {
			return dark
		}
	}
	return true
}

// DefaultColorScheme checks MARKDITOR_COLOR_SCHEME, then COLORFGBG, then the
// terminal background reported through lipgloss.
func DefaultColorScheme() *ColorSchemeResolver {
	return NewColorSchemeResolver(
		EnvDetector{Key: EnvColorScheme},
		ColorFGBGDetector{},
		TerminalDetector{},
	)
}

// EnvDetector reads "dark" or "light" from an environment variable.
type EnvDetector struct {
	Key string
}

func (EnvDetector) Name() string  { return "env" }
func (EnvDetector) Priority() int { return 100 }

func (d EnvDetector) Detect() (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(d.Key))) {
	case "dark":
		return true, true
	case "light":
		return false, true
	}
	return false, false
}

// ColorFGBGDetector parses the COLORFGBG variable set by rxvt, Konsole and
// friends ("fg;bg" with ANSI indices; bg 0-6 and 8 are dark).
type ColorFGBGDetector struct{}

func (ColorFGBGDetector) Name() string  { return "colorfgbg" }
func (ColorFGBGDetector) Priority() int { return 50 }

func (ColorFGBGDetector) Detect() (bool, bool) {
	value := os.Getenv("COLORFGBG")
	if value == "" {
		return false, false
	}
	parts := strings.Split(value, ";")
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return false, false
	}
	return bg <= 6 || bg == 8, true
}

// TerminalDetector asks the terminal for its background color. The answer
// is cached by lipgloss after the first query.
type TerminalDetector struct{}

func (TerminalDetector) Name() string  { return "terminal" }
func (TerminalDetector) Priority() int { return 10 }

func (TerminalDetector) Detect() (bool, bool) {
	return lipgloss.HasDarkBackground(), true
}
