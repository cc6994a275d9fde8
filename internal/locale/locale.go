// Package locale detects the host locale and provides the translation layer
// whose language the preference store switches.
package locale

import (
	"os"
	"strings"

	golocale "github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"

	"github.com/treykane/markditor/internal/logging"
)

var log = logging.New("locale")

// Fallback is used when the host reports nothing usable.
const Fallback = "en-US"

// Detect returns the host locale as a BCP 47 tag such as "en-US".
func Detect() string {
	if code, err := golocale.GetLocale(); err == nil {
		if tag, ok := Normalize(code); ok {
			return tag
		}
	} else {
		log.Debug("query host locale", "error", err)
	}
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if tag, ok := Normalize(os.Getenv(key)); ok {
			return tag
		}
	}
	return Fallback
}

// Normalize converts POSIX and BCP 47 spellings ("en_US.UTF-8", "zh-cn",
// "pt_BR@euro") to a canonical tag. "C" and "POSIX" are not locales.
func Normalize(code string) (string, bool) {
	code = strings.TrimSpace(code)
	if i := strings.IndexAny(code, ".@"); i >= 0 {
		code = code[:i]
	}
	if code == "" || code == "C" || code == "POSIX" {
		return "", false
	}
	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return "", false
	}
	return tag.String(), true
}
