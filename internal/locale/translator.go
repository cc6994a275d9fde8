package locale

import (
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Translator localizes UI strings. SetLanguage is the hook the preference
// store calls when the user picks a language.
type Translator struct {
	bundle *i18n.Bundle

	mu        sync.RWMutex
	code      string
	localizer *i18n.Localizer
}

// NewTranslator returns a translator with the built-in catalogs, set to code.
func NewTranslator(code string) *Translator {
	bundle := i18n.NewBundle(language.English)
	for tag, messages := range catalogs {
		if err := bundle.AddMessages(tag, messages...); err != nil {
			log.Error("load catalog", "language", tag.String(), "error", err)
		}
	}
	t := &Translator{bundle: bundle}
	t.SetLanguage(code)
	return t
}

// Supported lists the languages with a catalog, in display order.
func Supported() []string {
	return []string{"en-US", "zh-CN"}
}

// SetLanguage switches the active catalog. Codes without a catalog fall back
// to English but are remembered as given.
func (t *Translator) SetLanguage(code string) {
	localizer := i18n.NewLocalizer(t.bundle, code, language.English.String())
	t.mu.Lock()
	t.code = code
	t.localizer = localizer
	t.mu.Unlock()
	log.Debug("switched language", "code", code)
}

// Language returns the code last passed to SetLanguage.
func (t *Translator) Language() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.code
}

// T localizes id with optional template data. Unknown ids are returned as-is.
func (t *Translator) T(id string, data ...map[string]any) string {
	t.mu.RLock()
	localizer := t.localizer
	t.mu.RUnlock()

	cfg := &i18n.LocalizeConfig{MessageID: id}
	if len(data) > 0 {
		cfg.TemplateData = data[0]
	}
	msg, err := localizer.Localize(cfg)
	if msg == "" {
		if err != nil {
			log.Debug("missing translation", "id", id, "error", err)
		}
		return id
	}
	return msg
}

// Next returns the supported language after code, wrapping around.
func Next(code string) string {
	langs := Supported()
	for i, l := range langs {
		if l == code {
			return langs[(i+1)%len(langs)]
		}
	}
	return langs[0]
}
