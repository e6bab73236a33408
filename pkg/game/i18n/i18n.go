// Package i18n holds the message catalogue. Catalogues are gettext .po files
// embedded in the binary, one per language, keyed by the English format string.
package i18n

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when no language is configured
const DefaultLanguage = "en"

const domain = "default"

//go:embed locales/*.po
var locales embed.FS

var current *gotext.Locale

// Setup loads the catalogue for lang and makes it the active one
func Setup(lang string) error {
	if lang == "" {
		lang = DefaultLanguage
	}
	data, err := locales.ReadFile("locales/" + lang + ".po")
	if err != nil {
		return fmt.Errorf("no catalogue for language %q (have %s)", lang, strings.Join(Languages(), ", "))
	}

	po := gotext.NewPo()
	po.Parse(data)

	loc := gotext.NewLocale("", lang)
	loc.AddTranslator(domain, po)
	current = loc
	return nil
}

// Languages lists the embedded catalogues
func Languages() []string {
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil
	}
	var langs []string
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(e.Name(), ".po"))
	}
	sort.Strings(langs)
	return langs
}

// T translates the format string and formats it with args.
// Before Setup, or for untranslated strings, format itself is used.
func T(format string, args ...any) string {
	if current == nil {
		return gotext.Get(format, args...)
	}
	return current.Get(format, args...)
}
