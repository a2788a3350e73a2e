// Package i18n loads the embedded message catalogs into gotext.
//
// Game code looks messages up by key with gotext.Get. A key without a
// translation comes back unchanged.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when no catalog exists for the requested language.
const DefaultLanguage = "en"

const domain = "default"

//go:embed locales
var locales embed.FS

// Load installs the catalog for lang as gotext's global storage, falling back
// to DefaultLanguage.
func Load(lang string) error {
	data, err := fs.ReadFile(locales, catalogPath(lang))
	if err != nil {
		lang = DefaultLanguage
		data, err = fs.ReadFile(locales, catalogPath(lang))
		if err != nil {
			return fmt.Errorf("read %s catalog: %w", lang, err)
		}
	}

	po := gotext.NewPo()
	po.Parse(data)

	l := gotext.NewLocale("locales", lang)
	l.AddTranslator(domain, po)
	gotext.SetStorage(l)
	return nil
}

// Languages lists the languages with an embedded catalog.
func Languages() []string {
	entries, err := fs.ReadDir(locales, "locales")
	if err != nil {
		return nil
	}
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			langs = append(langs, e.Name())
		}
	}
	return langs
}

func catalogPath(lang string) string {
	return "locales/" + lang + "/" + domain + ".po"
}
