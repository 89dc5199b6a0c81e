// Package i18n maps UI keys to Turkish or English strings.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/sadopc/taskflow/internal/prefs"
)

var tags = map[prefs.Locale]language.Tag{
	prefs.LocaleTR: language.Turkish,
	prefs.LocaleEN: language.English,
}

var messages = build()

// build loads the string tables into an x/text catalog. Keys missing from a
// locale are filled from the Turkish table.
func build() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.Turkish))
	base := catalogs[prefs.DefaultLocale]
	for loc, tag := range tags {
		for key, def := range base {
			msg, ok := catalogs[loc][key]
			if !ok {
				msg = def
			}
			if err := b.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("i18n: %s/%s: %v", loc, key, err))
			}
		}
	}
	return b
}

// LocaleSource reports the active locale. *prefs.Store satisfies it.
type LocaleSource interface {
	Locale() prefs.Locale
}

type Localizer struct {
	src LocaleSource
}

func New(src LocaleSource) *Localizer {
	return &Localizer{src: src}
}

// T returns the string for key in the current locale, or key itself when the
// catalog has no entry.
func (l *Localizer) T(key string) string {
	return Lookup(l.src.Locale(), key)
}

func (l *Localizer) Locale() prefs.Locale {
	return l.src.Locale()
}

// Lookup resolves key without a Localizer. Unknown locales use Turkish.
// Keys are plain identifiers, so an unknown key prints as itself.
func Lookup(loc prefs.Locale, key string) string {
	tag, ok := tags[loc]
	if !ok {
		tag = tags[prefs.DefaultLocale]
	}
	return message.NewPrinter(tag, message.Catalog(messages)).Sprintf(key)
}
