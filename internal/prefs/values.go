package prefs

import (
	"strings"

	"golang.org/x/text/language"
)

type Locale string

const (
	LocaleTR Locale = "tr"
	LocaleEN Locale = "en"

	DefaultLocale = LocaleTR
)

var (
	supportedTags = []language.Tag{language.Turkish, language.English}
	localeMatcher = language.NewMatcher(supportedTags)
)

// ParseLocale accepts any BCP 47 tag whose base language is supported
// ("en-US" -> en). ok is false for everything else.
func ParseLocale(s string) (Locale, bool) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	_, idx, conf := localeMatcher.Match(tag)
	if conf < language.High {
		return "", false
	}
	base, _ := supportedTags[idx].Base()
	return Locale(base.String()), true
}

// Locales lists the supported locales in display order.
func Locales() []Locale {
	return []Locale{LocaleTR, LocaleEN}
}

type ThemeMode string

const (
	ThemeSystem ThemeMode = "system"
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"

	DefaultThemeMode = ThemeSystem
)

func ParseThemeMode(s string) (ThemeMode, bool) {
	switch m := ThemeMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ThemeSystem, ThemeLight, ThemeDark:
		return m, true
	}
	return "", false
}

func ThemeModes() []ThemeMode {
	return []ThemeMode{ThemeSystem, ThemeLight, ThemeDark}
}

func (m ThemeMode) IsDark(systemDark bool) bool {
	switch m {
	case ThemeLight:
		return false
	case ThemeDark:
		return true
	default:
		return systemDark
	}
}
