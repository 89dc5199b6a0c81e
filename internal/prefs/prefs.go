// Package prefs is a read-through cache over the two persisted settings:
// the UI language and the theme mode.
package prefs

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/sadopc/taskflow/internal/signal"
)

const (
	KeyLocale    = "app_locale"
	KeyThemeMode = "themeMode"

	NamespaceLocale = "locale_prefs"
	NamespaceTheme  = "theme_prefs"
)

// ErrStorageUnavailable wraps KV failures. It is logged, never returned.
var ErrStorageUnavailable = errors.New("preference storage unavailable")

// KV is the durable key-value collaborator.
type KV interface {
	GetSetting(namespace, key string) (string, bool, error)
	SetSetting(namespace, key, value string) error
}

type Store struct {
	kv  KV
	log *log.Logger

	mu     sync.Mutex // serialises write-through
	locale *signal.State[Locale]
	theme  *signal.State[ThemeMode]
}

// New loads both settings from kv once. Missing or unreadable values fall
// back to the defaults.
func New(kv KV, logger *log.Logger) *Store {
	s := &Store{kv: kv, log: logger}

	loc := DefaultLocale
	if v, ok := s.read(NamespaceLocale, KeyLocale); ok {
		if parsed, valid := ParseLocale(v); valid {
			loc = parsed
		} else {
			s.log.Warn("ignoring stored locale", "value", v)
		}
	}
	mode := DefaultThemeMode
	if v, ok := s.read(NamespaceTheme, KeyThemeMode); ok {
		if parsed, valid := ParseThemeMode(v); valid {
			mode = parsed
		} else {
			s.log.Warn("ignoring stored theme mode", "value", v)
		}
	}

	s.locale = signal.New(loc)
	s.theme = signal.New(mode)
	return s
}

func (s *Store) read(namespace, key string) (string, bool) {
	v, ok, err := s.kv.GetSetting(namespace, key)
	if err != nil {
		s.log.Warn("preference read failed, using default",
			"key", key, "error", fmt.Errorf("%w: %w", ErrStorageUnavailable, err))
		return "", false
	}
	return v, ok
}

func (s *Store) write(namespace, key, value string) {
	if err := s.kv.SetSetting(namespace, key, value); err != nil {
		s.log.Warn("preference write failed, keeping in-memory value",
			"key", key, "value", value, "error", fmt.Errorf("%w: %w", ErrStorageUnavailable, err))
		return
	}
	s.log.Debug("preference saved", "key", key, "value", value)
}

// Get returns the cached value of key, or "" for unknown keys.
func (s *Store) Get(key string) string {
	switch key {
	case KeyLocale:
		return string(s.Locale())
	case KeyThemeMode:
		return string(s.ThemeMode())
	}
	return ""
}

// Set validates value and writes it through. Invalid input is logged and
// dropped.
func (s *Store) Set(key, value string) {
	switch key {
	case KeyLocale:
		loc, ok := ParseLocale(value)
		if !ok {
			s.log.Warn("unsupported locale", "value", value)
			return
		}
		s.SetLocale(loc)
	case KeyThemeMode:
		mode, ok := ParseThemeMode(value)
		if !ok {
			s.log.Warn("unsupported theme mode", "value", value)
			return
		}
		s.SetThemeMode(mode)
	default:
		s.log.Warn("unknown preference key", "key", key)
	}
}

// Keys lists the supported preference keys.
func Keys() []string {
	return []string{KeyLocale, KeyThemeMode}
}

func (s *Store) Locale() Locale {
	return s.locale.Get()
}

func (s *Store) SetLocale(l Locale) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.write(NamespaceLocale, KeyLocale, string(l))
	s.locale.Set(l)
}

func (s *Store) ThemeMode() ThemeMode {
	return s.theme.Get()
}

func (s *Store) SetThemeMode(m ThemeMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.write(NamespaceTheme, KeyThemeMode, string(m))
	s.theme.Set(m)
}

// IsDark resolves the effective theme. systemDark is what the terminal reports.
func (s *Store) IsDark(systemDark bool) bool {
	return s.ThemeMode().IsDark(systemDark)
}

// ToggleTheme switches to the explicit opposite of the effective theme.
func (s *Store) ToggleTheme(systemDark bool) {
	if s.IsDark(systemDark) {
		s.SetThemeMode(ThemeLight)
	} else {
		s.SetThemeMode(ThemeDark)
	}
}

func (s *Store) SubscribeLocale(fn func(Locale)) func() {
	return s.locale.Subscribe(fn)
}

func (s *Store) SubscribeTheme(fn func(ThemeMode)) func() {
	return s.theme.Subscribe(fn)
}
