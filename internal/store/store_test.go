package store

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// ============================================================
// Store initialization
// ============================================================

func TestNewMemory(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	version, err := s.version()
	if err != nil {
		t.Fatal(err)
	}
	if version != len(migrations) {
		t.Fatalf("expected user_version %d, got %d", len(migrations), version)
	}
}

func TestNewWithPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "taskflow.db")
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetSetting("locale_prefs", "app_locale", "en"); err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopen: should not re-migrate and must keep the row.
	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()
	v, ok, err := s2.GetSetting("locale_prefs", "app_locale")
	if err != nil || !ok || v != "en" {
		t.Fatalf("after reopen: v=%q ok=%v err=%v", v, ok, err)
	}
}

func TestNewerSchemaRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskflow.db")
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.db.Exec("PRAGMA user_version = 99"); err != nil {
		t.Fatal(err)
	}
	s.Close()

	if _, err := New(path); err == nil {
		t.Fatal("expected error opening a database from a newer build")
	}
}

func TestDefaultDBPath(t *testing.T) {
	path, err := DefaultDBPath()
	if err != nil {
		t.Skipf("no user config dir: %v", err)
	}
	if filepath.Base(path) != "taskflow.db" {
		t.Fatalf("unexpected path %q", path)
	}
}

func TestMigrationIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.migrate(); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}
}

// ============================================================
// Settings
// ============================================================

func TestGetSettingMissing(t *testing.T) {
	s := newTestStore(t)
	v, ok, err := s.GetSetting("theme_prefs", "themeMode")
	if err != nil {
		t.Fatal(err)
	}
	if ok || v != "" {
		t.Fatalf("expected missing setting, got %q ok=%v", v, ok)
	}
}

func TestSetAndGetSetting(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetSetting("theme_prefs", "themeMode", "dark"); err != nil {
		t.Fatal(err)
	}
	v, ok, err := s.GetSetting("theme_prefs", "themeMode")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if v != "dark" {
		t.Fatalf("expected dark, got %q", v)
	}
}

func TestSetSettingUpsert(t *testing.T) {
	s := newTestStore(t)
	s.SetSetting("theme_prefs", "themeMode", "dark")
	s.SetSetting("theme_prefs", "themeMode", "light")

	v, _, _ := s.GetSetting("theme_prefs", "themeMode")
	if v != "light" {
		t.Fatalf("expected light after upsert, got %q", v)
	}

	all, err := s.ListSettings()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 row, got %d", len(all))
	}
}

func TestSettingsNamespaced(t *testing.T) {
	s := newTestStore(t)
	s.SetSetting("locale_prefs", "value", "tr")
	s.SetSetting("theme_prefs", "value", "dark")

	a, _, _ := s.GetSetting("locale_prefs", "value")
	b, _, _ := s.GetSetting("theme_prefs", "value")
	if a != "tr" || b != "dark" {
		t.Fatalf("namespaces leaked: %q %q", a, b)
	}
}

func TestListSettingsOrder(t *testing.T) {
	s := newTestStore(t)
	s.SetSetting("theme_prefs", "themeMode", "dark")
	s.SetSetting("locale_prefs", "app_locale", "en")

	all, err := s.ListSettings()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 settings, got %d", len(all))
	}
	if all[0].Namespace != "locale_prefs" || all[1].Namespace != "theme_prefs" {
		t.Fatalf("unexpected order: %+v", all)
	}
}

func TestSetSettingAfterClose(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	s.Close()
	if err := s.SetSetting("theme_prefs", "themeMode", "dark"); err == nil {
		t.Fatal("expected error writing to a closed store")
	}
	if _, _, err := s.GetSetting("theme_prefs", "themeMode"); err == nil {
		t.Fatal("expected error reading from a closed store")
	}
}
