package core

import (
	"context"
	"testing"

	"github.com/sadopc/taskflow/internal/auth"
	"github.com/sadopc/taskflow/internal/config"
	"github.com/sadopc/taskflow/internal/nav"
	"github.com/sadopc/taskflow/internal/prefs"
	"github.com/sadopc/taskflow/internal/repo"
	"github.com/sadopc/taskflow/internal/store"
)

func newTestApp(t *testing.T, seed bool) *App {
	t.Helper()
	st, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	a := New(Options{
		KV:          st,
		Provider:    auth.NewMockProvider(0, 0),
		SeedSamples: seed,
	})
	t.Cleanup(func() { a.Close() })
	return a
}

func TestSignInEntersMain(t *testing.T) {
	a := newTestApp(t, false)
	if a.Nav.Current() != nav.ScreenLogin {
		t.Fatalf("initial screen = %v", a.Nav.Current())
	}
	if _, err := a.Session.SignIn(context.Background(), "ada@example.com", "secret"); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if a.Nav.Current() != nav.ScreenProjects {
		t.Fatalf("screen after sign in = %v", a.Nav.Current())
	}
	if a.CurrentUser().DisplayName != "ada" {
		t.Fatalf("user = %+v", a.CurrentUser())
	}
}

func TestFailedSignInStaysOnLogin(t *testing.T) {
	a := newTestApp(t, false)
	a.Session.SignIn(context.Background(), "", "")
	if a.Nav.Current() != nav.ScreenLogin {
		t.Fatalf("screen = %v", a.Nav.Current())
	}
	if a.Session.State().ErrorMessage == "" {
		t.Fatal("expected an error message")
	}
}

func TestSignOutReturnsToLogin(t *testing.T) {
	a := newTestApp(t, false)
	a.Session.SignIn(context.Background(), "ada@example.com", "secret")
	a.Nav.SelectTab(nav.TabSettings)
	a.Nav.Open(nav.ProfileEdit)

	a.Session.SignOut()
	if a.Nav.Current() != nav.ScreenLogin {
		t.Fatalf("screen = %v", a.Nav.Current())
	}
	if s := a.Nav.State(); s.Open != 0 || s.Tab != nav.TabProjects {
		t.Fatalf("main state not reset: %+v", s)
	}
	if a.CurrentUser().ID != "" {
		t.Fatal("user should be cleared")
	}
}

func TestLocalizerFollowsPrefs(t *testing.T) {
	a := newTestApp(t, false)
	if a.I18n.T("Settings") != "Ayarlar" {
		t.Fatalf("default T = %q", a.I18n.T("Settings"))
	}
	a.Prefs.SetLocale(prefs.LocaleEN)
	if a.I18n.T("Settings") != "Settings" {
		t.Fatalf("english T = %q", a.I18n.T("Settings"))
	}
}

func TestSeedSamples(t *testing.T) {
	if n := len(newTestApp(t, true).Repo.List(repo.Query{})); n != 6 {
		t.Fatalf("seeded %d projects, want 6", n)
	}
	if n := len(newTestApp(t, false).Repo.List(repo.Query{})); n != 0 {
		t.Fatalf("unseeded repo has %d projects", n)
	}
}

func TestOpenUsesConfiguredDB(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DBPath = t.TempDir() + "/taskflow.db"
	cfg.SeedSamples = false

	a, err := Open(cfg, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	a.Prefs.SetThemeMode(prefs.ThemeDark)
	if err := a.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	b, err := Open(cfg, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer b.Close()
	if b.Prefs.ThemeMode() != prefs.ThemeDark {
		t.Fatalf("theme = %v, want dark", b.Prefs.ThemeMode())
	}
}
