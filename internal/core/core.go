// Package core builds the application state graph: preferences, session,
// repository, navigation and localisation, wired together once at startup.
package core

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/sadopc/taskflow/internal/auth"
	"github.com/sadopc/taskflow/internal/config"
	"github.com/sadopc/taskflow/internal/i18n"
	"github.com/sadopc/taskflow/internal/logger"
	"github.com/sadopc/taskflow/internal/model"
	"github.com/sadopc/taskflow/internal/nav"
	"github.com/sadopc/taskflow/internal/prefs"
	"github.com/sadopc/taskflow/internal/repo"
	"github.com/sadopc/taskflow/internal/signal"
	"github.com/sadopc/taskflow/internal/store"
)

type Options struct {
	KV          prefs.KV
	Provider    auth.Provider
	Logger      *log.Logger
	SeedSamples bool
	RepoOptions []repo.Option
}

type App struct {
	Log           *log.Logger
	Prefs         *prefs.Store
	Session       *auth.Session
	Repo          *repo.Repository
	Nav           *nav.Controller
	I18n          *i18n.Localizer
	Notifications *signal.State[model.NotificationSettings]

	closer io.Closer
	unsubs []func()
}

func New(opts Options) *App {
	lg := opts.Logger
	if lg == nil {
		lg = logger.Discard()
	}
	ropts := opts.RepoOptions
	if opts.SeedSamples {
		ropts = append(ropts, repo.WithSamples())
	}

	p := prefs.New(opts.KV, lg.WithPrefix("prefs"))
	a := &App{
		Log:           lg,
		Prefs:         p,
		Session:       auth.NewSession(opts.Provider, lg.WithPrefix("auth")),
		Repo:          repo.New(lg.WithPrefix("repo"), ropts...),
		Nav:           nav.New(),
		I18n:          i18n.New(p),
		Notifications: signal.New(model.DefaultNotificationSettings()),
	}
	a.wire()
	return a
}

// Open builds an App backed by the SQLite store at cfg.DBPath and the mock
// provider with the configured delays.
func Open(cfg *config.Config, lg *log.Logger) (*App, error) {
	st, err := store.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	a := New(Options{
		KV:          st,
		Provider:    auth.NewMockProvider(cfg.SignInDelay, cfg.SignUpDelay),
		Logger:      lg,
		SeedSamples: cfg.SeedSamples,
	})
	a.closer = st
	return a, nil
}

// wire routes session transitions to navigation: signing in enters the main
// tabs, signing out returns to login.
func (a *App) wire() {
	var authed atomic.Bool
	a.unsubs = append(a.unsubs, a.Session.Subscribe(func(s auth.SessionState) {
		was := authed.Swap(s.IsAuthenticated)
		switch {
		case s.IsAuthenticated && !was:
			a.Log.Info("signed in", "user", s.User.ID)
			a.Nav.EnterMain()
		case !s.IsAuthenticated && was:
			a.Log.Info("signed out")
			a.Nav.ShowLogin()
		}
	}))
	a.unsubs = append(a.unsubs, a.Prefs.SubscribeLocale(func(l prefs.Locale) {
		a.Log.Debug("locale changed", "locale", l)
	}))
}

// CurrentUser is the signed-in user, or the zero User.
func (a *App) CurrentUser() model.User {
	if u := a.Session.State().User; u != nil {
		return *u
	}
	return model.User{}
}

func (a *App) Close() error {
	for _, u := range a.unsubs {
		u()
	}
	a.unsubs = nil
	if a.closer != nil {
		return a.closer.Close()
	}
	return nil
}
