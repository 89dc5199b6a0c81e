package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskflow/internal/auth"
	"github.com/sadopc/taskflow/internal/core"
)

// authMessageKeys localizes the validation messages of auth.MockProvider.
// Anything else is shown as reported.
var authMessageKeys = map[string]string{
	auth.MsgEmptyCredentials: "AuthEmptyCredentials",
	auth.MsgPasswordTooShort: "AuthPasswordTooShort",
	auth.MsgInvalidEmail:     "AuthInvalidEmail",
}

func localizeAuthError(t func(string) string, msg string) string {
	if k, ok := authMessageKeys[msg]; ok {
		return t(k)
	}
	return msg
}

// loginModel drives both the login and the sign-up screen.
type loginModel struct {
	core   *core.App
	width  int
	height int

	signUp  bool
	loading bool
	form    *huh.Form
	spinner spinner.Model

	// Form values as pointers (survive value copies)
	email    *string
	password *string
}

func newLoginModel(c *core.App) loginModel {
	email, password := "", ""
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return loginModel{
		core:     c,
		spinner:  sp,
		email:    &email,
		password: &password,
	}
}

func (l *loginModel) setSize(w, h int) {
	l.width = w
	l.height = h
}

// reset rebuilds the form for the given mode. The email survives so a typo in
// the password does not cost the whole entry.
func (l loginModel) reset(signUp bool) (loginModel, tea.Cmd) {
	t := l.core.I18n.T
	l.signUp = signUp
	l.loading = false
	*l.password = ""

	l.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title(t("Email")).Value(l.email),
			huh.NewInput().Title(t("Password")).EchoMode(huh.EchoModePassword).Value(l.password),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return l, l.form.Init()
}

func (l loginModel) update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		if msg.err != nil && !errors.Is(msg.err, auth.ErrInProgress) {
			l.core.Log.Warn("auth call ended", "err", msg.err)
		}
		if msg.state.IsAuthenticated {
			l.loading = false
			*l.password = ""
			return l, nil
		}
		return l.reset(l.signUp)

	case spinner.TickMsg:
		if !l.loading {
			return l, nil
		}
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(msg)
		return l, cmd

	case tea.KeyMsg:
		if l.loading {
			return l, nil
		}
		switch {
		case !l.signUp && key.Matches(msg, keys.SwitchSignUp):
			l.core.Session.ClearError()
			l.core.Nav.ShowSignUp()
			return l, nil
		case key.Matches(msg, keys.Back):
			if l.core.Nav.Back() {
				l.core.Session.ClearError()
			}
			return l, nil
		}
	}

	if l.form == nil || l.loading {
		return l, nil
	}

	form, cmd := l.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		l.form = f
	}

	switch l.form.State {
	case huh.StateCompleted:
		l.loading = true
		return l, tea.Batch(l.spinner.Tick, l.authenticate())
	case huh.StateAborted:
		return l.reset(l.signUp)
	}
	return l, cmd
}

// authenticate runs the blocking provider call off the UI goroutine.
func (l loginModel) authenticate() tea.Cmd {
	session := l.core.Session
	email, password, signUp := *l.email, *l.password, l.signUp
	return func() tea.Msg {
		ctx := context.Background()
		var (
			st  auth.SessionState
			err error
		)
		if signUp {
			st, err = session.SignUp(ctx, email, password)
		} else {
			st, err = session.SignIn(ctx, email, password)
		}
		return authDoneMsg{state: st, err: err}
	}
}

func (l loginModel) view() string {
	t := l.core.I18n.T
	w := min(l.width-4, 60)

	heading := t("Login")
	hint := mutedStyle.Render(keys.SwitchSignUp.Help().Key + ": " + t("NoAccount"))
	if l.signUp {
		heading = t("SignUp")
		hint = mutedStyle.Render(keys.Back.Help().Key + ": " + t("HaveAccount"))
	}

	rows := []string{
		lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("TaskFlow"),
		subtitleStyle.Render(t("Welcome")),
		"",
		titleStyle.Render(heading),
		"",
	}

	if l.loading {
		label := t("SigningIn")
		if l.signUp {
			label = t("SigningUp")
		}
		rows = append(rows, l.spinner.View()+" "+label)
	} else if l.form != nil {
		rows = append(rows, l.form.View())
	}

	if msg := l.core.Session.State().ErrorMessage; msg != "" {
		rows = append(rows, "", errorStyle.Render(localizeAuthError(t, msg)))
	}
	rows = append(rows, "", hint)

	panel := activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return lipgloss.Place(l.width, l.height, lipgloss.Center, lipgloss.Center, panel)
}
