package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskflow/internal/core"
	"github.com/sadopc/taskflow/internal/nav"
	"github.com/sadopc/taskflow/internal/prefs"
)

var localeKeys = map[prefs.Locale]string{
	prefs.LocaleTR: "Turkish",
	prefs.LocaleEN: "English",
}

var themeKeys = map[prefs.ThemeMode]string{
	prefs.ThemeSystem: "ThemeSystem",
	prefs.ThemeLight:  "ThemeLight",
	prefs.ThemeDark:   "ThemeDark",
}

type settingsModel struct {
	core       *core.App
	systemDark bool
	width      int
	height     int

	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	locale *prefs.Locale
	theme  *prefs.ThemeMode
}

func newSettingsModel(c *core.App, systemDark bool) settingsModel {
	loc, theme := prefs.DefaultLocale, prefs.DefaultThemeMode
	return settingsModel{
		core:       c,
		systemDark: systemDark,
		locale:     &loc,
		theme:      &theme,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s settingsModel) capturing() bool { return s.formActive }

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Enter):
			return s.showForm()
		case key.Matches(msg, keys.Profile):
			s.core.Nav.Open(nav.ProfileEdit)
		case key.Matches(msg, keys.Notify):
			s.core.Nav.Open(nav.NotificationSettings)
		case key.Matches(msg, keys.Theme):
			s.core.Prefs.ToggleTheme(s.systemDark)
		case key.Matches(msg, keys.SignOut):
			s.core.Session.SignOut()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	t := s.core.I18n.T
	*s.locale = s.core.Prefs.Locale()
	*s.theme = s.core.Prefs.ThemeMode()

	var locOpts []huh.Option[prefs.Locale]
	for _, l := range prefs.Locales() {
		locOpts = append(locOpts, huh.NewOption(t(localeKeys[l]), l))
	}
	var themeOpts []huh.Option[prefs.ThemeMode]
	for _, m := range prefs.ThemeModes() {
		themeOpts = append(themeOpts, huh.NewOption(t(themeKeys[m]), m))
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[prefs.Locale]().Title(t("Language")).Options(locOpts...).Value(s.locale),
			huh.NewSelect[prefs.ThemeMode]().Title(t("Theme")).Options(themeOpts...).Value(s.theme),
		).Title(t("AppSettings")),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		s.form = nil
		s.core.Prefs.SetLocale(*s.locale)
		s.core.Prefs.SetThemeMode(*s.theme)
		return s, nil
	}

	return s, cmd
}

func (s settingsModel) view() string {
	t := s.core.I18n.T
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := titleStyle.Render(t("Settings"))
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
		)
	}

	row := func(label, value string) string {
		l := lipgloss.NewStyle().Width(24).Render(label)
		return fmt.Sprintf("  %s %s", l, highlightStyle.Render(value))
	}

	mode := s.core.Prefs.ThemeMode()
	themeVal := t(themeKeys[mode])
	if mode == prefs.ThemeSystem {
		effective := "ThemeLight"
		if s.core.Prefs.IsDark(s.systemDark) {
			effective = "ThemeDark"
		}
		themeVal += " (" + t(effective) + ")"
	}

	user := s.core.CurrentUser()
	ns := s.core.Notifications.Get()

	rows := []string{
		titleStyle.Render(t("AppSettings")),
		"",
		row(t("Language"), t(localeKeys[s.core.Prefs.Locale()])),
		row(t("Theme"), themeVal),
		"",
		titleStyle.Render(t("ProfileInformation")),
		"",
		row(t("DisplayName"), user.DisplayName),
		row(t("Email"), user.Email),
		"",
		titleStyle.Render(t("NotificationSettings")),
		"",
		row(t("Notifications"), t(notifyKeys[ns.Preference])),
		row(t("Sound"), t(soundKeys[ns.Sound])),
		"",
		mutedStyle.Render(fmt.Sprintf("enter: %s  p: %s  o: %s  t: %s  s: %s",
			t("Edit"), t("Profile"), t("NotificationSettings"), t("DarkMode"), t("SignOut"))),
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
