package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskflow/internal/core"
	"github.com/sadopc/taskflow/internal/nav"
)

// profileModel edits the signed-in user's display name.
type profileModel struct {
	core   *core.App
	width  int
	height int

	form *huh.Form
	name *string
}

func newProfileModel(c *core.App) profileModel {
	name := ""
	return profileModel{core: c, name: &name}
}

func (p *profileModel) setSize(w, h int) {
	p.width = w
	p.height = h
}

func (p profileModel) reset() (profileModel, tea.Cmd) {
	t := p.core.I18n.T
	*p.name = p.core.CurrentUser().DisplayName

	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title(t("DisplayName")).Value(p.name).Validate(notBlank),
		).Title(t("ProfileInformation")),
	).WithShowHelp(true).WithShowErrors(true)

	return p, p.form.Init()
}

func (p profileModel) update(msg tea.Msg) (profileModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, keys.Back) {
		p.core.Nav.Back()
		return p, nil
	}
	if p.form == nil {
		return p, nil
	}

	form, cmd := p.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		p.form = f
	}

	if p.form.State == huh.StateCompleted {
		p.form = nil
		if err := p.core.Session.UpdateProfile(*p.name); err != nil {
			return p, func() tea.Msg { return errStatus("update profile", err) }
		}
		p.core.Nav.Close(nav.ProfileEdit)
		return p, func() tea.Msg { return statusMsg{text: "Profile updated"} }
	}
	return p, cmd
}

func (p profileModel) view() string {
	t := p.core.I18n.T
	body := mutedStyle.Render("-")
	if p.form != nil {
		body = p.form.View()
	}
	user := p.core.CurrentUser()
	return panelStyle.Width(p.width - 4).Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(t("Profile")),
		mutedStyle.Render(user.Email),
		"",
		body,
	))
}
