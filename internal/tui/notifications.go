package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskflow/internal/core"
	"github.com/sadopc/taskflow/internal/model"
	"github.com/sadopc/taskflow/internal/nav"
)

var notifyKeys = map[model.NotificationPreference]string{
	model.NotifyAll:      "NotifyAll",
	model.NotifyMentions: "NotifyMentions",
	model.NotifyNone:     "NotifyNone",
}

var soundKeys = map[model.NotificationSound]string{
	model.SoundRingVibrate: "SoundRingVibrate",
	model.SoundVibrateOnly: "SoundVibrateOnly",
}

// notificationsView renders the Notifications tab. There is no notification
// feed, so it only shows the empty state.
func notificationsView(c *core.App, width int) string {
	t := c.I18n.T
	return panelStyle.Width(width - 4).Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(t("Notifications")),
		"",
		mutedStyle.Render(t("NoNotificationsMessage")),
	))
}

type notifySettingsModel struct {
	core   *core.App
	width  int
	height int

	form  *huh.Form
	pref  *model.NotificationPreference
	sound *model.NotificationSound
}

func newNotifySettingsModel(c *core.App) notifySettingsModel {
	ns := model.DefaultNotificationSettings()
	return notifySettingsModel{core: c, pref: &ns.Preference, sound: &ns.Sound}
}

func (n *notifySettingsModel) setSize(w, h int) {
	n.width = w
	n.height = h
}

func (n notifySettingsModel) reset() (notifySettingsModel, tea.Cmd) {
	t := n.core.I18n.T
	cur := n.core.Notifications.Get()
	*n.pref = cur.Preference
	*n.sound = cur.Sound

	n.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[model.NotificationPreference]().Title(t("Notifications")).
				Options(
					huh.NewOption(t("NotifyAll"), model.NotifyAll),
					huh.NewOption(t("NotifyMentions"), model.NotifyMentions),
					huh.NewOption(t("NotifyNone"), model.NotifyNone),
				).Value(n.pref),
			huh.NewSelect[model.NotificationSound]().Title(t("Sound")).
				Options(
					huh.NewOption(t("SoundRingVibrate"), model.SoundRingVibrate),
					huh.NewOption(t("SoundVibrateOnly"), model.SoundVibrateOnly),
				).Value(n.sound),
		).Title(t("NotificationSettings")),
	).WithShowHelp(true).WithShowErrors(true)

	return n, n.form.Init()
}

func (n notifySettingsModel) update(msg tea.Msg) (notifySettingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, keys.Back) {
		n.core.Nav.Back()
		return n, nil
	}
	if n.form == nil {
		return n, nil
	}

	form, cmd := n.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		n.form = f
	}

	if n.form.State == huh.StateCompleted {
		n.form = nil
		n.core.Notifications.Set(model.NotificationSettings{Preference: *n.pref, Sound: *n.sound})
		n.core.Nav.Close(nav.NotificationSettings)
		return n, nil
	}
	return n, cmd
}

func (n notifySettingsModel) view() string {
	body := mutedStyle.Render("-")
	if n.form != nil {
		body = n.form.View()
	}
	return panelStyle.Width(n.width - 4).Render(body)
}
