// Package tui is the Bubble Tea front end. The root App renders whatever
// screen the navigation controller reports and forwards keys to it.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskflow/internal/core"
	"github.com/sadopc/taskflow/internal/export"
	"github.com/sadopc/taskflow/internal/nav"
)

var exportFormats = []export.Format{export.FormatCSV, export.FormatJSON}

// App is the root Bubble Tea model.
type App struct {
	core       *core.App
	width      int
	height     int
	systemDark bool
	detectBG   bool

	screen        nav.Screen // screen seen by the last update
	showHelp      bool
	exportPicking bool
	exportCursor  int
	exportDir     string

	login         loginModel
	projects      projectsModel
	settings      settingsModel
	board         boardModel
	taskDetail    taskDetailModel
	projectDetail projectDetailModel
	analytics     analyticsModel
	profile       profileModel
	notify        notifySettingsModel

	help      help.Model
	status    string
	statusErr bool
}

type Option func(*App)

// WithSystemDark skips terminal background detection.
func WithSystemDark(dark bool) Option {
	return func(a *App) {
		a.systemDark = dark
		a.detectBG = false
	}
}

// WithExportDir sets where exports are written. The default is the home
// directory.
func WithExportDir(dir string) Option {
	return func(a *App) { a.exportDir = dir }
}

func NewApp(c *core.App, opts ...Option) App {
	h := help.New()
	h.ShowAll = false

	a := App{
		core:       c,
		systemDark: true,
		detectBG:   true,
		screen:     c.Nav.Current(),
		help:       h,
	}
	for _, o := range opts {
		o(&a)
	}
	if a.detectBG {
		a.systemDark = lipgloss.HasDarkBackground()
	}
	if a.exportDir == "" {
		a.exportDir, _ = os.UserHomeDir()
	}
	applyTheme(c.Prefs.IsDark(a.systemDark))

	a.login = newLoginModel(c)
	a.projects = newProjectsModel(c)
	a.settings = newSettingsModel(c, a.systemDark)
	a.board = newBoardModel(c)
	a.taskDetail = newTaskDetailModel(c)
	a.projectDetail = newProjectDetailModel(c)
	a.analytics = newAnalyticsModel(c)
	a.profile = newProfileModel(c)
	a.notify = newNotifySettingsModel(c)

	a.enter(a.screen)
	return a
}

func (a App) Init() tea.Cmd {
	switch a.screen {
	case nav.ScreenLogin, nav.ScreenSignUp:
		if a.login.form != nil {
			return a.login.form.Init()
		}
	}
	return a.refreshScreen(a.screen)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.login.setSize(a.width, a.height)
		a.projects.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		a.board.setSize(a.width, contentHeight)
		a.taskDetail.setSize(a.width, contentHeight)
		a.projectDetail.setSize(a.width, contentHeight)
		a.analytics.setSize(a.width, contentHeight)
		a.profile.setSize(a.width, contentHeight)
		a.notify.setSize(a.width, contentHeight)
		return a, a.refreshScreen(a.screen)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		screen := a.core.Nav.Current()
		if !a.capturing(screen) {
			switch {
			case key.Matches(msg, keys.Quit):
				return a, tea.Quit
			case key.Matches(msg, keys.Help):
				a.showHelp = !a.showHelp
				a.help.ShowAll = a.showHelp
				return a, nil
			case key.Matches(msg, keys.Back):
				a.core.Nav.Back()
				return a.settle(nil)
			}
			if isMainTab(screen) {
				switch {
				case key.Matches(msg, keys.Tab1):
					a.core.Nav.SelectTab(nav.TabProjects)
					return a.settle(nil)
				case key.Matches(msg, keys.Tab2):
					a.core.Nav.SelectTab(nav.TabNotifications)
					return a.settle(nil)
				case key.Matches(msg, keys.Tab3):
					a.core.Nav.SelectTab(nav.TabSettings)
					return a.settle(nil)
				case key.Matches(msg, keys.Tab):
					next := (a.core.Nav.State().Tab + 1) % nav.TabCount
					a.core.Nav.SelectTab(next)
					return a.settle(nil)
				case screen == nav.ScreenProjects && key.Matches(msg, keys.Export):
					a.exportPicking = true
					a.exportCursor = 0
					return a, nil
				}
			}
		}
		cmd = a.updateScreen(screen, msg)
		return a.settle(cmd)

	case authDoneMsg:
		a.login, cmd = a.login.update(msg)
		return a.settle(cmd)

	case spinner.TickMsg:
		a.login, cmd = a.login.update(msg)
		return a, cmd

	case statusMsg:
		a.status = msg.text
		a.statusErr = msg.isError
		return a, a.refreshScreen(a.screen)

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.statusErr = false
		a.exportPicking = false
		return a, nil

	case projectCreatedMsg:
		a.status = fmt.Sprintf("Created %q", msg.project.Title)
		a.statusErr = false
		return a, a.projects.refresh()

	case taskToggledMsg, commentAddedMsg:
		return a, a.refreshScreen(a.screen)

	case projectsDataMsg:
		a.projects, cmd = a.projects.update(msg)
		return a, cmd

	case projectTasksMsg:
		a.board, _ = a.board.update(msg)
		a.projectDetail, _ = a.projectDetail.update(msg)
		return a, nil

	case taskDataMsg:
		a.taskDetail, cmd = a.taskDetail.update(msg)
		return a, cmd

	case analyticsDataMsg:
		a.analytics, cmd = a.analytics.update(msg)
		return a, cmd
	}

	// Anything else (form internals, cursor blink) belongs to the current screen.
	cmd = a.updateScreen(a.core.Nav.Current(), msg)
	return a.settle(cmd)
}

// settle re-applies the theme when the preference changed and enters the new
// screen when navigation moved.
func (a App) settle(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if dark := a.core.Prefs.IsDark(a.systemDark); dark != darkTheme {
		applyTheme(dark)
	}
	if cur := a.core.Nav.Current(); cur != a.screen {
		a.screen = cur
		if next := a.enter(cur); cmd == nil {
			cmd = next
		} else if next != nil {
			cmd = tea.Batch(cmd, next)
		}
	}
	return a, cmd
}

// enter prepares a screen that just became current.
func (a *App) enter(s nav.Screen) tea.Cmd {
	var cmd tea.Cmd
	switch s {
	case nav.ScreenLogin:
		a.login, cmd = a.login.reset(false)
	case nav.ScreenSignUp:
		a.login, cmd = a.login.reset(true)
	case nav.ScreenProfileEdit:
		a.profile, cmd = a.profile.reset()
	case nav.ScreenNotificationSettings:
		a.notify, cmd = a.notify.reset()
	default:
		cmd = a.refreshScreen(s)
	}
	return cmd
}

func (a App) refreshScreen(s nav.Screen) tea.Cmd {
	switch s {
	case nav.ScreenProjects:
		return a.projects.refresh()
	case nav.ScreenProjectBoard:
		return a.board.refresh()
	case nav.ScreenProjectDetail:
		return a.projectDetail.refresh()
	case nav.ScreenTaskDetail:
		return a.taskDetail.refresh()
	case nav.ScreenAnalytics:
		return a.analytics.refresh()
	}
	return nil
}

func (a *App) updateScreen(s nav.Screen, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s {
	case nav.ScreenLogin, nav.ScreenSignUp:
		a.login, cmd = a.login.update(msg)
	case nav.ScreenProjects:
		a.projects, cmd = a.projects.update(msg)
	case nav.ScreenSettings:
		a.settings, cmd = a.settings.update(msg)
	case nav.ScreenProjectBoard:
		a.board, cmd = a.board.update(msg)
	case nav.ScreenTaskDetail:
		a.taskDetail, cmd = a.taskDetail.update(msg)
	case nav.ScreenProjectDetail:
		a.projectDetail, cmd = a.projectDetail.update(msg)
	case nav.ScreenAnalytics:
		a.analytics, cmd = a.analytics.update(msg)
	case nav.ScreenProfileEdit:
		a.profile, cmd = a.profile.update(msg)
	case nav.ScreenNotificationSettings:
		a.notify, cmd = a.notify.update(msg)
	}
	return cmd
}

// capturing reports whether the screen owns every key, including esc.
func (a App) capturing(s nav.Screen) bool {
	switch s {
	case nav.ScreenLogin, nav.ScreenSignUp, nav.ScreenProfileEdit, nav.ScreenNotificationSettings:
		return true
	case nav.ScreenProjects:
		return a.projects.capturing()
	case nav.ScreenSettings:
		return a.settings.capturing()
	case nav.ScreenProjectBoard:
		return a.board.capturing()
	case nav.ScreenTaskDetail:
		return a.taskDetail.capturing()
	}
	return false
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	screen := a.core.Nav.Current()
	if screen == nav.ScreenLogin || screen == nav.ScreenSignUp {
		return a.login.view()
	}

	header := a.renderHeader()
	footer := a.renderFooter(screen)

	var content string
	switch screen {
	case nav.ScreenProjects:
		content = a.projects.view()
	case nav.ScreenNotifications:
		content = notificationsView(a.core, a.width)
	case nav.ScreenSettings:
		content = a.settings.view()
	case nav.ScreenProjectBoard:
		content = a.board.view()
	case nav.ScreenTaskDetail:
		content = a.taskDetail.view()
	case nav.ScreenProjectDetail:
		content = a.projectDetail.view()
	case nav.ScreenAnalytics:
		content = a.analytics.view()
	case nav.ScreenProfileEdit:
		content = a.profile.view()
	case nav.ScreenNotificationSettings:
		content = a.notify.view()
	}

	// Calculate available height for content
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	active := a.core.Nav.State().Tab
	var tabs []string
	for i, k := range tabKeys {
		name := fmt.Sprintf("%d %s", i+1, a.core.I18n.T(k))
		if nav.Tab(i) == active {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("TaskFlow")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter(screen nav.Screen) string {
	helpView := a.help.View(keys.forScreen(screen))

	status := ""
	if a.status != "" {
		style := mutedStyle
		if a.statusErr {
			style = errorStyle
		}
		status = style.Render(" " + a.status)
	}

	user := ""
	if u := a.core.CurrentUser(); u.DisplayName != "" {
		user = successStyle.Render(" ● " + u.DisplayName)
	}

	left := footerStyle.Render(helpView)
	right := user + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render(a.core.I18n.T("Export"))
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range exportFormats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+string(f)))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < len(exportFormats)-1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(exportFormats[a.exportCursor])
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

// doExport writes the projects as currently filtered and sorted.
func (a App) doExport(f export.Format) tea.Cmd {
	r, q, dir := a.core.Repo, a.projects.query, a.exportDir
	return func() tea.Msg {
		path := filepath.Join(dir, export.DefaultFilename(f, time.Now().Format(time.DateOnly)))
		if err := export.Write(f, r.List(q), path); err != nil {
			return errStatus("export", err)
		}
		return exportDoneMsg{path: path}
	}
}
