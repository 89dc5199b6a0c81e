package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskflow/internal/core"
	"github.com/sadopc/taskflow/internal/model"
	"github.com/sadopc/taskflow/internal/nav"
	"github.com/sadopc/taskflow/internal/repo"
)

var projectColors = []string{"green", "orange", "mint", "blue", "purple", "red"}
var projectIcons = []string{"list", "folder", "phone_android", "shopping_cart", "forum"}

var filterKeys = map[repo.Filter]string{
	repo.FilterAll:       "FilterOptionAll",
	repo.FilterActive:    "FilterOptionActive",
	repo.FilterCompleted: "FilterOptionCompleted",
}

var sortKeys = map[repo.Sort]string{
	repo.SortDate:     "SortOptionDate",
	repo.SortName:     "SortOptionName",
	repo.SortProgress: "SortOptionProgress",
}

type projectsModel struct {
	core   *core.App
	width  int
	height int

	query    repo.Query
	projects []model.Project
	cursor   int
	search   textinput.Model

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formTitle *string
	formDesc  *string
	formColor *string
	formIcon  *string
	formDue   *string
}

func newProjectsModel(c *core.App) projectsModel {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.CharLimit = 64

	title, desc, color, icon, due := "", "", projectColors[0], projectIcons[0], ""
	return projectsModel{
		core:      c,
		search:    ti,
		formTitle: &title,
		formDesc:  &desc,
		formColor: &color,
		formIcon:  &icon,
		formDue:   &due,
	}
}

func (p *projectsModel) setSize(w, h int) {
	p.width = w
	p.height = h
	p.search.Width = max(10, w-12)
}

// capturing reports whether keys should go to an input instead of the app.
func (p projectsModel) capturing() bool {
	return p.formActive || p.search.Focused()
}

type projectsDataMsg struct {
	projects []model.Project
}

func (p projectsModel) refresh() tea.Cmd {
	r, q := p.core.Repo, p.query
	return func() tea.Msg {
		return projectsDataMsg{projects: r.List(q)}
	}
}

func (p projectsModel) selected() (model.Project, bool) {
	if p.cursor < 0 || p.cursor >= len(p.projects) {
		return model.Project{}, false
	}
	return p.projects[p.cursor], true
}

func (p projectsModel) update(msg tea.Msg) (projectsModel, tea.Cmd) {
	if p.formActive && p.form != nil {
		return p.updateForm(msg)
	}

	switch msg := msg.(type) {
	case projectsDataMsg:
		p.projects = msg.projects
		if p.cursor >= len(p.projects) {
			p.cursor = max(0, len(p.projects)-1)
		}
		return p, nil

	case tea.KeyMsg:
		if p.search.Focused() {
			return p.updateSearch(msg)
		}
		return p.updateList(msg)
	}
	return p, nil
}

func (p projectsModel) updateSearch(msg tea.KeyMsg) (projectsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		p.search.SetValue("")
		p.search.Blur()
	case key.Matches(msg, keys.Enter):
		p.search.Blur()
	default:
		var cmd tea.Cmd
		p.search, cmd = p.search.Update(msg)
		p.query.Search = p.search.Value()
		p.cursor = 0
		return p, tea.Batch(cmd, p.refresh())
	}
	p.query.Search = p.search.Value()
	return p, p.refresh()
}

func (p projectsModel) updateList(msg tea.KeyMsg) (projectsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, keys.Down):
		if p.cursor < len(p.projects)-1 {
			p.cursor++
		}
	case key.Matches(msg, keys.Search):
		cmd := p.search.Focus()
		return p, cmd
	case key.Matches(msg, keys.Filter):
		p.query.Filter = p.query.Filter.Next()
		p.cursor = 0
		return p, p.refresh()
	case key.Matches(msg, keys.Sort):
		p.query.Sort = p.query.Sort.Next()
		p.cursor = 0
		return p, p.refresh()
	case key.Matches(msg, keys.Enter):
		if proj, ok := p.selected(); ok {
			p.core.Nav.OpenProject(proj.ID, nav.ProjectDetail)
		}
	case key.Matches(msg, keys.Board):
		if proj, ok := p.selected(); ok {
			p.core.Nav.OpenProject(proj.ID, nav.ProjectBoard)
		}
	case key.Matches(msg, keys.Analytics):
		if proj, ok := p.selected(); ok {
			p.core.Nav.OpenProject(proj.ID, nav.Analytics)
		}
	case key.Matches(msg, keys.New):
		return p.showNewProjectForm()
	}
	return p, nil
}

func (p projectsModel) showNewProjectForm() (projectsModel, tea.Cmd) {
	t := p.core.I18n.T
	*p.formTitle = ""
	*p.formDesc = ""
	*p.formColor = projectColors[0]
	*p.formIcon = projectIcons[0]
	*p.formDue = ""

	colorOptions := make([]huh.Option[string], len(projectColors))
	for i, c := range projectColors {
		dot := lipgloss.NewStyle().Foreground(iconColor(c)).Render("●")
		colorOptions[i] = huh.NewOption(fmt.Sprintf("%s %s", dot, c), c)
	}
	iconOptions := make([]huh.Option[string], len(projectIcons))
	for i, ic := range projectIcons {
		iconOptions[i] = huh.NewOption(ic, ic)
	}

	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title(t("Title")).Value(p.formTitle).Validate(notBlank),
			huh.NewText().Title(t("Description")).Lines(3).Value(p.formDesc),
			huh.NewSelect[string]().Title("Color").Options(colorOptions...).Value(p.formColor),
			huh.NewSelect[string]().Title("Icon").Options(iconOptions...).Value(p.formIcon),
			huh.NewInput().Title(t("DueDate")).Placeholder("YYYY-MM-DD").Value(p.formDue).Validate(validDate),
		),
	).WithShowHelp(true).WithShowErrors(true)

	p.formActive = true
	return p, p.form.Init()
}

func (p projectsModel) updateForm(msg tea.Msg) (projectsModel, tea.Cmd) {
	// Check for escape to cancel form
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			p.formActive = false
			p.form = nil
			return p, nil
		}
	}

	form, cmd := p.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		p.form = f
	}

	if p.form.State == huh.StateCompleted {
		p.formActive = false
		p.form = nil
		return p, p.createProject()
	}

	return p, cmd
}

func (p projectsModel) createProject() tea.Cmd {
	in := repo.NewProject{
		Title:       *p.formTitle,
		Description: *p.formDesc,
		IconName:    *p.formIcon,
		IconColor:   *p.formColor,
	}
	if d, err := parseDate(*p.formDue); err == nil && d != nil {
		in.DueDate = d
	}
	r := p.core.Repo
	return func() tea.Msg {
		proj, err := r.Create(in)
		if err != nil {
			return errStatus("create project", err)
		}
		return projectCreatedMsg{project: proj}
	}
}

func notBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validDate(s string) error {
	_, err := parseDate(s)
	return err
}

// parseDate accepts an empty string (no date) or YYYY-MM-DD.
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation(time.DateOnly, s, time.Local)
	if err != nil {
		return nil, fmt.Errorf("use YYYY-MM-DD")
	}
	return &d, nil
}

func (p projectsModel) view() string {
	t := p.core.I18n.T
	w := p.width - 4

	if p.formActive && p.form != nil {
		title := titleStyle.Render(t("NewProject"))
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, title, "", p.form.View()))
	}

	title := titleStyle.Render(t("MyProjects"))
	opts := mutedStyle.Render(fmt.Sprintf("%s: %s   %s: %s",
		t("Filter"), t(filterKeys[p.query.Filter]),
		t("Sort"), t(sortKeys[p.query.Sort]),
	))

	rows := []string{lipgloss.JoinHorizontal(lipgloss.Bottom, title, "   ", opts)}
	if p.search.Focused() || p.search.Value() != "" {
		rows = append(rows, p.search.View())
	}
	rows = append(rows, "")

	if len(p.projects) == 0 {
		rows = append(rows, mutedStyle.Render(t("NoProjects")))
		return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
	}

	nameW := max(16, w-40)
	header := mutedStyle.Render(fmt.Sprintf("    %-*s %-12s %8s %12s", nameW, t("Title"), "Status", t("Progress"), t("DueDate")))
	rows = append(rows, header)

	for i, proj := range p.projects {
		dot := lipgloss.NewStyle().Foreground(iconColor(proj.IconColor)).Render("●")
		cursor := "  "
		style := normalItemStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		row := style.Render(fmt.Sprintf("%s%s %-*s %-12s %8s %12s",
			cursor, dot, nameW, truncate(proj.Title, nameW), proj.Status,
			formatPercent(proj.ProgressPercentage()), formatDate(proj.DueDate),
		))
		rows = append(rows, row)
	}

	if proj, ok := p.selected(); ok && proj.Description != "" {
		rows = append(rows, "", subtitleStyle.Render("  "+proj.Description))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
