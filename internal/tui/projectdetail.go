package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskflow/internal/core"
	"github.com/sadopc/taskflow/internal/model"
	"github.com/sadopc/taskflow/internal/nav"
)

type projectDetailModel struct {
	core   *core.App
	width  int
	height int

	project model.Project
	tasks   []model.Task
	cursor  int
	bar     progress.Model
}

func newProjectDetailModel(c *core.App) projectDetailModel {
	return projectDetailModel{core: c, bar: newProgressBar(40)}
}

func newProgressBar(width int) progress.Model {
	bar := progress.New(progress.WithSolidFill(string(colorPrimary)))
	bar.Width = width
	return bar
}

func (d *projectDetailModel) setSize(w, h int) {
	d.width = w
	d.height = h
	d.bar.Width = max(10, min(60, w-16))
}

func (d projectDetailModel) refresh() tea.Cmd {
	return loadProjectTasks(d.core.Repo, d.core.Nav.State().ProjectID)
}

func (d projectDetailModel) update(msg tea.Msg) (projectDetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case projectTasksMsg:
		d.project = msg.project
		d.tasks = msg.tasks
		if d.cursor >= len(d.tasks) {
			d.cursor = max(0, len(d.tasks)-1)
		}
		// Rebuild so the fill follows the current theme.
		w := d.bar.Width
		d.bar = newProgressBar(w)
		return d, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if d.cursor > 0 {
				d.cursor--
			}
		case key.Matches(msg, keys.Down):
			if d.cursor < len(d.tasks)-1 {
				d.cursor++
			}
		case key.Matches(msg, keys.Enter):
			if d.cursor < len(d.tasks) {
				d.core.Nav.ReplaceWithTask(nav.ProjectDetail, d.tasks[d.cursor].ID)
			}
		case key.Matches(msg, keys.Board):
			d.core.Nav.Replace(nav.ProjectDetail, nav.ProjectBoard)
		case key.Matches(msg, keys.Analytics):
			d.core.Nav.Replace(nav.ProjectDetail, nav.Analytics)
		}
	}
	return d, nil
}

func (d projectDetailModel) view() string {
	t := d.core.I18n.T
	w := d.width - 4
	p := d.project

	dot := lipgloss.NewStyle().Foreground(iconColor(p.IconColor)).Render("●")
	rows := []string{
		mutedStyle.Render(t("ProjectDetails")),
		titleStyle.Render(fmt.Sprintf("%s %s", dot, p.Title)),
		subtitleStyle.Render(p.Description),
		"",
		fmt.Sprintf("%-14s %s", mutedStyle.Render("Status:"), highlightStyle.Render(p.Status.String())),
		fmt.Sprintf("%-14s %s", mutedStyle.Render(t("DueDate")+":"), formatDate(p.DueDate)),
		fmt.Sprintf("%-14s %d/%d", mutedStyle.Render(t("Tasks")+":"), p.CompletedTasksCount, p.TasksCount),
		"",
		mutedStyle.Render(t("Progress")) + "  " + d.bar.ViewAs(p.ProgressPercentage()),
		"",
		titleStyle.Render(t("Tasks")),
	}

	if len(d.tasks) == 0 {
		rows = append(rows, mutedStyle.Render("  -"))
	}
	for i, task := range d.tasks {
		cursor := "  "
		style := normalItemStyle
		if task.IsCompleted {
			style = doneItemStyle
		}
		if i == d.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		check := "[ ]"
		if task.IsCompleted {
			check = "[✓]"
		}
		rows = append(rows, style.Render(fmt.Sprintf("%s%s %s", cursor, check, task.Title)))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
