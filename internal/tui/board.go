package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskflow/internal/core"
	"github.com/sadopc/taskflow/internal/model"
	"github.com/sadopc/taskflow/internal/repo"
)

const (
	columnTodo = iota
	columnDone
)

// boardModel shows a project's tasks in To Do and Done columns.
type boardModel struct {
	core   *core.App
	width  int
	height int

	project model.Project
	tasks   []model.Task
	column  int
	cursor  [2]int

	formActive bool
	form       *huh.Form
	formTitle  *string
	formDesc   *string
}

func newBoardModel(c *core.App) boardModel {
	title, desc := "", ""
	return boardModel{core: c, formTitle: &title, formDesc: &desc}
}

func (b *boardModel) setSize(w, h int) {
	b.width = w
	b.height = h
}

func (b boardModel) capturing() bool { return b.formActive }

type projectTasksMsg struct {
	project model.Project
	tasks   []model.Task
}

// loadProjectTasks fetches the selected project with its tasks. Board and
// project detail share it.
func loadProjectTasks(r *repo.Repository, projectID string) tea.Cmd {
	return func() tea.Msg {
		p, err := r.Project(projectID)
		if err != nil {
			return errStatus("load project", err)
		}
		tasks, err := r.Tasks(projectID)
		if err != nil {
			return errStatus("load tasks", err)
		}
		return projectTasksMsg{project: p, tasks: tasks}
	}
}

func (b boardModel) refresh() tea.Cmd {
	return loadProjectTasks(b.core.Repo, b.core.Nav.State().ProjectID)
}

func (b boardModel) columnTasks(col int) []model.Task {
	var out []model.Task
	for _, t := range b.tasks {
		if t.IsCompleted == (col == columnDone) {
			out = append(out, t)
		}
	}
	return out
}

func (b boardModel) selected() (model.Task, bool) {
	col := b.columnTasks(b.column)
	i := b.cursor[b.column]
	if i < 0 || i >= len(col) {
		return model.Task{}, false
	}
	return col[i], true
}

func (b *boardModel) clampCursors() {
	for col := range b.cursor {
		n := len(b.columnTasks(col))
		if b.cursor[col] >= n {
			b.cursor[col] = max(0, n-1)
		}
	}
}

func (b boardModel) update(msg tea.Msg) (boardModel, tea.Cmd) {
	if b.formActive && b.form != nil {
		return b.updateForm(msg)
	}

	switch msg := msg.(type) {
	case projectTasksMsg:
		b.project = msg.project
		b.tasks = msg.tasks
		b.clampCursors()
		return b, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			b.column = columnTodo
		case key.Matches(msg, keys.Right):
			b.column = columnDone
		case key.Matches(msg, keys.Up):
			if b.cursor[b.column] > 0 {
				b.cursor[b.column]--
			}
		case key.Matches(msg, keys.Down):
			if b.cursor[b.column] < len(b.columnTasks(b.column))-1 {
				b.cursor[b.column]++
			}
		case key.Matches(msg, keys.Toggle):
			if task, ok := b.selected(); ok {
				return b, toggleTask(b.core.Repo, task.ID)
			}
		case key.Matches(msg, keys.Enter):
			if task, ok := b.selected(); ok {
				b.core.Nav.OpenTask(task.ID)
			}
		case key.Matches(msg, keys.New):
			return b.showNewTaskForm()
		}
	}
	return b, nil
}

func toggleTask(r *repo.Repository, id string) tea.Cmd {
	return func() tea.Msg {
		t, err := r.ToggleTaskCompletion(id)
		if err != nil {
			return errStatus("toggle task", err)
		}
		return taskToggledMsg{task: t}
	}
}

func (b boardModel) showNewTaskForm() (boardModel, tea.Cmd) {
	t := b.core.I18n.T
	*b.formTitle = ""
	*b.formDesc = ""

	b.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title(t("Title")).Value(b.formTitle).Validate(notBlank),
			huh.NewText().Title(t("Description")).Lines(3).Value(b.formDesc),
		),
	).WithShowHelp(true).WithShowErrors(true)

	b.formActive = true
	return b, b.form.Init()
}

func (b boardModel) updateForm(msg tea.Msg) (boardModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			b.formActive = false
			b.form = nil
			return b, nil
		}
	}

	form, cmd := b.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		b.form = f
	}

	if b.form.State == huh.StateCompleted {
		b.formActive = false
		b.form = nil
		r, pid := b.core.Repo, b.project.ID
		in := repo.NewTask{Title: *b.formTitle, Description: *b.formDesc}
		return b, func() tea.Msg {
			if _, err := r.AddTask(pid, in); err != nil {
				return errStatus("add task", err)
			}
			return statusMsg{text: "Task added"}
		}
	}

	return b, cmd
}

func (b boardModel) view() string {
	t := b.core.I18n.T
	w := b.width - 4

	dot := lipgloss.NewStyle().Foreground(iconColor(b.project.IconColor)).Render("●")
	title := titleStyle.Render(fmt.Sprintf("%s %s · %s", dot, b.project.Title, t("Board")))

	if b.formActive && b.form != nil {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, title, "", b.form.View()))
	}

	colW := max(20, (w-8)/2)
	todo := b.renderColumn(columnTodo, t("ToDo"), colW)
	done := b.renderColumn(columnDone, t("Done"), colW)

	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(title),
		lipgloss.JoinHorizontal(lipgloss.Top, todo, " ", done),
	)
}

func (b boardModel) renderColumn(col int, name string, width int) string {
	tasks := b.columnTasks(col)
	style := panelStyle
	if col == b.column {
		style = activePanelStyle
	}

	rows := []string{titleStyle.Render(fmt.Sprintf("%s (%d)", name, len(tasks))), ""}
	for i, task := range tasks {
		cursor := "  "
		item := normalItemStyle
		if task.IsCompleted {
			item = doneItemStyle
		}
		if col == b.column && i == b.cursor[col] {
			cursor = "> "
			item = selectedItemStyle
		}
		rows = append(rows, item.Render(cursor+truncate(task.Title, width-6)))
		if task.Assignee != nil {
			rows = append(rows, mutedStyle.Render("    "+task.Assignee.DisplayName))
		}
	}
	if len(tasks) == 0 {
		rows = append(rows, mutedStyle.Render("  -"))
	}
	return style.Width(width).Render(strings.Join(rows, "\n"))
}
