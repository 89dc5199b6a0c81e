package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskflow/internal/core"
	"github.com/sadopc/taskflow/internal/model"
)

type taskDetailModel struct {
	core   *core.App
	width  int
	height int

	task    model.Task
	comment textinput.Model
}

func newTaskDetailModel(c *core.App) taskDetailModel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = 500
	return taskDetailModel{core: c, comment: ti}
}

func (d *taskDetailModel) setSize(w, h int) {
	d.width = w
	d.height = h
	d.comment.Width = max(10, w-12)
}

func (d taskDetailModel) capturing() bool { return d.comment.Focused() }

type taskDataMsg struct {
	task model.Task
}

type commentAddedMsg struct {
	comment model.Comment
}

func (d taskDetailModel) refresh() tea.Cmd {
	r, id := d.core.Repo, d.core.Nav.State().TaskID
	return func() tea.Msg {
		t, err := r.Task(id)
		if err != nil {
			return errStatus("load task", err)
		}
		return taskDataMsg{task: t}
	}
}

func (d taskDetailModel) update(msg tea.Msg) (taskDetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case taskDataMsg:
		d.task = msg.task
		return d, nil

	case tea.KeyMsg:
		if d.comment.Focused() {
			return d.updateComment(msg)
		}
		switch {
		case key.Matches(msg, keys.Toggle):
			return d, toggleTask(d.core.Repo, d.task.ID)
		case key.Matches(msg, keys.Comment), key.Matches(msg, keys.Enter):
			d.comment.Placeholder = d.core.I18n.T("AddComment")
			cmd := d.comment.Focus()
			return d, cmd
		}
	}
	return d, nil
}

func (d taskDetailModel) updateComment(msg tea.KeyMsg) (taskDetailModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		d.comment.Blur()
		return d, nil
	case key.Matches(msg, keys.Enter):
		text := d.comment.Value()
		if strings.TrimSpace(text) == "" {
			return d, nil
		}
		d.comment.SetValue("")
		r, id, author := d.core.Repo, d.task.ID, d.core.CurrentUser()
		return d, func() tea.Msg {
			c, err := r.AddComment(id, text, author)
			if err != nil {
				return errStatus("add comment", err)
			}
			return commentAddedMsg{comment: c}
		}
	}
	var cmd tea.Cmd
	d.comment, cmd = d.comment.Update(msg)
	return d, cmd
}

func (d taskDetailModel) view() string {
	t := d.core.I18n.T
	w := d.width - 4

	check := "[ ]"
	if d.task.IsCompleted {
		check = successStyle.Render("[✓]")
	}
	title := titleStyle.Render(fmt.Sprintf("%s %s", check, d.task.Title))

	assignee := t("Unassigned")
	if d.task.Assignee != nil {
		assignee = d.task.Assignee.DisplayName
	}

	rows := []string{
		mutedStyle.Render(t("TaskDetails")),
		title,
		"",
		d.task.Description,
		"",
		fmt.Sprintf("%s %s", mutedStyle.Render(t("Assignee")+":"), highlightStyle.Render(assignee)),
		fmt.Sprintf("%s %s", mutedStyle.Render(t("DueDate")+":"), formatDate(d.task.DueDate)),
		"",
		titleStyle.Render(fmt.Sprintf("%s (%d)", t("Comments"), len(d.task.Comments))),
	}

	if len(d.task.Comments) == 0 {
		rows = append(rows, mutedStyle.Render("  "+t("NoComments")))
	}
	for _, c := range d.task.Comments {
		who := accentStyle.Render(c.Author.DisplayName)
		when := mutedStyle.Render(c.CreatedDate.Local().Format("02 Jan 15:04"))
		rows = append(rows, fmt.Sprintf("  %s  %s", who, when))
		rows = append(rows, lipgloss.NewStyle().Width(max(10, w-8)).Render("  "+c.Text))
	}

	rows = append(rows, "")
	if d.comment.Focused() {
		rows = append(rows, d.comment.View())
	} else {
		rows = append(rows, mutedStyle.Render(keys.Comment.Help().Key+": "+t("AddComment")))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
