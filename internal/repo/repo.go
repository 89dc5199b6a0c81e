// Package repo owns the in-memory working set of projects, tasks and
// comments. Every screen reads and edits through one Repository so changes
// are visible everywhere.
package repo

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/sadopc/taskflow/internal/model"
	"github.com/sadopc/taskflow/internal/signal"
)

type Repository struct {
	log *log.Logger
	now func() time.Time

	mu       sync.RWMutex
	projects []model.Project
	tasks    []model.Task            // insertion order across all projects
	weekly   map[string][]model.WeekData

	version *signal.State[uint64]
}

type Option func(*Repository)

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) { r.now = now }
}

// WithSamples seeds the demo projects. The sample tasks are attached to the
// first project.
func WithSamples() Option {
	return func(r *Repository) {
		now := r.now()
		r.projects = model.SampleProjects(now)
		if len(r.projects) > 0 {
			first := &r.projects[0]
			r.tasks = model.SampleTasks(first.ID, now)
			done := 0
			for _, t := range r.tasks {
				if t.IsCompleted {
					done++
				}
			}
			first.TasksCount = max(first.TasksCount, len(r.tasks))
			first.CompletedTasksCount = max(first.CompletedTasksCount, done)
		}
		for _, p := range r.projects {
			r.weekly[p.ID] = model.SampleWeeklyData()
		}
	}
}

func New(logger *log.Logger, opts ...Option) *Repository {
	r := &Repository{
		log:     logger,
		now:     time.Now,
		weekly:  make(map[string][]model.WeekData),
		version: signal.New(uint64(0)),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Subscribe registers fn to run after every mutation.
func (r *Repository) Subscribe(fn func(version uint64)) func() {
	return r.version.Subscribe(fn)
}

func (r *Repository) changed() {
	r.version.Update(func(v uint64) uint64 { return v + 1 })
}

// ============================================================
// Projects
// ============================================================

func (r *Repository) List(q Query) []model.Project {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Apply(r.projects, q)
}

func (r *Repository) Project(id string) (model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.projectIndex(id)
	if i < 0 {
		return model.Project{}, fmt.Errorf("project %s: %w", id, model.ErrNotFound)
	}
	return r.projects[i], nil
}

type NewProject struct {
	Title       string
	Description string
	IconName    string
	IconColor   string
	DueDate     *time.Time
}

func (r *Repository) Create(in NewProject) (model.Project, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return model.Project{}, model.NewValidationError("title", "title must not be empty")
	}
	p := model.Project{
		ID:          uuid.NewString(),
		Title:       title,
		Description: in.Description,
		IconName:    orDefault(in.IconName, "folder"),
		IconColor:   orDefault(in.IconColor, "blue"),
		CreatedDate: r.now(),
		DueDate:     in.DueDate,
		Status:      model.StatusTodo,
	}

	r.mu.Lock()
	r.projects = append(r.projects, p)
	r.mu.Unlock()

	r.log.Info("project created", "id", p.ID, "title", p.Title)
	r.changed()
	return p, nil
}

// ============================================================
// Tasks
// ============================================================

func (r *Repository) Tasks(projectID string) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.projectIndex(projectID) < 0 {
		return nil, fmt.Errorf("project %s: %w", projectID, model.ErrNotFound)
	}
	var out []model.Task
	for _, t := range r.tasks {
		if t.ProjectID == projectID {
			out = append(out, cloneTask(t))
		}
	}
	return out, nil
}

func (r *Repository) Task(id string) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.taskIndex(id)
	if i < 0 {
		return model.Task{}, fmt.Errorf("task %s: %w", id, model.ErrNotFound)
	}
	return cloneTask(r.tasks[i]), nil
}

type NewTask struct {
	Title       string
	Description string
	Assignee    *model.User
	DueDate     *time.Time
}

// AddTask appends a task to a project and counts it in TasksCount.
func (r *Repository) AddTask(projectID string, in NewTask) (model.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return model.Task{}, model.NewValidationError("title", "title must not be empty")
	}

	r.mu.Lock()
	pi := r.projectIndex(projectID)
	if pi < 0 {
		r.mu.Unlock()
		return model.Task{}, fmt.Errorf("project %s: %w", projectID, model.ErrNotFound)
	}
	t := model.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: in.Description,
		Assignee:    in.Assignee,
		DueDate:     in.DueDate,
		ProjectID:   projectID,
		CreatedDate: r.now(),
	}
	r.tasks = append(r.tasks, t)
	r.projects[pi].TasksCount++
	r.mu.Unlock()

	r.log.Info("task added", "id", t.ID, "project", projectID)
	r.changed()
	return cloneTask(t), nil
}

// ToggleTaskCompletion flips IsCompleted on the task and moves the parent's
// CompletedTasksCount by one in the same direction, clamped to
// [0, TasksCount].
func (r *Repository) ToggleTaskCompletion(taskID string) (model.Task, error) {
	r.mu.Lock()
	ti := r.taskIndex(taskID)
	if ti < 0 {
		r.mu.Unlock()
		return model.Task{}, fmt.Errorf("task %s: %w", taskID, model.ErrNotFound)
	}
	t := &r.tasks[ti]
	t.IsCompleted = !t.IsCompleted

	if pi := r.projectIndex(t.ProjectID); pi >= 0 {
		p := &r.projects[pi]
		if t.IsCompleted {
			p.CompletedTasksCount = min(p.CompletedTasksCount+1, p.TasksCount)
		} else {
			p.CompletedTasksCount = max(p.CompletedTasksCount-1, 0)
		}
	}
	out := cloneTask(*t)
	r.mu.Unlock()

	r.log.Debug("task toggled", "id", taskID, "completed", out.IsCompleted)
	r.changed()
	return out, nil
}

// AddComment appends a comment to the end of the task's comment list.
func (r *Repository) AddComment(taskID, text string, author model.User) (model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return model.Comment{}, model.NewValidationError("text", "comment must not be empty")
	}

	r.mu.Lock()
	ti := r.taskIndex(taskID)
	if ti < 0 {
		r.mu.Unlock()
		return model.Comment{}, fmt.Errorf("task %s: %w", taskID, model.ErrNotFound)
	}
	c := model.Comment{
		ID:          uuid.NewString(),
		Text:        text,
		Author:      author,
		CreatedDate: r.now(),
	}
	r.tasks[ti].Comments = append(r.tasks[ti].Comments, c)
	r.mu.Unlock()

	r.log.Debug("comment added", "task", taskID, "author", author.ID)
	r.changed()
	return c, nil
}

// ============================================================
// Analytics
// ============================================================

// Analytics summarises a project. Counts come from the project record;
// tasks tracked in the repository split the open ones into in-progress
// (assigned) and pending (unassigned).
func (r *Repository) Analytics(projectID string) (model.ProjectAnalytics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pi := r.projectIndex(projectID)
	if pi < 0 {
		return model.ProjectAnalytics{}, fmt.Errorf("project %s: %w", projectID, model.ErrNotFound)
	}
	p := r.projects[pi]

	open := p.TasksCount - p.CompletedTasksCount
	assigned := 0
	for _, t := range r.tasks {
		if t.ProjectID == projectID && !t.IsCompleted && t.Assignee != nil {
			assigned++
		}
	}
	assigned = min(assigned, open)

	a := model.ProjectAnalytics{
		ProjectID:          projectID,
		TaskCompletionRate: int(p.ProgressPercentage()*100 + 0.5),
		CompletedTasks:     p.CompletedTasksCount,
		InProgressTasks:    assigned,
		PendingTasks:       open - assigned,
		WeeklyData:         slices.Clone(r.weekly[projectID]),
	}
	if p.DueDate != nil {
		a.ProjectTimelineDays = int(p.DueDate.Sub(p.CreatedDate).Hours() / 24)
	}
	return a, nil
}

// ============================================================
// Helpers
// ============================================================

func (r *Repository) projectIndex(id string) int {
	return slices.IndexFunc(r.projects, func(p model.Project) bool { return p.ID == id })
}

func (r *Repository) taskIndex(id string) int {
	return slices.IndexFunc(r.tasks, func(t model.Task) bool { return t.ID == id })
}

// cloneTask copies the comment slice so callers cannot alias repository state.
func cloneTask(t model.Task) model.Task {
	t.Comments = slices.Clone(t.Comments)
	return t
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
