package repo

import (
	"errors"
	"testing"
	"time"

	"github.com/sadopc/taskflow/internal/logger"
	"github.com/sadopc/taskflow/internal/model"
)

var fixedNow = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

func newTestRepo(t *testing.T, opts ...Option) *Repository {
	t.Helper()
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return New(logger.Discard(), opts...)
}

func project(title, desc string, created time.Time, total, done int) model.Project {
	return model.Project{
		ID:                  title,
		Title:               title,
		Description:         desc,
		CreatedDate:         created,
		TasksCount:          total,
		CompletedTasksCount: done,
		IsCompleted:         total > 0 && done == total,
	}
}

func titles(ps []model.Project) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Title
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ============================================================
// Query
// ============================================================

func TestApply(t *testing.T) {
	day := 24 * time.Hour
	ps := []model.Project{
		project("Beta", "mobile work", fixedNow.Add(-2*day), 10, 5),
		project("alpha", "Website", fixedNow, 4, 4),
		project("Gamma", "marketing", fixedNow.Add(-1*day), 0, 0),
		project("Delta", "WEBSITE refresh", fixedNow.Add(-1*day), 10, 5),
	}

	tests := []struct {
		name string
		q    Query
		want []string
	}{
		{"default date desc with stable ties", Query{}, []string{"alpha", "Gamma", "Delta", "Beta"}},
		{"name asc", Query{Sort: SortName}, []string{"Beta", "Delta", "Gamma", "alpha"}},
		{"progress desc", Query{Sort: SortProgress}, []string{"alpha", "Beta", "Delta", "Gamma"}},
		{"active", Query{Filter: FilterActive, Sort: SortName}, []string{"Beta", "Delta", "Gamma"}},
		{"completed", Query{Filter: FilterCompleted}, []string{"alpha"}},
		{"search title is case folded", Query{Search: "ALPHA"}, []string{"alpha"}},
		{"search matches description", Query{Search: "website", Sort: SortName}, []string{"Delta", "alpha"}},
		{"search and filter combine", Query{Search: "website", Filter: FilterActive}, []string{"Delta"}},
		{"no match", Query{Search: "zzz"}, []string{}},
		{"space is a literal needle", Query{Search: " ", Sort: SortName}, []string{"Beta", "Delta"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(Apply(ps, tt.q))
			if !equal(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyDoesNotReorderInput(t *testing.T) {
	ps := []model.Project{
		project("b", "", fixedNow, 0, 0),
		project("a", "", fixedNow, 0, 0),
	}
	Apply(ps, Query{Sort: SortName})
	if ps[0].Title != "b" {
		t.Fatal("Apply modified its input")
	}
}

func TestParseFilterAndSort(t *testing.T) {
	if f, ok := ParseFilter("Completed"); !ok || f != FilterCompleted {
		t.Fatalf("ParseFilter = %v, %v", f, ok)
	}
	if _, ok := ParseFilter("bogus"); ok {
		t.Fatal("bogus filter accepted")
	}
	if s, ok := ParseSort("progress"); !ok || s != SortProgress {
		t.Fatalf("ParseSort = %v, %v", s, ok)
	}
	if SortProgress.Next() != SortDate || FilterAll.Next() != FilterActive {
		t.Fatal("Next does not cycle")
	}
}

func TestFilterSortStringOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"filter", FilterCompleted.String(), "completed"},
		{"sort", SortName.String(), "name"},
		{"negative filter", Filter(-1).String(), "unknown"},
		{"negative sort", Sort(-1).String(), "unknown"},
		{"large filter", Filter(9).String(), "unknown"},
		{"large sort", Sort(9).String(), "unknown"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

// ============================================================
// Projects
// ============================================================

func TestCreateAppendsProject(t *testing.T) {
	r := newTestRepo(t)
	p, err := r.Create(NewProject{Title: "  Launch  ", Description: "go live"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == "" || p.Title != "Launch" || !p.CreatedDate.Equal(fixedNow) {
		t.Fatalf("unexpected project: %+v", p)
	}
	if p.TasksCount != 0 || p.CompletedTasksCount != 0 || p.IsCompleted || p.Status != model.StatusTodo {
		t.Fatalf("new project not empty: %+v", p)
	}
	got, err := r.Project(p.ID)
	if err != nil || got.Title != "Launch" {
		t.Fatalf("project lookup = %+v, %v", got, err)
	}
	if n := len(r.List(Query{})); n != 1 {
		t.Fatalf("list len = %d, want 1", n)
	}
}

func TestCreateRejectsBlankTitle(t *testing.T) {
	r := newTestRepo(t)
	_, err := r.Create(NewProject{Title: "   "})
	var ve *model.ValidationError
	if !errors.As(err, &ve) || ve.Field != "title" {
		t.Fatalf("err = %v, want title validation error", err)
	}
	if len(r.List(Query{})) != 0 {
		t.Fatal("invalid project was stored")
	}
}

func TestUnknownIDsAreNotFound(t *testing.T) {
	r := newTestRepo(t)
	if _, err := r.Project("nope"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Project: %v", err)
	}
	if _, err := r.Tasks("nope"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Tasks: %v", err)
	}
	if _, err := r.Task("nope"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Task: %v", err)
	}
	if _, err := r.ToggleTaskCompletion("nope"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Toggle: %v", err)
	}
	if _, err := r.AddComment("nope", "hi", model.User{}); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("AddComment: %v", err)
	}
	if _, err := r.AddTask("nope", NewTask{Title: "x"}); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("AddTask: %v", err)
	}
	if _, err := r.Analytics("nope"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Analytics: %v", err)
	}
}

// ============================================================
// Samples
// ============================================================

func TestSamplesSeedCounts(t *testing.T) {
	r := newTestRepo(t, WithSamples())
	ps := r.List(Query{})
	if len(ps) != 6 {
		t.Fatalf("seeded %d projects, want 6", len(ps))
	}
	for _, p := range ps {
		if p.CompletedTasksCount < 0 || p.CompletedTasksCount > p.TasksCount {
			t.Fatalf("%s: completed %d of %d", p.Title, p.CompletedTasksCount, p.TasksCount)
		}
	}
	first := r.projects[0]
	tasks, err := r.Tasks(first.ID)
	if err != nil || len(tasks) != 3 {
		t.Fatalf("sample tasks = %d, %v", len(tasks), err)
	}
	if first.CompletedTasksCount < 1 {
		t.Fatal("completed sample task not counted")
	}
}

// ============================================================
// Tasks
// ============================================================

func TestToggleFlipsOnlyThatTask(t *testing.T) {
	r := newTestRepo(t, WithSamples())
	pid := r.projects[0].ID
	before, _ := r.Tasks(pid)
	countBefore := r.projects[0].CompletedTasksCount

	got, err := r.ToggleTaskCompletion(before[0].ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if got.IsCompleted == before[0].IsCompleted {
		t.Fatal("task not flipped")
	}
	after, _ := r.Tasks(pid)
	for i := 1; i < len(after); i++ {
		if after[i].IsCompleted != before[i].IsCompleted {
			t.Fatalf("task %d changed", i)
		}
	}
	p, _ := r.Project(pid)
	if p.CompletedTasksCount != countBefore+1 {
		t.Fatalf("completed count = %d, want %d", p.CompletedTasksCount, countBefore+1)
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	r := newTestRepo(t, WithSamples())
	pid := r.projects[0].ID
	tasks, _ := r.Tasks(pid)
	orig := tasks[2]
	countBefore := r.projects[0].CompletedTasksCount

	r.ToggleTaskCompletion(orig.ID)
	got, _ := r.ToggleTaskCompletion(orig.ID)
	if got.IsCompleted != orig.IsCompleted {
		t.Fatal("double toggle did not restore")
	}
	if p, _ := r.Project(pid); p.CompletedTasksCount != countBefore {
		t.Fatalf("completed count = %d, want %d", p.CompletedTasksCount, countBefore)
	}
}

func TestToggleCountIsClamped(t *testing.T) {
	r := newTestRepo(t)
	p, _ := r.Create(NewProject{Title: "p"})
	task, _ := r.AddTask(p.ID, NewTask{Title: "t"})

	r.ToggleTaskCompletion(task.ID)
	got, _ := r.Project(p.ID)
	if got.TasksCount != 1 || got.CompletedTasksCount != 1 {
		t.Fatalf("counts = %d/%d, want 1/1", got.CompletedTasksCount, got.TasksCount)
	}

	// Force the counter below the tasks it tracks; unchecking must not go negative.
	r.projects[0].CompletedTasksCount = 0
	r.ToggleTaskCompletion(task.ID)
	got, _ = r.Project(p.ID)
	if got.CompletedTasksCount != 0 {
		t.Fatalf("completed = %d, want 0", got.CompletedTasksCount)
	}
}

func TestAddTaskValidates(t *testing.T) {
	r := newTestRepo(t)
	p, _ := r.Create(NewProject{Title: "p"})
	var ve *model.ValidationError
	if _, err := r.AddTask(p.ID, NewTask{Title: ""}); !errors.As(err, &ve) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

// ============================================================
// Comments
// ============================================================

func TestAddCommentAppends(t *testing.T) {
	r := newTestRepo(t, WithSamples())
	tasks, _ := r.Tasks(r.projects[0].ID)
	task := tasks[0]
	if len(task.Comments) != 2 {
		t.Fatalf("sample comments = %d, want 2", len(task.Comments))
	}
	me := model.User{ID: "mock_user_123", DisplayName: "me"}

	c, err := r.AddComment(task.ID, "hi", me)
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}
	if c.ID == "" || c.Author.ID != me.ID || !c.CreatedDate.Equal(fixedNow) {
		t.Fatalf("unexpected comment: %+v", c)
	}
	got, _ := r.Task(task.ID)
	if len(got.Comments) != 3 || got.Comments[2].Text != "hi" {
		t.Fatalf("comments = %+v", got.Comments)
	}
}

func TestAddCommentRejectsBlank(t *testing.T) {
	r := newTestRepo(t, WithSamples())
	tasks, _ := r.Tasks(r.projects[0].ID)
	var ve *model.ValidationError
	if _, err := r.AddComment(tasks[0].ID, "  ", model.User{}); !errors.As(err, &ve) {
		t.Fatalf("err = %v, want validation error", err)
	}
	got, _ := r.Task(tasks[0].ID)
	if len(got.Comments) != 2 {
		t.Fatal("blank comment stored")
	}
}

func TestReturnedTasksDoNotAlias(t *testing.T) {
	r := newTestRepo(t, WithSamples())
	tasks, _ := r.Tasks(r.projects[0].ID)
	tasks[0].Comments[0].Text = "mutated"
	got, _ := r.Task(tasks[0].ID)
	if got.Comments[0].Text == "mutated" {
		t.Fatal("caller mutation leaked into repository")
	}
}

// ============================================================
// Analytics and notifications
// ============================================================

func TestAnalytics(t *testing.T) {
	r := newTestRepo(t)
	due := fixedNow.Add(30 * 24 * time.Hour)
	p, _ := r.Create(NewProject{Title: "p", DueDate: &due})
	alice := &model.User{ID: "a"}
	t1, _ := r.AddTask(p.ID, NewTask{Title: "one", Assignee: alice})
	r.AddTask(p.ID, NewTask{Title: "two", Assignee: alice})
	r.AddTask(p.ID, NewTask{Title: "three"})
	r.AddTask(p.ID, NewTask{Title: "four"})
	r.ToggleTaskCompletion(t1.ID)

	a, err := r.Analytics(p.ID)
	if err != nil {
		t.Fatalf("analytics: %v", err)
	}
	if a.TaskCompletionRate != 25 || a.CompletedTasks != 1 || a.InProgressTasks != 1 || a.PendingTasks != 2 {
		t.Fatalf("unexpected analytics: %+v", a)
	}
	if a.ProjectTimelineDays != 30 {
		t.Fatalf("timeline = %d, want 30", a.ProjectTimelineDays)
	}
}

func TestSubscribeSeesMutations(t *testing.T) {
	r := newTestRepo(t)
	var seen []uint64
	cancel := r.Subscribe(func(v uint64) { seen = append(seen, v) })

	p, _ := r.Create(NewProject{Title: "p"})
	r.AddTask(p.ID, NewTask{Title: "t"})
	r.Create(NewProject{Title: ""}) // rejected, no notification
	cancel()
	r.Create(NewProject{Title: "q"})

	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Fatalf("versions = %v, want [1 2]", seen)
	}
}
