package model

import (
	"errors"
	"testing"
	"time"
)

func TestProgressPercentage(t *testing.T) {
	tests := []struct {
		total, done int
		want        float64
	}{
		{0, 0, 0},
		{10, 0, 0},
		{10, 5, 0.5},
		{8, 8, 1},
	}
	for _, tt := range tests {
		p := Project{TasksCount: tt.total, CompletedTasksCount: tt.done}
		if got := p.ProgressPercentage(); got != tt.want {
			t.Errorf("ProgressPercentage(%d/%d) = %v, want %v", tt.done, tt.total, got, tt.want)
		}
	}
}

func TestStatusString(t *testing.T) {
	if StatusInProgress.String() != "IN_PROGRESS" {
		t.Fatalf("got %q", StatusInProgress.String())
	}
	if ProjectStatus(42).String() != "UNKNOWN" {
		t.Fatal("out of range status should be UNKNOWN")
	}
}

func TestSampleProjectsInvariant(t *testing.T) {
	projects := SampleProjects(time.Now())
	if len(projects) != 6 {
		t.Fatalf("expected 6 sample projects, got %d", len(projects))
	}
	seen := make(map[string]bool)
	for _, p := range projects {
		if p.CompletedTasksCount < 0 || p.CompletedTasksCount > p.TasksCount {
			t.Fatalf("bad counts on %q: %d/%d", p.Title, p.CompletedTasksCount, p.TasksCount)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate id %s", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestSampleTasksComments(t *testing.T) {
	now := time.Now()
	tasks := SampleTasks("p1", now)
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	c := tasks[0].Comments
	if len(c) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(c))
	}
	if !c[0].CreatedDate.Before(c[1].CreatedDate) {
		t.Fatal("comments should be oldest first")
	}
	for _, task := range tasks {
		if task.ProjectID != "p1" {
			t.Fatalf("task %q has project %q", task.Title, task.ProjectID)
		}
	}
}

func TestValidationError(t *testing.T) {
	var err error = NewValidationError("title", "title must not be empty")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatal("expected ValidationError")
	}
	if verr.Field != "title" || err.Error() != "title must not be empty" {
		t.Fatalf("unexpected error: %+v", verr)
	}
}
