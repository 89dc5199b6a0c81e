package model

import (
	"time"

	"github.com/google/uuid"
)

const day = 24 * time.Hour

// SampleProjects returns the demo projects shown on first launch.
func SampleProjects(now time.Time) []Project {
	due := func(days int) *time.Time {
		t := now.Add(time.Duration(days) * day)
		return &t
	}
	mk := func(p Project) Project {
		p.ID = uuid.NewString()
		p.CreatedDate = now
		return p
	}
	return []Project{
		mk(Project{
			Title:       "Project 1: Website Design",
			Description: "Website design and development",
			IconName:    "list",
			IconColor:   "green",
			DueDate:     due(10),
			Status:      StatusTodo,
			TasksCount:  15,
		}),
		mk(Project{
			Title:               "Project 2: Mobile App Development",
			Description:         "Android and iOS application development",
			IconName:            "list",
			IconColor:           "green",
			DueDate:             due(15),
			Status:              StatusInProgress,
			TasksCount:          12,
			CompletedTasksCount: 6,
		}),
		mk(Project{
			Title:               "Project 3: Marketing Campaign",
			Description:         "Digital marketing strategy and campaign management",
			IconName:            "list",
			IconColor:           "orange",
			DueDate:             due(20),
			Status:              StatusCompleted,
			TasksCount:          8,
			CompletedTasksCount: 8,
			IsCompleted:         true,
		}),
		mk(Project{
			Title:               "Project Management App",
			Description:         "Design and development process of the project management app",
			IconName:            "phone_android",
			IconColor:           "mint",
			Status:              StatusInProgress,
			TasksCount:          15,
			CompletedTasksCount: 8,
		}),
		mk(Project{
			Title:               "E-commerce App",
			Description:         "Design of the e-commerce app",
			IconName:            "shopping_cart",
			IconColor:           "orange",
			Status:              StatusTodo,
			TasksCount:          12,
			CompletedTasksCount: 5,
		}),
		mk(Project{
			Title:               "Social Media App",
			Description:         "Design of the social media app",
			IconName:            "forum",
			IconColor:           "green",
			Status:              StatusTodo,
			TasksCount:          8,
			CompletedTasksCount: 3,
		}),
	}
}

// SampleTasks returns the demo tasks of a project. The first one carries two
// comments, oldest first.
func SampleTasks(projectID string, now time.Time) []Task {
	emily := User{ID: "1", DisplayName: "Emily Carter", Email: "emily@example.com"}
	david := User{ID: "2", DisplayName: "David Lee", Email: "david@example.com"}

	date := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
		return &t
	}

	return []Task{
		{
			ID:          uuid.NewString(),
			Title:       "UI/UX Design for Mobile App",
			Description: "Create a modern and user-friendly interface for the new student project tracking application.",
			Assignee:    &emily,
			DueDate:     date(2024, time.July, 20),
			ProjectID:   projectID,
			CreatedDate: now,
			Comments: []Comment{
				{ID: uuid.NewString(), Text: "Initial project scope and objectives defined.", Author: emily, CreatedDate: now.Add(-2 * day)},
				{ID: uuid.NewString(), Text: "Resources and tools required for the project identified.", Author: david, CreatedDate: now.Add(-1 * day)},
			},
		},
		{
			ID:          uuid.NewString(),
			Title:       "Backend API Development",
			Description: "Develop RESTful API endpoints for project and task management.",
			Assignee:    &david,
			DueDate:     date(2024, time.August, 15),
			ProjectID:   projectID,
			CreatedDate: now,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Database Schema Design",
			Description: "Design and implement database schema for storing projects, tasks, and user data.",
			Assignee:    &emily,
			DueDate:     date(2024, time.July, 30),
			IsCompleted: true,
			ProjectID:   projectID,
			CreatedDate: now,
		},
	}
}

// SampleWeeklyData is the five-week activity series of the analytics screen.
func SampleWeeklyData() []WeekData {
	return []WeekData{
		{Week: 1, Value: 45},
		{Week: 2, Value: 35},
		{Week: 3, Value: 28},
		{Week: 4, Value: 55},
		{Week: 5, Value: 30},
	}
}
