package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/taskflow/internal/model"
)

type jsonExport struct {
	ExportedAt string        `json:"exported_at"`
	Count      int           `json:"count"`
	Projects   []jsonProject `json:"projects"`
}

type jsonProject struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	Status         string `json:"status"`
	Completed      bool   `json:"completed"`
	CreatedDate    string `json:"created_date"`
	DueDate        string `json:"due_date,omitempty"`
	TasksCount     int    `json:"tasks_count"`
	CompletedTasks int    `json:"completed_tasks"`
	Progress       string `json:"progress"`
}

func ToJSON(projects []model.Project, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(projects),
	}

	for _, p := range projects {
		export.Projects = append(export.Projects, jsonProject{
			ID:             p.ID,
			Title:          p.Title,
			Description:    p.Description,
			Status:         p.Status.String(),
			Completed:      p.IsCompleted,
			CreatedDate:    p.CreatedDate.Local().Format(time.RFC3339),
			DueDate:        formatDue(p.DueDate),
			TasksCount:     p.TasksCount,
			CompletedTasks: p.CompletedTasksCount,
			Progress:       formatProgress(p.ProgressPercentage()),
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
