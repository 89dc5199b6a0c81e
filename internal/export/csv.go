package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sadopc/taskflow/internal/model"
)

var csvHeader = []string{"ID", "Title", "Status", "Created", "Due", "Tasks", "Completed", "Progress", "Description"}

func ToCSV(projects []model.Project, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for _, p := range projects {
		row := []string{
			p.ID,
			p.Title,
			p.Status.String(),
			p.CreatedDate.Local().Format(time.RFC3339),
			formatDue(p.DueDate),
			strconv.Itoa(p.TasksCount),
			strconv.Itoa(p.CompletedTasksCount),
			formatProgress(p.ProgressPercentage()),
			p.Description,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func formatDue(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Local().Format(time.DateOnly)
}

// formatProgress renders a 0..1 ratio as a whole percentage.
func formatProgress(ratio float64) string {
	return fmt.Sprintf("%d%%", int(ratio*100+0.5))
}
