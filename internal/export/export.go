// Package export writes the project list to CSV or JSON files.
package export

import (
	"fmt"
	"strings"

	"github.com/sadopc/taskflow/internal/model"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatCSV, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// Write dispatches to ToCSV or ToJSON.
func Write(f Format, projects []model.Project, path string) error {
	switch f {
	case FormatCSV:
		return ToCSV(projects, path)
	case FormatJSON:
		return ToJSON(projects, path)
	}
	return fmt.Errorf("unknown export format %q", f)
}

// DefaultFilename is taskflow-projects-<date>.<ext>.
func DefaultFilename(f Format, date string) string {
	return fmt.Sprintf("taskflow-projects-%s.%s", date, f)
}
