// Package logger builds the application logger. Output goes to a file so it
// never interferes with the TUI; an empty path discards everything.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

type Config struct {
	Level    string // DEBUG, INFO, WARN, ERROR
	FilePath string
}

// ParseLevel converts a config string to a level, defaulting to INFO.
func ParseLevel(s string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// New opens the log file (creating its directory) and returns the logger
// together with the closer of the underlying file.
func New(cfg Config) (*log.Logger, io.Closer, error) {
	var w io.Writer = io.Discard
	var closer io.Closer = nopCloser{}

	if cfg.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	l := log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(cfg.Level),
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05.000",
		Prefix:          "taskflow",
	})
	return l, closer, nil
}

// Discard returns a logger that drops everything, for tests and defaults.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// DefaultPath returns ~/.config/taskflow/logs/taskflow-<date>.log
func DefaultPath() string {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	name := fmt.Sprintf("taskflow-%s.log", time.Now().Format("2006-01-02"))
	return filepath.Join(cfg, "taskflow", "logs", name)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
