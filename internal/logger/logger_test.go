package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"DEBUG", log.DebugLevel},
		{"info", log.InfoLevel},
		{" WARN ", log.WarnLevel},
		{"ERROR", log.ErrorLevel},
		{"", log.InfoLevel},
		{"loud", log.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "test.log")
	l, closer, err := New(Config{Level: "INFO", FilePath: path})
	if err != nil {
		t.Fatal(err)
	}
	l.Debug("hidden")
	l.Info("hello", "user", "a@b.com")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "hello") || !strings.Contains(out, "a@b.com") {
		t.Fatalf("log missing entry: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatal("debug entry should be filtered at INFO")
	}
}

func TestNewWithoutFile(t *testing.T) {
	l, closer, err := New(Config{})
	if err != nil {
		t.Fatal(err)
	}
	l.Info("dropped")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}
}
