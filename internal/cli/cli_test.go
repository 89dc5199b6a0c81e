package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// run executes the CLI against a private database and config.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	base := []string{
		"--db", filepath.Join(dir, "taskflow.db"),
		"--config", filepath.Join(dir, "config.yaml"),
		"--log-file", "",
	}
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(base, args...))
	err := cmd.Execute()
	return out.String(), err
}

// ============================================================
// config
// ============================================================

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "custom.db")
	out, err := run(t, dir, "--db", db, "config", "init")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	cfgPath := filepath.Join(dir, "config.yaml")
	if !strings.Contains(out, cfgPath) {
		t.Fatalf("output = %q", out)
	}
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "db_path: "+db) {
		t.Fatalf("config missing db override:\n%s", data)
	}

	if _, err := run(t, dir, "config", "init"); err == nil {
		t.Fatal("existing config overwritten without --force")
	}
	if _, err := run(t, dir, "config", "init", "--force"); err != nil {
		t.Fatalf("config init --force: %v", err)
	}
}

func TestConfigPath(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, dir, "config", "path")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != filepath.Join(dir, "config.yaml") {
		t.Fatalf("path = %q", out)
	}
}

// ============================================================
// prefs
// ============================================================

func TestPrefsDefaults(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, dir, "prefs", "get", "app_locale")
	if err != nil {
		t.Fatalf("prefs get: %v", err)
	}
	if strings.TrimSpace(out) != "tr" {
		t.Fatalf("locale = %q, want tr", out)
	}
}

func TestPrefsSetPersists(t *testing.T) {
	dir := t.TempDir()
	if _, err := run(t, dir, "prefs", "set", "themeMode", "dark"); err != nil {
		t.Fatalf("prefs set: %v", err)
	}
	out, err := run(t, dir, "prefs", "get", "themeMode")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "dark" {
		t.Fatalf("themeMode = %q, want dark", out)
	}

	out, err = run(t, dir, "prefs", "list")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "themeMode") || !strings.Contains(out, "(stored)") || !strings.Contains(out, "(default)") {
		t.Fatalf("list output:\n%s", out)
	}
}

func TestPrefsSetRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	if _, err := run(t, dir, "prefs", "set", "themeMode", "purple"); err == nil {
		t.Fatal("invalid theme accepted")
	}
	if _, err := run(t, dir, "prefs", "set", "nope", "x"); err == nil {
		t.Fatal("unknown key accepted")
	}
	if _, err := run(t, dir, "prefs", "get", "nope"); err == nil {
		t.Fatal("unknown key accepted by get")
	}
}

func TestPrefsSetLocaleTag(t *testing.T) {
	dir := t.TempDir()
	if _, err := run(t, dir, "prefs", "set", "app_locale", "en-US"); err != nil {
		t.Fatalf("prefs set: %v", err)
	}
	out, _ := run(t, dir, "prefs", "get", "app_locale")
	if strings.TrimSpace(out) != "en" {
		t.Fatalf("locale = %q, want en", out)
	}
}

// ============================================================
// projects
// ============================================================

func TestProjectsList(t *testing.T) {
	out, err := run(t, t.TempDir(), "projects")
	if err != nil {
		t.Fatalf("projects: %v", err)
	}
	if n := strings.Count(out, "\n"); n != 6 {
		t.Fatalf("lines = %d, want 6:\n%s", n, out)
	}
}

func TestProjectsFilterAndSearch(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, dir, "projects", "--filter", "completed")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Marketing Campaign") || strings.Count(out, "\n") != 1 {
		t.Fatalf("completed:\n%s", out)
	}

	out, err = run(t, dir, "projects", "--search", "zzz")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "No projects found.") {
		t.Fatalf("search:\n%s", out)
	}

	if _, err := run(t, dir, "projects", "--sort", "size"); err == nil {
		t.Fatal("unknown sort accepted")
	}
}

// ============================================================
// export
// ============================================================

func TestExportJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")
	out, err := run(t, dir, "export", "--format", "json", "--out", path, "--filter", "active")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "Exported 5 projects") {
		t.Fatalf("output = %q", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(data, &doc); err != nil || doc.Count != 5 {
		t.Fatalf("doc = %+v, %v", doc, err)
	}
}

func TestExportRejectsFormat(t *testing.T) {
	dir := t.TempDir()
	if _, err := run(t, dir, "export", "--format", "xml", "--out", filepath.Join(dir, "x")); err == nil {
		t.Fatal("xml accepted")
	}
}
