package tui

import (
	"fmt"
	"time"

	"github.com/sadopc/taskflow/internal/auth"
	"github.com/sadopc/taskflow/internal/model"
	"github.com/sadopc/taskflow/internal/nav"
)

// tabKeys are the i18n keys of the main tabs, in nav.Tab order.
var tabKeys = []string{"Projects", "Notifications", "Settings"}

// --- Messages ---

type authDoneMsg struct {
	state auth.SessionState
	err   error
}

type projectCreatedMsg struct {
	project model.Project
}

type taskToggledMsg struct {
	task model.Task
}

type statusMsg struct {
	text    string
	isError bool
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format("02 Jan 2006")
}

func formatPercent(ratio float64) string {
	return fmt.Sprintf("%d%%", int(ratio*100+0.5))
}

// isMainTab reports whether s is one of the three tab screens.
func isMainTab(s nav.Screen) bool {
	switch s {
	case nav.ScreenProjects, nav.ScreenNotifications, nav.ScreenSettings:
		return true
	}
	return false
}

func errStatus(op string, err error) statusMsg {
	return statusMsg{text: fmt.Sprintf("%s: %v", op, err), isError: true}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
