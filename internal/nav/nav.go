// Package nav tracks which screen is showing. Overlays stack on top of the
// main tabs; Back closes them in a fixed priority order rather than the order
// they were opened.
package nav

import (
	"fmt"

	"github.com/sadopc/taskflow/internal/signal"
)

type Route int

const (
	RouteLogin Route = iota
	RouteSignUp
	RouteMain
)

type Tab int

const (
	TabProjects Tab = iota
	TabNotifications
	TabSettings
)

// TabCount is the number of main tabs.
const TabCount = 3

type Overlay uint8

// Overlays in Back priority, highest first.
const (
	NotificationSettings Overlay = 1 << iota
	ProfileEdit
	ProjectDetail
	TaskDetail
	Analytics
	ProjectBoard
)

var priority = []Overlay{
	NotificationSettings,
	ProfileEdit,
	ProjectDetail,
	TaskDetail,
	Analytics,
	ProjectBoard,
}

var overlayNames = map[Overlay]string{
	NotificationSettings: "notification-settings",
	ProfileEdit:          "profile-edit",
	ProjectDetail:        "project-detail",
	TaskDetail:           "task-detail",
	Analytics:            "analytics",
	ProjectBoard:         "project-board",
}

func (o Overlay) String() string {
	if s, ok := overlayNames[o]; ok {
		return s
	}
	return fmt.Sprintf("overlay(%d)", uint8(o))
}

// Screen is what the UI should render.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenSignUp
	ScreenProjects
	ScreenNotifications
	ScreenSettings
	ScreenNotificationSettings
	ScreenProfileEdit
	ScreenProjectDetail
	ScreenTaskDetail
	ScreenAnalytics
	ScreenProjectBoard
)

var screenNames = [...]string{
	"login", "sign-up", "projects", "notifications", "settings",
	"notification-settings", "profile-edit", "project-detail",
	"task-detail", "analytics", "project-board",
}

func (s Screen) String() string {
	if int(s) >= 0 && int(s) < len(screenNames) {
		return screenNames[s]
	}
	return "unknown"
}

var overlayScreens = map[Overlay]Screen{
	NotificationSettings: ScreenNotificationSettings,
	ProfileEdit:          ScreenProfileEdit,
	ProjectDetail:        ScreenProjectDetail,
	TaskDetail:           ScreenTaskDetail,
	Analytics:            ScreenAnalytics,
	ProjectBoard:         ScreenProjectBoard,
}

type State struct {
	Route     Route
	Tab       Tab
	Open      Overlay // bit set
	ProjectID string
	TaskID    string
}

func (s State) IsOpen(o Overlay) bool { return s.Open&o != 0 }

// Top returns the highest-priority open overlay.
func (s State) Top() (Overlay, bool) {
	for _, o := range priority {
		if s.IsOpen(o) {
			return o, true
		}
	}
	return 0, false
}

func (s State) Current() Screen {
	switch s.Route {
	case RouteLogin:
		return ScreenLogin
	case RouteSignUp:
		return ScreenSignUp
	}
	if o, ok := s.Top(); ok {
		return overlayScreens[o]
	}
	switch s.Tab {
	case TabNotifications:
		return ScreenNotifications
	case TabSettings:
		return ScreenSettings
	}
	return ScreenProjects
}

type Controller struct {
	state *signal.State[State]
}

func New() *Controller {
	return &Controller{state: signal.New(State{})}
}

func (c *Controller) State() State                     { return c.state.Get() }
func (c *Controller) Current() Screen                  { return c.state.Get().Current() }
func (c *Controller) Subscribe(fn func(State)) func() { return c.state.Subscribe(fn) }

func (c *Controller) update(fn func(*State)) {
	c.state.Update(func(s State) State {
		fn(&s)
		return s
	})
}

// Open shows an overlay without closing any other.
func (c *Controller) Open(o Overlay) {
	c.update(func(s *State) { s.Open |= o })
}

// OpenProject selects a project and opens the given overlay for it
// (ProjectDetail, ProjectBoard or Analytics).
func (c *Controller) OpenProject(id string, o Overlay) {
	c.update(func(s *State) {
		s.ProjectID = id
		s.Open |= o
	})
}

func (c *Controller) OpenTask(id string) {
	c.update(func(s *State) {
		s.TaskID = id
		s.Open |= TaskDetail
	})
}

// Replace closes from and opens to in a single commit. It is how a screen
// reaches an overlay that ranks below it.
func (c *Controller) Replace(from, to Overlay) {
	c.update(func(s *State) {
		s.Open &^= from
		s.Open |= to
	})
}

// ReplaceWithTask closes from and opens TaskDetail for id.
func (c *Controller) ReplaceWithTask(from Overlay, id string) {
	c.update(func(s *State) {
		s.Open &^= from
		s.TaskID = id
		s.Open |= TaskDetail
	})
}

func (c *Controller) Close(o Overlay) {
	c.update(func(s *State) { s.Open &^= o })
}

// Back closes the highest-priority overlay, or returns to the first tab.
// It reports false when there was nowhere to go back to.
func (c *Controller) Back() bool {
	moved := false
	c.update(func(s *State) {
		switch {
		case s.Route == RouteSignUp:
			s.Route = RouteLogin
			moved = true
		case s.Route == RouteLogin:
		default:
			if o, ok := s.Top(); ok {
				s.Open &^= o
				if o == TaskDetail {
					s.TaskID = ""
				}
				moved = true
			} else if s.Tab != TabProjects {
				s.Tab = TabProjects
				moved = true
			}
		}
	})
	return moved
}

// SelectTab switches the main tab. Overlays remain open. An index outside
// [0, TabCount) is a programming error.
func (c *Controller) SelectTab(t Tab) {
	if t < 0 || t >= TabCount {
		panic(fmt.Sprintf("nav: tab %d out of range", t))
	}
	c.update(func(s *State) { s.Tab = t })
}

func (c *Controller) ShowSignUp() {
	c.update(func(s *State) { s.Route = RouteSignUp })
}

// ShowLogin returns to the login route with a fresh main state.
func (c *Controller) ShowLogin() {
	c.state.Set(State{Route: RouteLogin})
}

// EnterMain lands on the first tab with nothing open.
func (c *Controller) EnterMain() {
	c.state.Set(State{Route: RouteMain})
}
