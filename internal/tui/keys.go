package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/sadopc/taskflow/internal/nav"
)

type keyMap struct {
	New          key.Binding
	Search       key.Binding
	Filter       key.Binding
	Sort         key.Binding
	Board        key.Binding
	Analytics    key.Binding
	Export       key.Binding
	Toggle       key.Binding
	Comment      key.Binding
	Profile      key.Binding
	Notify       key.Binding
	Theme        key.Binding
	SignOut      key.Binding
	SwitchSignUp key.Binding
	Tab1         key.Binding
	Tab2         key.Binding
	Tab3         key.Binding
	Tab          key.Binding
	Help         key.Binding
	Enter        key.Binding
	Back         key.Binding
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	Quit         key.Binding
}

var keys = keyMap{
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Filter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "filter"),
	),
	Sort: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "sort"),
	),
	Board: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "board"),
	),
	Analytics: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "analytics"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle done"),
	),
	Comment: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "comment"),
	),
	Profile: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "profile"),
	),
	Notify: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "notifications"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle theme"),
	),
	SignOut: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sign out"),
	),
	SwitchSignUp: key.NewBinding(
		key.WithKeys("ctrl+n"),
		key.WithHelp("ctrl+n", "sign up"),
	),
	Tab1: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "projects"),
	),
	Tab2: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "notifications"),
	),
	Tab3: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "settings"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next tab"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Enter, k.Back, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab1, k.Tab2, k.Tab3, k.Tab},
		{k.Up, k.Down, k.Enter, k.Back, k.Quit},
	}
}

// screenKeys is the help.KeyMap shown in the footer for one screen.
type screenKeys struct {
	local []key.Binding
}

func (s screenKeys) ShortHelp() []key.Binding {
	return append(append([]key.Binding{}, s.local...), keys.Back, keys.Help, keys.Quit)
}

func (s screenKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		s.local,
		{keys.Tab1, keys.Tab2, keys.Tab3, keys.Tab},
		{keys.Up, keys.Down, keys.Left, keys.Right},
		{keys.Enter, keys.Back, keys.Help, keys.Quit},
	}
}

func (k keyMap) forScreen(s nav.Screen) screenKeys {
	switch s {
	case nav.ScreenLogin:
		return screenKeys{local: []key.Binding{k.SwitchSignUp}}
	case nav.ScreenProjects:
		return screenKeys{local: []key.Binding{k.Search, k.Filter, k.Sort, k.Board, k.Analytics, k.New, k.Export}}
	case nav.ScreenSettings:
		return screenKeys{local: []key.Binding{k.Enter, k.Profile, k.Notify, k.Theme, k.SignOut}}
	case nav.ScreenProjectBoard:
		return screenKeys{local: []key.Binding{k.Left, k.Right, k.Toggle, k.New}}
	case nav.ScreenTaskDetail:
		return screenKeys{local: []key.Binding{k.Toggle, k.Comment}}
	case nav.ScreenProjectDetail:
		return screenKeys{local: []key.Binding{k.Enter, k.Board, k.Analytics}}
	}
	return screenKeys{local: []key.Binding{k.Enter}}
}
