package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	PrevDay   key.Binding
	NextDay   key.Binding
	Today     key.Binding
	Toggle    key.Binding
	Add       key.Binding
	Delete    key.Binding
	Submit    key.Binding
	Cancel    key.Binding
	Tab       key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Apply     key.Binding
	PrevTheme key.Binding
	NextTheme key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "delete"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch tab"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next month"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "use theme"),
		),
		PrevTheme: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev theme"),
		),
		NextTheme: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// tabKeys adapts keyMap to help.KeyMap for the bindings of one tab.
type tabKeys struct {
	keys   keyMap
	tab    Tab
	adding bool
}

func (k tabKeys) ShortHelp() []key.Binding {
	switch {
	case k.adding:
		return []key.Binding{k.keys.Submit, k.keys.Cancel}
	case k.tab == TabSettings:
		return []key.Binding{k.keys.Up, k.keys.Down, k.keys.Apply, k.keys.NextTheme, k.keys.PrevMonth, k.keys.NextMonth, k.keys.Tab, k.keys.Quit}
	default:
		return []key.Binding{k.keys.Toggle, k.keys.Add, k.keys.Delete, k.keys.PrevDay, k.keys.NextDay, k.keys.Help, k.keys.Quit}
	}
}

func (k tabKeys) FullHelp() [][]key.Binding {
	switch {
	case k.adding:
		return [][]key.Binding{k.ShortHelp()}
	case k.tab == TabSettings:
		return [][]key.Binding{
			{k.keys.Up, k.keys.Down, k.keys.Apply},
			{k.keys.PrevTheme, k.keys.NextTheme},
			{k.keys.PrevMonth, k.keys.NextMonth},
			{k.keys.Tab, k.keys.Help, k.keys.Quit},
		}
	default:
		return [][]key.Binding{
			{k.keys.Up, k.keys.Down, k.keys.Toggle},
			{k.keys.Add, k.keys.Delete},
			{k.keys.PrevDay, k.keys.NextDay, k.keys.Today},
			{k.keys.Tab, k.keys.Help, k.keys.Quit},
		}
	}
}
