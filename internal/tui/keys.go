package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Collapse  key.Binding
	Half      key.Binding
	Expand    key.Binding
	Resizable key.Binding
	Theme     key.Binding
	Cancel    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Collapse:  key.NewBinding(key.WithKeys("c", "up"), key.WithHelp("c/↑", "collapse")),
		Half:      key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "half")),
		Expand:    key.NewBinding(key.WithKeys("e", "down"), key.WithHelp("e/↓", "expand")),
		Resizable: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "toggle resize")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel drag")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Collapse, k.Half, k.Expand, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Collapse, k.Half, k.Expand},
		{k.Resizable, k.Theme, k.Cancel},
		{k.Help, k.Quit},
	}
}
