package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevExam key.Binding
	NextExam key.Binding
	Tab      key.Binding
	Expand   key.Binding
	Toggle   key.Binding
	Add      key.Binding
	Delete   key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PrevExam: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev exam")),
		NextExam: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next exam")),
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch view")),
		Expand:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "expand")),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add todo")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete todo")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Toggle, k.Expand, k.Add, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevExam, k.NextExam},
		{k.Tab, k.Expand, k.Toggle},
		{k.Add, k.Delete, k.Quit},
	}
}
