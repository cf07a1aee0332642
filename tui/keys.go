package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the keyboard controls. It implements help.KeyMap.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Start   key.Binding
	End     key.Binding
	Barrier key.Binding
	Erase   key.Binding
	Run     key.Binding
	Clear   key.Binding
	Reset   key.Binding
	Speed   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Start:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "set start")),
		End:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "set end")),
		Barrier: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "toggle barrier")),
		Erase:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "erase cell")),
		Run:     key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "run/stop")),
		Clear:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear search")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset grid")),
		Speed: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"),
			key.WithHelp("1-0", "speed"),
		),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Start, k.End, k.Barrier, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Start, k.End, k.Barrier, k.Erase},
		{k.Run, k.Clear, k.Reset, k.Speed},
		{k.Help, k.Quit},
	}
}
