package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the widget reacts to
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Blur   key.Binding
	Focus  key.Binding
	Help   key.Binding
	Quit   key.Binding
	Exit   key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave field"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "/", "i", "enter"),
			key.WithHelp("/", "search"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Exit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// EditingHelp returns the bindings shown while typing
func (k KeyMap) EditingHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Blur, k.Quit}
}

// BrowsingHelp returns the bindings shown while the field is blurred
func (k KeyMap) BrowsingHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Help, k.Exit}
}
