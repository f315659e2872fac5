package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every binding the quiz screen understands.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Choose  key.Binding
	Option  key.Binding
	Next    key.Binding
	Restart key.Binding
	Audio   key.Binding
	Dismiss key.Binding
	Quit    key.Binding
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
		Choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "answer"),
		),
		Option: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "pick option"),
		),
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next question"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Audio: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "play audio"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc", " "),
			key.WithHelp("enter", "ok"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// screenKeys implements help.KeyMap for whichever screen is active.
type screenKeys struct {
	bindings []key.Binding
}

// ShortHelp returns the bindings shown in the footer.
func (k screenKeys) ShortHelp() []key.Binding {
	return k.bindings
}

// FullHelp returns the bindings as a single column.
func (k screenKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.bindings}
}

// forScreen selects the bindings that apply right now.
func (k keyMap) forScreen(alert, completed bool) screenKeys {
	switch {
	case alert:
		return screenKeys{bindings: []key.Binding{k.Dismiss, k.Audio, k.Quit}}
	case completed:
		return screenKeys{bindings: []key.Binding{k.Restart, k.Audio, k.Quit}}
	default:
		return screenKeys{bindings: []key.Binding{k.Up, k.Down, k.Choose, k.Option, k.Next, k.Audio, k.Quit}}
	}
}
