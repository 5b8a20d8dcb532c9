package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the six reader intents and their bindings.
type keyMap struct {
	Pause  key.Binding
	Faster key.Binding
	Slower key.Binding
	Prev   key.Binding
	Next   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/pause"),
		),
		Faster: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "slower"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "back"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "forward"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Faster, k.Slower, k.Prev, k.Next, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
