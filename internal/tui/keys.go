package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NewSnippet key.Binding
	NextLang   key.Binding
	NextLevel  key.Binding
	Copy       key.Binding
	Sound      key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NewSnippet: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new snippet")),
		NextLang:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "language")),
		NextLevel:  key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "level")),
		Copy:       key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
		Sound:      key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "sound")),
		Quit:       key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewSnippet, k.NextLang, k.NextLevel, k.Copy, k.Sound, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
