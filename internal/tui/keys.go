package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Commit key.Binding
	Delete key.Binding
	Focus  key.Binding
	Blur   key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Commit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Delete: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("⌫", "delete")),
		Focus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		Blur:   key.NewBinding(key.WithKeys("esc", "shift+tab"), key.WithHelp("esc", "blur")),
		Reset:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "clear")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Delete, k.Focus, k.Blur, k.Reset, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Commit, k.Delete, k.Reset}, {k.Focus, k.Blur, k.Quit}}
}
