package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next       key.Binding
	Previous   key.Binding
	RevealDown key.Binding
	RevealUp   key.Binding
	Copy       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap(drawers bool) keyMap {
	km := keyMap{
		Next:       key.NewBinding(key.WithKeys("right", "l", "n", " "), key.WithHelp("→/l", "next")),
		Previous:   key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/h", "previous")),
		RevealDown: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "open drawer")),
		RevealUp:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "close drawer")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy slide")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
	if !drawers {
		km.RevealDown.SetEnabled(false)
		km.RevealUp.SetEnabled(false)
	}
	return km
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.RevealDown, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next},
		{k.RevealDown, k.RevealUp},
		{k.Copy, k.Help, k.Quit},
	}
}
