package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Send    key.Binding
	New     key.Binding
	Delete  key.Binding
	Prev    key.Binding
	Next    key.Binding
	Dismiss key.Binding
	Mind    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Send:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		New:     key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new conversation")),
		Delete:  key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "delete conversation")),
		Prev:    key.NewBinding(key.WithKeys("ctrl+up"), key.WithHelp("ctrl+↑", "previous")),
		Next:    key.NewBinding(key.WithKeys("ctrl+down"), key.WithHelp("ctrl+↓", "next")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		Mind:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "toggle thoughts")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) helpLine() string {
	bindings := []key.Binding{k.Send, k.New, k.Delete, k.Prev, k.Next, k.Dismiss, k.Mind, k.Quit}
	line := ""
	for i, binding := range bindings {
		if i > 0 {
			line += " · "
		}
		help := binding.Help()
		line += help.Key + " " + help.Desc
	}

	return line
}
