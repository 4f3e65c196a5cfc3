// pattern: Functional Core

package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap groups the picker's bindings for the footer help line.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	Reveal  key.Binding
	Doc     key.Binding
	Search  key.Binding
	Refresh key.Binding
	Clear   key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "navigate"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "navigate"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open claude"),
		),
		Reveal: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "finder"),
		),
		Doc: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "docs"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rescan"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// browsingHelp is the footer binding order while browsing.
func (k keyMap) browsingHelp() []key.Binding {
	return []key.Binding{k.Up, k.Open, k.Reveal, k.Doc, k.Search, k.Refresh, k.Quit}
}

// searchingHelp is the footer binding order while searching.
func (k keyMap) searchingHelp() []key.Binding {
	return []key.Binding{k.Clear, k.Open, k.Up}
}
