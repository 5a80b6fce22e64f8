package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev view"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap for the footer.
func (m Model) ShortHelp() []key.Binding {
	bindings := []key.Binding{m.keys.NextTab, m.keys.Quit}
	if m.state == stateToday {
		lk := m.habitList.Keys()
		bindings = append([]key.Binding{lk.Toggle, lk.Add, lk.Edit, lk.Delete, lk.MoveUp, lk.MoveDown}, bindings...)
	}
	return bindings
}

// FullHelp implements help.KeyMap.
func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{m.ShortHelp()}
}
