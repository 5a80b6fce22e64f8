package habitlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"habitkeep/internal/models"
)

type ToggleMsg struct {
	ID string
}

type AddMsg struct{}

type EditMsg struct {
	ID string
}

type DeleteMsg struct {
	ID string
}

// MoveMsg asks the parent to shift a habit up or down one display slot.
type MoveMsg struct {
	ID    string
	Delta int
}

type Item struct {
	Habit  models.Habit
	Done   bool
	Streak int
}

func (i Item) Title() string {
	marker := "○"
	if i.Done {
		marker = "✓"
	}
	return fmt.Sprintf("%s %s", marker, i.Habit.Name)
}

func (i Item) Description() string {
	desc := "not completed today"
	if i.Done {
		desc = "completed today"
	}
	if i.Streak > 0 {
		desc += fmt.Sprintf(" · %d day streak", i.Streak)
	}
	return desc
}

func (i Item) FilterValue() string { return i.Habit.Name }

type KeyMap struct {
	Toggle   key.Binding
	Add      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle done"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "move up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J"),
			key.WithHelp("J", "move down"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(items []Item, width, height int) Model {
	l := list.New(toListItems(items), list.NewDefaultDelegate(), width, height)
	l.Title = "Today"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	return Model{list: l, keys: DefaultKeyMap()}
}

func toListItems(items []Item) []list.Item {
	out := make([]list.Item, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// SetItems replaces the list contents, keeping the cursor in range.
func (m *Model) SetItems(items []Item) {
	m.list.SetItems(toListItems(items))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Selected returns the habit under the cursor, if any.
func (m Model) Selected() (models.Habit, bool) {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return models.Habit{}, false
	}
	return item.Habit, true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		selected, hasSelection := m.Selected()
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if hasSelection {
				id := selected.ID
				return m, func() tea.Msg { return ToggleMsg{ID: id} }
			}
		case key.Matches(msg, m.keys.Edit):
			if hasSelection {
				id := selected.ID
				return m, func() tea.Msg { return EditMsg{ID: id} }
			}
		case key.Matches(msg, m.keys.Delete):
			if hasSelection {
				id := selected.ID
				return m, func() tea.Msg { return DeleteMsg{ID: id} }
			}
		case key.Matches(msg, m.keys.MoveUp):
			if hasSelection {
				id := selected.ID
				m.list.CursorUp()
				return m, func() tea.Msg { return MoveMsg{ID: id, Delta: -1} }
			}
		case key.Matches(msg, m.keys.MoveDown):
			if hasSelection {
				id := selected.ID
				m.list.CursorDown()
				return m, func() tea.Msg { return MoveMsg{ID: id, Delta: 1} }
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

// Keys exposes the bindings for the help view.
func (m Model) Keys() KeyMap {
	return m.keys
}
