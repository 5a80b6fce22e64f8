// Package calendar renders a month grid with a habit's completed days marked.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"habitkeep/internal/dateutil"
	"habitkeep/internal/models"
)

type KeyMap struct {
	PrevMonth key.Binding
	NextMonth key.Binding
	PrevHabit key.Binding
	NextHabit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevMonth: key.NewBinding(
			key.WithKeys("p", "left"),
			key.WithHelp("p/←", "prev month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n/→", "next month"),
		),
		PrevHabit: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "prev habit"),
		),
		NextHabit: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "next habit"),
		),
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	todayStyle  = lipgloss.NewStyle().Underline(true)
)

// completedFunc answers whether a habit was completed on a day; the parent
// binds it to the store so this component stays presentation-only.
type completedFunc func(habitID string, day time.Time) bool

type Model struct {
	keys      KeyMap
	habits    []models.Habit
	selected  int
	year      int
	month     time.Month
	weekStart time.Weekday
	completed completedFunc
}

func New(habits []models.Habit, weekStart time.Weekday, completed completedFunc) Model {
	now := time.Now()
	return Model{
		keys:      DefaultKeyMap(),
		habits:    habits,
		year:      now.Year(),
		month:     now.Month(),
		weekStart: weekStart,
		completed: completed,
	}
}

// SetHabits refreshes the habit cycle, clamping the selection.
func (m *Model) SetHabits(habits []models.Habit) {
	m.habits = habits
	if m.selected >= len(habits) {
		m.selected = 0
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.PrevMonth):
			m.month--
			if m.month < time.January {
				m.month = time.December
				m.year--
			}
		case key.Matches(msg, m.keys.NextMonth):
			m.month++
			if m.month > time.December {
				m.month = time.January
				m.year++
			}
		case key.Matches(msg, m.keys.PrevHabit):
			if len(m.habits) > 0 {
				m.selected = (m.selected - 1 + len(m.habits)) % len(m.habits)
			}
		case key.Matches(msg, m.keys.NextHabit):
			if len(m.habits) > 0 {
				m.selected = (m.selected + 1) % len(m.habits)
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.habits) == 0 {
		return "No habits yet."
	}
	habit := m.habits[m.selected]

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s — %s %d", habit.Name, m.month, m.year)))
	b.WriteString("\n\n")

	for i := 0; i < 7; i++ {
		day := (m.weekStart + time.Weekday(i)) % 7
		b.WriteString(dimStyle.Render(fmt.Sprintf("%4s", day.String()[:3])))
	}
	b.WriteString("\n")

	now := time.Now()
	grid := dateutil.MonthGrid(m.year, m.month, m.weekStart)
	for i, day := range grid {
		cell := fmt.Sprintf("%4d", day.Day())
		switch {
		case day.Month() != m.month:
			cell = dimStyle.Render(cell)
		case m.completed != nil && m.completed(habit.ID, day):
			cell = doneStyle.Render(cell)
		}
		if dateutil.SameDay(day, now) {
			cell = todayStyle.Render(cell)
		}
		b.WriteString(cell)
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("j/k habit · n/p month"))
	return b.String()
}
