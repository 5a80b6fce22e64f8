package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"habitkeep/internal/habits"
	"habitkeep/internal/models"
	"habitkeep/internal/tui/components/calendar"
	"habitkeep/internal/tui/components/habitlist"
	"habitkeep/internal/tui/components/stats"
)

type sessionState int

const (
	stateToday sessionState = iota
	stateCalendar
	stateStats
	stateForm
	stateConfirmDelete
)

type habitFormModel struct {
	Name        string
	Description string
	GoalCount   string
	Color       string
}

type Model struct {
	store *habits.Store

	state    sessionState
	keys     KeyMap
	help     help.Model
	quitting bool
	width    int
	height   int

	habitList habitlist.Model
	calendar  calendar.Model
	stats     stats.Model

	form         *huh.Form
	habitForm    *habitFormModel
	editing      *models.Habit
	deleteTarget models.Habit
	notice       string
}

func NewModel(store *habits.Store) Model {
	m := Model{
		store: store,
		state: stateToday,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
	m.habitList = habitlist.New(m.listItems(), 0, 0)
	m.calendar = calendar.New(store.Habits(), store.Settings().WeekStart, store.IsCompletedForDay)
	m.stats = stats.New(m.statsRows())
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) listItems() []habitlist.Item {
	now := time.Now()
	all := m.store.Habits()
	items := make([]habitlist.Item, len(all))
	for i, h := range all {
		items[i] = habitlist.Item{
			Habit:  h,
			Done:   m.store.IsCompletedForDay(h.ID, now),
			Streak: m.store.CurrentStreak(h.ID),
		}
	}
	return items
}

func (m Model) statsRows() []stats.Row {
	all := m.store.Habits()
	rows := make([]stats.Row, len(all))
	for i, h := range all {
		completed, goal := m.store.GoalProgress(h.ID)
		rows[i] = stats.Row{
			Name:          h.Name,
			Streak:        m.store.CurrentStreak(h.ID),
			WeekRate:      m.store.CompletionRate(h.ID, 7),
			MonthRate:     m.store.CompletionRate(h.ID, 30),
			GoalCompleted: completed,
			GoalCount:     goal,
		}
	}
	return rows
}

// refresh re-derives every component's data from the store.
func (m *Model) refresh() {
	m.habitList.SetItems(m.listItems())
	m.calendar.SetHabits(m.store.Habits())
	m.stats.SetRows(m.statsRows())
}
