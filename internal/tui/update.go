package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"habitkeep/internal/habits"
	"habitkeep/internal/tui/components/habitlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.habitList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil
	}

	switch m.state {
	case stateForm:
		return m.updateForm(msg)
	case stateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.state = (m.state + 1) % 3
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.state = (m.state + 2) % 3
			return m, nil
		}
	}

	switch msg := msg.(type) {
	case habitlist.ToggleMsg:
		if err := m.store.ToggleCompletion(msg.ID, time.Now()); err != nil {
			m.notice = err.Error()
		} else {
			m.notice = ""
		}
		m.refresh()
		return m, nil

	case habitlist.AddMsg:
		m.editing = nil
		m.habitForm = &habitFormModel{GoalCount: "1", Color: "blue"}
		m.form = newHabitForm(m.habitForm)
		m.state = stateForm
		return m, m.form.Init()

	case habitlist.EditMsg:
		habit, err := m.store.Habit(msg.ID)
		if err != nil {
			m.notice = err.Error()
			return m, nil
		}
		m.editing = &habit
		m.habitForm = &habitFormModel{
			Name:        habit.Name,
			Description: habit.Description,
			GoalCount:   strconv.Itoa(habit.GoalCount),
			Color:       habit.Color,
		}
		m.form = newHabitForm(m.habitForm)
		m.state = stateForm
		return m, m.form.Init()

	case habitlist.DeleteMsg:
		habit, err := m.store.Habit(msg.ID)
		if err != nil {
			m.notice = err.Error()
			return m, nil
		}
		m.deleteTarget = habit
		m.state = stateConfirmDelete
		return m, nil

	case habitlist.MoveMsg:
		m.moveHabit(msg.ID, msg.Delta)
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case stateToday:
		m.habitList, cmd = m.habitList.Update(msg)
	case stateCalendar:
		m.calendar, cmd = m.calendar.Update(msg)
	}
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = stateToday
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		goal, err := strconv.Atoi(m.habitForm.GoalCount)
		if err != nil {
			goal = 1
		}
		if m.editing != nil {
			habit := *m.editing
			habit.Name = m.habitForm.Name
			habit.Description = m.habitForm.Description
			habit.GoalCount = goal
			habit.Color = m.habitForm.Color
			if err := m.store.UpdateHabit(habit); err != nil {
				m.notice = err.Error()
			}
		} else {
			draft := habits.HabitDraft{
				Name:        m.habitForm.Name,
				Description: m.habitForm.Description,
				GoalCount:   goal,
				Color:       m.habitForm.Color,
			}
			if _, err := m.store.AddHabit(draft); err != nil {
				m.notice = err.Error()
			}
		}
		m.refresh()
		m.state = stateToday
	case huh.StateAborted:
		m.state = stateToday
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			if err := m.store.DeleteHabit(m.deleteTarget.ID); err != nil {
				m.notice = err.Error()
			}
			m.refresh()
			m.state = stateToday
		case "n", "N", "esc":
			m.state = stateToday
		}
	}
	return m, nil
}

// moveHabit shifts a habit one slot and commits the permutation.
func (m *Model) moveHabit(id string, delta int) {
	all := m.store.Habits()
	ids := make([]string, len(all))
	from := -1
	for i, h := range all {
		ids[i] = h.ID
		if h.ID == id {
			from = i
		}
	}
	to := from + delta
	if from < 0 || to < 0 || to >= len(ids) {
		return
	}
	ids[from], ids[to] = ids[to], ids[from]
	if err := m.store.ReorderHabits(ids); err != nil {
		m.notice = err.Error()
	}
}
