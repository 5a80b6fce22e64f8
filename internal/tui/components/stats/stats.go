// Package stats renders the per-habit statistics panel.
package stats

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	nameStyle = lipgloss.NewStyle().Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	barStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// Row is one habit's derived statistics, computed by the parent from the store.
type Row struct {
	Name          string
	Streak        int
	WeekRate      float64
	MonthRate     float64
	GoalCompleted int
	GoalCount     int
}

type Model struct {
	rows []Row
}

func New(rows []Row) Model {
	return Model{rows: rows}
}

func (m *Model) SetRows(rows []Row) {
	m.rows = rows
}

func (m Model) View() string {
	if len(m.rows) == 0 {
		return "No habits yet."
	}

	var b strings.Builder
	for _, row := range m.rows {
		b.WriteString(nameStyle.Render(row.Name))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  streak  %d day(s)\n", row.Streak))
		b.WriteString(fmt.Sprintf("  7 days  %s %3.0f%%\n", bar(row.WeekRate), row.WeekRate*100))
		b.WriteString(fmt.Sprintf("  30 days %s %3.0f%%\n", bar(row.MonthRate), row.MonthRate*100))
		b.WriteString(dimStyle.Render(fmt.Sprintf("  total done %d (goal %d/day)", row.GoalCompleted, row.GoalCount)))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func bar(rate float64) string {
	const width = 20
	filled := int(rate*width + 0.5)
	if filled > width {
		filled = width
	}
	return barStyle.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", width-filled))
}
