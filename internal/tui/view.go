package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case stateToday:
		content = docStyle.Render(m.habitList.View())
	case stateCalendar:
		content = docStyle.Render(m.calendar.View())
	case stateStats:
		content = docStyle.Render(m.stats.View())
	case stateForm:
		content = m.form.View()
	case stateConfirmDelete:
		content = docStyle.Render(m.viewConfirmDelete())
	}

	var notice string
	if m.notice != "" {
		notice = noticeStyle.Render(m.notice)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		notice,
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Today", "Calendar", "Stats"} {
		if m.state == sessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewConfirmDelete() string {
	return fmt.Sprintf(
		"%s\n\nDelete habit %q and all of its history?\n\n%s",
		dangerStyle.Render("Confirm delete"),
		m.deleteTarget.Name,
		"y: delete  n: cancel",
	)
}
