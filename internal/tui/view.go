package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateDashboard:
		content = docStyle.Render(m.dashboard.View())
	case StateHabits:
		content = docStyle.Render(m.habitsModel.View())
	case StateJournal:
		content = docStyle.Render(m.journalModel.View())
	case StateGoals:
		content = docStyle.Render(m.goalsModel.View())
	case StateInsights:
		content = docStyle.Render(m.insights.View())
	case StateAddHabit, StateWriteEntry, StateAddGoal:
		content = m.viewForm()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewStatus(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	active := m.state
	if active >= tabCount {
		active = m.previousState
	}
	var tabs []string
	for i, title := range tabTitles {
		if active == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	if m.validationWarning != "" && m.status == "" {
		return warnStyle.Padding(0, 1).Render(m.validationWarning)
	}
	return statusStyle.Render(m.status)
}

func (m Model) viewForm() string {
	view := m.form.View()
	if m.formError != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, view, dangerStyle.Render(m.formError))
	}
	return docStyle.Render(view)
}

func (m Model) viewConfirmDelete() string {
	question := "Are you sure you want to delete this?"
	if m.toDelete != nil {
		question = "Are you sure you want to delete " + m.toDelete.label + "?"
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(question),
			mutedStyle.Render("This action cannot be undone."),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
