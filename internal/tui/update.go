package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/AadarshCanCode/Wellnest/internal/logger"
	"github.com/AadarshCanCode/Wellnest/internal/models"
	"github.com/AadarshCanCode/Wellnest/internal/series"
	"github.com/AadarshCanCode/Wellnest/internal/tui/components/entries"
	"github.com/AadarshCanCode/Wellnest/internal/tui/components/goals"
	"github.com/AadarshCanCode/Wellnest/internal/tui/components/habits"
	"github.com/AadarshCanCode/Wellnest/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil
	}

	switch m.state {
	case StateAddHabit, StateWriteEntry, StateAddGoal:
		return m.updateForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if handled, cmd := m.handleComponentMsg(msg); handled {
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok && !m.filtering() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.status = ""
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.status = ""
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case StateHabits:
		m.habitsModel, cmd = m.habitsModel.Update(msg)
	case StateJournal:
		m.journalModel, cmd = m.journalModel.Update(msg)
	case StateGoals:
		m.goalsModel, cmd = m.goalsModel.Update(msg)
	case StateInsights:
		m.insights, cmd = m.insights.Update(msg)
	}
	return m, cmd
}

func (m Model) filtering() bool {
	switch m.state {
	case StateHabits:
		return m.habitsModel.Filtering()
	case StateJournal:
		return m.journalModel.Filtering()
	case StateGoals:
		return m.goalsModel.Filtering()
	}
	return false
}

func (m *Model) resize() {
	// tabs, status line, help and margins
	h := m.height - 6
	if h < 1 {
		h = 1
	}
	w := m.width - 4
	if w < 1 {
		w = 1
	}
	m.dashboard.SetSize(w, h)
	m.insights.SetSize(w, h)
	m.habitsModel.SetSize(w, h)
	m.journalModel.SetSize(w, h)
	m.goalsModel.SetSize(w, h)
}

// handleComponentMsg applies the actions requested by the list components.
func (m *Model) handleComponentMsg(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case habits.AddHabitMsg:
		m.habitForm = &HabitFormModel{Category: models.CategoryHealth}
		return true, m.openForm(StateAddHabit, newHabitForm(m.habitForm))

	case habits.ToggleHabitMsg:
		habit, done, err := m.svc.ToggleHabit(msg.ID, m.svc.Today())
		if err != nil {
			m.fail("toggle habit", err)
			return true, nil
		}
		if done {
			m.status = fmt.Sprintf("✓ %s done for today", habit.Name)
		} else {
			m.status = fmt.Sprintf("Unmarked %s", habit.Name)
		}
		m.refresh()
		return true, nil

	case habits.DeleteHabitMsg:
		m.confirmDelete(StateHabits, msg.ID, fmt.Sprintf("habit %q", msg.Name))
		return true, nil

	case entries.WriteEntryMsg:
		m.entryForm = &EntryFormModel{}
		return true, m.openForm(StateWriteEntry, newEntryForm(m.entryForm))

	case entries.DeleteEntryMsg:
		m.confirmDelete(StateJournal, msg.ID, "journal entry")
		return true, nil

	case goals.AddGoalMsg:
		m.goalForm = &GoalFormModel{Deadline: defaultDeadline()}
		return true, m.openForm(StateAddGoal, newGoalForm(m.goalForm, m.svc.Now()))

	case goals.ToggleGoalMsg:
		goal, err := m.svc.ToggleGoal(msg.ID)
		if err != nil {
			m.fail("toggle goal", err)
			return true, nil
		}
		if goal.Completed {
			m.status = fmt.Sprintf("🎉 Completed %s", goal.Title)
		} else {
			m.status = fmt.Sprintf("Reopened %s", goal.Title)
		}
		m.refresh()
		return true, nil

	case goals.DeleteGoalMsg:
		m.confirmDelete(StateGoals, msg.ID, fmt.Sprintf("goal %q", msg.Title))
		return true, nil
	}
	return false, nil
}

func (m *Model) fail(action string, err error) {
	logger.Error("TUI action failed", "action", action, "error", err)
	m.status = fmt.Sprintf("Failed to %s: %v", action, err)
}

func (m *Model) openForm(state SessionState, form *huh.Form) tea.Cmd {
	m.previousState = m.state
	m.state = state
	m.form = form
	m.formError = ""
	return m.form.Init()
}

func (m *Model) closeForm() {
	m.state = m.previousState
	m.form = nil
	m.formError = ""
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.closeForm()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.submitForm(); err != nil {
			// stay in the form so the input can be corrected
			m.formError = err.Error()
			m.form.State = huh.StateNormal
			return m, cmd
		}
		m.closeForm()
		m.refresh()
	case huh.StateAborted:
		m.closeForm()
	}
	return m, cmd
}

// submitForm saves the record described by the active form.
func (m *Model) submitForm() error {
	switch m.state {
	case StateAddHabit:
		habit, err := m.svc.AddHabit(m.habitForm.Name, m.habitForm.Category)
		if err != nil {
			return err
		}
		m.status = fmt.Sprintf("Added habit %s %s", habit.Category.Emoji(), habit.Name)
	case StateWriteEntry:
		entry, err := m.svc.AddEntry(m.entryForm.Content, m.entryForm.Mood, m.entryForm.Prompt)
		if err != nil {
			return err
		}
		m.status = fmt.Sprintf("Entry saved successfully! 💚 %s %s",
			entry.Sentiment.Emoji(), series.Capitalize(string(entry.Sentiment)))
	case StateAddGoal:
		deadline, err := utils.ResolveDay(strings.TrimSpace(m.goalForm.Deadline), m.svc.Now())
		if err != nil {
			return err
		}
		goal, err := m.svc.AddGoal(m.goalForm.Title, m.goalForm.Description, deadline)
		if err != nil {
			return err
		}
		m.status = fmt.Sprintf("Added goal %s (due %s)", goal.Title, goal.Deadline)
	}
	return nil
}

func (m *Model) confirmDelete(kind SessionState, id, label string) {
	m.toDelete = &pendingDelete{kind: kind, id: id, label: label}
	m.previousState = m.state
	m.state = StateConfirmDelete
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Confirm):
		if err := m.deletePending(); err != nil {
			m.fail("delete", err)
		} else {
			m.status = "Deleted " + m.toDelete.label
			m.refresh()
		}
	case key.Matches(keyMsg, m.keys.Cancel):
	default:
		return m, nil
	}
	m.state = m.previousState
	m.toDelete = nil
	return m, nil
}

func (m *Model) deletePending() error {
	var err error
	switch m.toDelete.kind {
	case StateHabits:
		_, err = m.svc.DeleteHabit(m.toDelete.id)
	case StateJournal:
		_, err = m.svc.DeleteEntry(m.toDelete.id)
	case StateGoals:
		_, err = m.svc.DeleteGoal(m.toDelete.id)
	}
	return err
}
