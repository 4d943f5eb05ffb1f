package goals

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AadarshCanCode/Wellnest/internal/analytics"
	"github.com/AadarshCanCode/Wellnest/internal/models"
)

type AddGoalMsg struct{}

type ToggleGoalMsg struct {
	ID string
}

type DeleteGoalMsg struct {
	ID    string
	Title string
}

type Item struct {
	Goal     models.Goal
	Status   models.GoalStatus
	DaysLeft int
}

func (i Item) Title() string {
	return fmt.Sprintf("%s %s", i.Status.Emoji(), i.Goal.Title)
}

func (i Item) Description() string {
	var due string
	switch {
	case i.Status == models.GoalCompleted:
		due = "completed"
	case i.DaysLeft < 0:
		due = fmt.Sprintf("%d days overdue", -i.DaysLeft)
	case i.DaysLeft == 0:
		due = "due today"
	default:
		due = fmt.Sprintf("%d days left", i.DaysLeft)
	}
	if i.Goal.Description != "" {
		return fmt.Sprintf("%s | %s | %s", i.Goal.Deadline, due, i.Goal.Description)
	}
	return fmt.Sprintf("%s | %s", i.Goal.Deadline, due)
}

func (i Item) FilterValue() string { return i.Goal.Title }

type KeyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("x", " "),
			key.WithHelp("x/space", "complete"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Goals"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetGoals(goals []models.Goal, now time.Time) {
	items := make([]list.Item, len(goals))
	for i, g := range goals {
		items[i] = Item{
			Goal:     g,
			Status:   analytics.GoalStatus(g, now),
			DaysLeft: analytics.DaysUntil(g.Deadline, now),
		}
	}
	m.list.SetItems(items)
}

func (m Model) Items() []list.Item {
	return m.list.Items()
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Filtering() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddGoalMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleGoalMsg{ID: i.Goal.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteGoalMsg{ID: i.Goal.ID, Title: i.Goal.Title} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && !m.Filtering() {
		return "\n  No goals yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
