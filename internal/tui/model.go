package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/AadarshCanCode/Wellnest/internal/app"
	"github.com/AadarshCanCode/Wellnest/internal/models"
	"github.com/AadarshCanCode/Wellnest/internal/tui/components/entries"
	"github.com/AadarshCanCode/Wellnest/internal/tui/components/goals"
	"github.com/AadarshCanCode/Wellnest/internal/tui/components/habits"
	"github.com/AadarshCanCode/Wellnest/internal/tui/components/report"
	"github.com/AadarshCanCode/Wellnest/internal/validation"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StateHabits
	StateJournal
	StateGoals
	StateInsights
	StateAddHabit
	StateWriteEntry
	StateAddGoal
	StateConfirmDelete
)

// tabCount is the number of states reachable with tab.
const tabCount = 5

var tabTitles = [tabCount]string{"Dashboard", "Habits", "Journal", "Goals", "Insights"}

type HabitFormModel struct {
	Name     string
	Category models.Category
}

type EntryFormModel struct {
	Prompt  string
	Mood    models.Mood
	Content string
}

type GoalFormModel struct {
	Title       string
	Description string
	Deadline    string
}

// pendingDelete is the record awaiting confirmation.
type pendingDelete struct {
	kind  SessionState
	id    string
	label string
}

type Model struct {
	svc           *app.Service
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	dashboard    report.Model
	insights     report.Model
	habitsModel  habits.Model
	journalModel entries.Model
	goalsModel   goals.Model

	form      *huh.Form
	habitForm *HabitFormModel
	entryForm *EntryFormModel
	goalForm  *GoalFormModel
	formError string

	toDelete          *pendingDelete
	status            string
	validationWarning string
	quitting          bool
	width             int
	height            int
}

func NewModel(svc *app.Service) Model {
	m := Model{
		svc:          svc,
		state:        StateDashboard,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		dashboard:    report.New(0, 0, "Loading..."),
		insights:     report.New(0, 0, "Loading..."),
		habitsModel:  habits.New(0, 0),
		journalModel: entries.New(0, 0),
		goalsModel:   goals.New(0, 0),
	}
	m.refresh()
	return m
}

// refresh pushes the current snapshot into every tab.
func (m *Model) refresh() {
	data := m.svc.Data()
	now := m.svc.Now()

	m.habitsModel.SetHabits(data.Habits, now)
	m.journalModel.SetEntries(data.Entries, now)
	m.goalsModel.SetGoals(data.Goals, now)
	m.dashboard.SetContent(renderDashboard(data, m.svc.Stats(), now))
	m.insights.SetContent(renderInsights(data, now))
	m.updateValidationStatus(data)
}

// updateValidationStatus runs validation and updates the warning message
func (m *Model) updateValidationStatus(data models.Data) {
	result := validation.New().ValidateData(data)
	if result.HasConflicts() {
		m.validationWarning = fmt.Sprintf("⚠ %d validation warning(s), run 'wellnest validate'", len(result.Conflicts))
	} else {
		m.validationWarning = ""
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateHabits, StateGoals:
		keys = append(keys, m.keys.Add, m.keys.Toggle, m.keys.Delete)
	case StateJournal:
		keys = append(keys, m.keys.Add, m.keys.Delete)
	case StateConfirmDelete:
		keys = []key.Binding{m.keys.Confirm, m.keys.Cancel}
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}

	var actions []key.Binding
	switch m.state {
	case StateHabits, StateGoals:
		actions = []key.Binding{m.keys.Add, m.keys.Toggle, m.keys.Delete}
	case StateJournal:
		actions = []key.Binding{m.keys.Add, m.keys.Delete}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// State reports the active screen.
func (m Model) State() SessionState {
	return m.state
}

// Status is the last action message shown under the tabs.
func (m Model) Status() string {
	return m.status
}
