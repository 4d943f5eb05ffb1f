package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AadarshCanCode/Wellnest/internal/app"
	"github.com/AadarshCanCode/Wellnest/internal/constants"
	"github.com/AadarshCanCode/Wellnest/internal/models"
	"github.com/AadarshCanCode/Wellnest/internal/storage"
	"github.com/AadarshCanCode/Wellnest/internal/tui/components/entries"
	"github.com/AadarshCanCode/Wellnest/internal/tui/components/goals"
	"github.com/AadarshCanCode/Wellnest/internal/tui/components/habits"
)

// Tuesday 13 October 2026
var refNow = time.Date(2026, 10, 13, 9, 30, 0, 0, time.UTC)

func setupTestService(t *testing.T) (*app.Service, *storage.JSONStore) {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "wellnest.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	svc := app.New(store, nil, func() time.Time { return refNow })
	if err := svc.Load(); err != nil {
		t.Fatalf("failed to load service: %v", err)
	}
	return svc, store
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTabNavigation(t *testing.T) {
	svc, _ := setupTestService(t)
	m := NewModel(svc)

	if m.State() != StateDashboard {
		t.Fatalf("initial state = %v, want dashboard", m.State())
	}
	want := []SessionState{StateHabits, StateJournal, StateGoals, StateInsights, StateDashboard}
	for _, s := range want {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
		if m.State() != s {
			t.Errorf("after tab state = %v, want %v", m.State(), s)
		}
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.State() != StateInsights {
		t.Errorf("after shift+tab state = %v, want insights", m.State())
	}
}

func TestQuit(t *testing.T) {
	svc, _ := setupTestService(t)
	next, cmd := NewModel(svc).Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if v := next.(Model).View(); v != "" {
		t.Errorf("View() after quit = %q, want empty", v)
	}
}

func TestWindowSize(t *testing.T) {
	svc, _ := setupTestService(t)
	m := send(t, NewModel(svc), tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.width != 100 || m.height != 40 {
		t.Errorf("size = %dx%d", m.width, m.height)
	}
	view := m.View()
	for _, title := range tabTitles {
		if !strings.Contains(view, title) {
			t.Errorf("View() missing tab %q", title)
		}
	}
}

func TestToggleHabit(t *testing.T) {
	svc, _ := setupTestService(t)
	habit, err := svc.AddHabit("Stretch", models.CategoryHealth)
	if err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}
	m := NewModel(svc)

	m = send(t, m, habits.ToggleHabitMsg{ID: habit.ID})
	got, _ := svc.Habit(habit.ID)
	if !got.IsCompletedOn("2026-10-13") {
		t.Error("habit not completed after toggle")
	}
	if !strings.Contains(m.Status(), "Stretch done for today") {
		t.Errorf("status = %q", m.Status())
	}
	item := m.habitsModel.Items()[0].(habits.Item)
	if !item.Done || item.Streak != 1 {
		t.Errorf("item = %+v, want done with streak 1", item)
	}
	if !strings.Contains(m.dashboard.Content(), "100%") {
		t.Errorf("dashboard not refreshed: %q", m.dashboard.Content())
	}

	send(t, m, habits.ToggleHabitMsg{ID: habit.ID})
	got, _ = svc.Habit(habit.ID)
	if got.IsCompletedOn("2026-10-13") {
		t.Error("habit still completed after second toggle")
	}
}

func TestConfirmDelete(t *testing.T) {
	svc, _ := setupTestService(t)
	goal, err := svc.AddGoal("Run a 10k", "", "2026-11-01")
	if err != nil {
		t.Fatalf("AddGoal() error = %v", err)
	}
	m := NewModel(svc)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m = send(t, m, goals.DeleteGoalMsg{ID: goal.ID, Title: goal.Title})
	if m.State() != StateConfirmDelete {
		t.Fatalf("state = %v, want confirm delete", m.State())
	}
	if !strings.Contains(m.View(), `delete goal "Run a 10k"?`) {
		t.Errorf("confirmation not shown: %q", m.View())
	}

	// unrelated keys are ignored
	m = send(t, m, runes("z"))
	if m.State() != StateConfirmDelete {
		t.Fatalf("state = %v, want confirm delete", m.State())
	}

	m = send(t, m, runes("n"))
	if m.State() != StateGoals || len(svc.Data().Goals) != 1 {
		t.Fatalf("cancel: state = %v, goals = %d", m.State(), len(svc.Data().Goals))
	}

	m = send(t, m, goals.DeleteGoalMsg{ID: goal.ID, Title: goal.Title})
	m = send(t, m, runes("y"))
	if m.State() != StateGoals {
		t.Errorf("state = %v, want goals", m.State())
	}
	if len(svc.Data().Goals) != 0 || len(m.goalsModel.Items()) != 0 {
		t.Error("goal not deleted")
	}
}

func TestDeleteEntry(t *testing.T) {
	svc, _ := setupTestService(t)
	entry, err := svc.AddEntry("quiet morning", models.MoodNeutral, "")
	if err != nil {
		t.Fatalf("AddEntry() error = %v", err)
	}
	m := NewModel(svc)
	m = send(t, m, entries.DeleteEntryMsg{ID: entry.ID})
	send(t, m, runes("y"))
	if len(svc.Data().Entries) != 0 {
		t.Error("entry not deleted")
	}
}

func TestFormOpenAndCancel(t *testing.T) {
	svc, _ := setupTestService(t)
	m := NewModel(svc)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})

	tests := []struct {
		name  string
		msg   tea.Msg
		state SessionState
	}{
		{name: "habit", msg: habits.AddHabitMsg{}, state: StateAddHabit},
		{name: "entry", msg: entries.WriteEntryMsg{}, state: StateWriteEntry},
		{name: "goal", msg: goals.AddGoalMsg{}, state: StateAddGoal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opened := send(t, m, tt.msg)
			if opened.State() != tt.state || opened.form == nil {
				t.Fatalf("state = %v, want %v with a form", opened.State(), tt.state)
			}
			closed := send(t, opened, tea.KeyMsg{Type: tea.KeyEsc})
			if closed.State() != StateHabits || closed.form != nil {
				t.Errorf("after esc state = %v, want habits", closed.State())
			}
		})
	}
}

func TestSubmitForm(t *testing.T) {
	svc, _ := setupTestService(t)
	m := NewModel(svc)

	m.state = StateAddHabit
	m.habitForm = &HabitFormModel{Name: "Read", Category: models.CategoryLearning}
	if err := m.submitForm(); err != nil {
		t.Fatalf("submit habit: %v", err)
	}
	m.habitForm = &HabitFormModel{Name: "read", Category: models.CategoryLearning}
	if err := m.submitForm(); err == nil {
		t.Error("expected duplicate habit error")
	}

	m.state = StateAddGoal
	m.goalForm = &GoalFormModel{Title: "Finish book", Deadline: defaultDeadline()}
	if err := m.submitForm(); err != nil {
		t.Fatalf("submit goal: %v", err)
	}
	m.goalForm = &GoalFormModel{Title: "Bad date", Deadline: "next week"}
	if err := m.submitForm(); err == nil {
		t.Error("expected invalid deadline error")
	}

	m.state = StateWriteEntry
	m.entryForm = &EntryFormModel{Content: "so grateful for friends", Mood: models.MoodGood, Prompt: "gratitude"}
	if err := m.submitForm(); err != nil {
		t.Fatalf("submit entry: %v", err)
	}
	if !strings.Contains(m.Status(), "Positive") {
		t.Errorf("status = %q", m.Status())
	}

	data := svc.Data()
	if len(data.Habits) != 1 || len(data.Goals) != 1 || len(data.Entries) != 1 {
		t.Fatalf("data = %d habits, %d goals, %d entries", len(data.Habits), len(data.Goals), len(data.Entries))
	}
	if data.Goals[0].Deadline != "2026-11-12" {
		t.Errorf("deadline = %s, want 2026-11-12", data.Goals[0].Deadline)
	}
}

func TestValidationWarning(t *testing.T) {
	svc, store := setupTestService(t)
	raw := `{"version":1,"habits":[{"id":"a","name":"Walk","category":"health","completedDates":[]},` +
		`{"id":"b","name":"walk","category":"health","completedDates":[]}],"goals":[],"entries":[]}`
	if err := store.Put(constants.StorageKey, []byte(raw)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := svc.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	m := NewModel(svc)
	if !strings.Contains(m.validationWarning, "1 validation warning") {
		t.Errorf("validationWarning = %q", m.validationWarning)
	}
}

func TestRenderInsights_Empty(t *testing.T) {
	out := renderInsights(models.NewData(), refNow)
	for _, want := range []string{"Score 0 (Needs Attention)", "12:00 PM", "Free writing", "No habits yet.", "📊 Your emotional balance looks healthy.", "💬 Stay steady, stay strong."} {
		if !strings.Contains(out, want) {
			t.Errorf("renderInsights() missing %q", want)
		}
	}
}
