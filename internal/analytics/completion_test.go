package analytics

import (
	"testing"
	"time"

	"github.com/AadarshCanCode/Wellnest/internal/models"
)

// Tuesday 13 October 2026
var refNow = time.Date(2026, 10, 13, 9, 30, 0, 0, time.UTC)

func habitDone(days ...models.Day) models.Habit {
	return models.Habit{ID: "h", Name: "Walk", Category: models.CategoryHealth, CompletedDates: days}
}

func TestDailyCompletionRatio(t *testing.T) {
	today := models.DayOf(refNow)

	tests := []struct {
		name   string
		habits []models.Habit
		want   float64
	}{
		{name: "no habits", habits: nil, want: 0},
		{name: "none completed", habits: []models.Habit{habitDone(), habitDone()}, want: 0},
		{name: "half completed", habits: []models.Habit{habitDone(today), habitDone()}, want: 0.5},
		{name: "all completed", habits: []models.Habit{habitDone(today), habitDone(today)}, want: 1},
		{name: "other days ignored", habits: []models.Habit{habitDone(today.Add(-1))}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DailyCompletionRatio(tt.habits, today)
			if got != tt.want {
				t.Errorf("DailyCompletionRatio() = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("DailyCompletionRatio() = %v out of [0,1]", got)
			}
		})
	}
}

func TestTodayCompletionRate_Rounds(t *testing.T) {
	today := models.DayOf(refNow)
	habits := []models.Habit{habitDone(today), habitDone(), habitDone()}

	if got := TodayCompletionRate(habits, refNow); got != 33 {
		t.Errorf("TodayCompletionRate() = %d, want 33", got)
	}
	habits = append(habits[:1], habitDone(today), habitDone())
	if got := TodayCompletionRate(habits, refNow); got != 67 {
		t.Errorf("TodayCompletionRate() = %d, want 67", got)
	}
}

func TestCurrentStreak_MondayTuesdayScenario(t *testing.T) {
	habits := []models.Habit{habitDone("2026-10-12", "2026-10-13")}

	if got := DailyCompletionRatio(habits, models.DayOf(refNow)); got != 1.0 {
		t.Fatalf("ratio today = %v, want 1.0", got)
	}
	if got := CurrentStreak(habits, refNow, DefaultStreakOptions()); got != 2 {
		t.Errorf("CurrentStreak() = %d, want 2", got)
	}
}

func TestCurrentStreak(t *testing.T) {
	today := models.DayOf(refNow)

	tests := []struct {
		name   string
		habits []models.Habit
		opts   StreakOptions
		want   int
	}{
		{name: "no habits", habits: nil, opts: DefaultStreakOptions(), want: 0},
		{name: "today not done", habits: []models.Habit{habitDone(today.Add(-1), today.Add(-2))}, opts: DefaultStreakOptions(), want: 0},
		{name: "half meets threshold", habits: []models.Habit{habitDone(today), habitDone()}, opts: DefaultStreakOptions(), want: 1},
		{name: "below threshold", habits: []models.Habit{habitDone(today), habitDone(), habitDone()}, opts: DefaultStreakOptions(), want: 0},
		{name: "gap stops scan", habits: []models.Habit{habitDone(today, today.Add(-1), today.Add(-3))}, opts: DefaultStreakOptions(), want: 2},
		{name: "capped at horizon", habits: []models.Habit{habitDone(span(today, 40)...)}, opts: DefaultStreakOptions(), want: 30},
		{name: "custom horizon", habits: []models.Habit{habitDone(span(today, 10)...)}, opts: StreakOptions{HorizonDays: 5, Threshold: 0.5}, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentStreak(tt.habits, refNow, tt.opts); got != tt.want {
				t.Errorf("CurrentStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCurrentStreak_Monotonic(t *testing.T) {
	today := models.DayOf(refNow)
	opts := DefaultStreakOptions()

	habits := []models.Habit{habitDone(today.Add(-1), today.Add(-2)), habitDone(today.Add(-1))}
	before := CurrentStreak(habits, refNow, opts)
	habits[0].Toggle(today)
	if after := CurrentStreak(habits, refNow, opts); after < before {
		t.Errorf("streak decreased from %d to %d after completing today", before, after)
	}

	single := []models.Habit{habitDone(today)}
	if got := CurrentStreak(single, refNow, opts); got != 1 {
		t.Fatalf("CurrentStreak() = %d, want 1", got)
	}
	single[0].Toggle(today)
	if got := CurrentStreak(single, refNow, opts); got != 0 {
		t.Errorf("CurrentStreak() after untoggle = %d, want 0", got)
	}
}

func TestJournalStreak(t *testing.T) {
	at := func(daysAgo, hour int) models.JournalEntry {
		return models.JournalEntry{Content: "x", Date: refNow.AddDate(0, 0, -daysAgo).Add(time.Duration(hour-9) * time.Hour)}
	}

	tests := []struct {
		name    string
		entries []models.JournalEntry
		want    int
	}{
		{name: "no entries", entries: nil, want: 0},
		{name: "only today", entries: []models.JournalEntry{at(0, 8)}, want: 1},
		{name: "several per day count once", entries: []models.JournalEntry{at(0, 8), at(0, 20), at(1, 10)}, want: 2},
		{name: "yesterday only", entries: []models.JournalEntry{at(1, 10)}, want: 0},
		{name: "gap", entries: []models.JournalEntry{at(0, 10), at(2, 10)}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JournalStreak(tt.entries, refNow, 30); got != tt.want {
				t.Errorf("JournalStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHabitAndLongestStreak(t *testing.T) {
	today := models.DayOf(refNow)
	h := habitDone(today, today.Add(-1), today.Add(-5), today.Add(-6), today.Add(-7), "garbage")

	if got := HabitStreak(h, refNow, 30); got != 2 {
		t.Errorf("HabitStreak() = %d, want 2", got)
	}
	if got := LongestStreak(h); got != 3 {
		t.Errorf("LongestStreak() = %d, want 3", got)
	}
	if got := LongestStreak(habitDone()); got != 0 {
		t.Errorf("LongestStreak(empty) = %d, want 0", got)
	}
}

func span(from models.Day, n int) []models.Day {
	days := make([]models.Day, n)
	for i := range days {
		days[i] = from.Add(-i)
	}
	return days
}
