package models

import (
	"testing"
	"time"
)

func TestDayAdd(t *testing.T) {
	tests := []struct {
		day  Day
		n    int
		want Day
	}{
		{day: "2026-10-13", n: -1, want: "2026-10-12"},
		{day: "2026-03-01", n: -1, want: "2026-02-28"},
		{day: "2024-03-01", n: -1, want: "2024-02-29"},
		{day: "2026-12-31", n: 1, want: "2027-01-01"},
		{day: "not-a-day", n: 1, want: "not-a-day"},
	}
	for _, tt := range tests {
		t.Run(string(tt.day), func(t *testing.T) {
			if got := tt.day.Add(tt.n); got != tt.want {
				t.Errorf("Add(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestDayOf_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	utc := time.Date(2026, 10, 13, 2, 0, 0, 0, time.UTC)

	if got := DayOf(utc); got != "2026-10-13" {
		t.Errorf("DayOf(utc) = %v", got)
	}
	if got := DayOf(utc.In(loc)); got != "2026-10-12" {
		t.Errorf("DayOf(local) = %v, want 2026-10-12", got)
	}
}

func TestParseDay(t *testing.T) {
	if _, err := ParseDay("2026-02-30"); err == nil {
		t.Error("expected error for invalid date")
	}
	d, err := ParseDay("2026-02-28")
	if err != nil || d != "2026-02-28" {
		t.Errorf("ParseDay() = %v, %v", d, err)
	}
}

func TestHabitToggle(t *testing.T) {
	h := Habit{Name: "Stretch"}

	if !h.Toggle("2026-10-13") {
		t.Fatal("first toggle should complete")
	}
	if !h.IsCompletedOn("2026-10-13") {
		t.Error("expected completion on day")
	}
	if h.Toggle("2026-10-13") {
		t.Fatal("second toggle should uncomplete")
	}
	if h.IsCompletedOn("2026-10-13") || len(h.CompletedDates) != 0 {
		t.Errorf("CompletedDates = %v, want empty", h.CompletedDates)
	}
}

func TestCategoryEmojiFallback(t *testing.T) {
	if CategoryHealth.Emoji() != "🏃" {
		t.Errorf("health emoji = %q", CategoryHealth.Emoji())
	}
	if Category("cooking").Known() {
		t.Error("cooking should not be a known category")
	}
	if Category("cooking").Emoji() != "🌟" {
		t.Errorf("fallback emoji = %q", Category("cooking").Emoji())
	}
}

func TestMoodScore(t *testing.T) {
	want := map[Mood]int{MoodSad: 1, MoodAnxious: 2, MoodNeutral: 3, MoodGood: 4, MoodAmazing: 5, "meh": 3}
	for m, s := range want {
		if got := m.Score(); got != s {
			t.Errorf("%q.Score() = %d, want %d", m, got, s)
		}
	}
}

func TestGoalToggle(t *testing.T) {
	now := time.Date(2026, 10, 13, 9, 0, 0, 0, time.UTC)
	g := Goal{Title: "Run 10k", Deadline: "2026-11-01"}

	g.Toggle(now)
	if !g.Completed || g.CompletedAt == nil || !g.CompletedAt.Equal(now) {
		t.Errorf("after toggle: %+v", g)
	}
	g.Toggle(now)
	if g.Completed || g.CompletedAt != nil {
		t.Errorf("after second toggle: %+v", g)
	}
}

func TestDataNormalize(t *testing.T) {
	d := Data{
		Habits: []Habit{
			{Name: "a"},
			{Name: "b", CompletedDates: []Day{"2026-10-13", "", "2026-10-13", "2026-10-12"}},
		},
		Entries: []JournalEntry{
			{Content: "x", Sentiment: "ecstatic"},
			{Content: "y", Sentiment: SentimentAnxious},
		},
	}
	d.Normalize()

	if d.Version != 1 || d.Goals == nil {
		t.Errorf("Normalize() left defaults unset: %+v", d)
	}
	if d.Habits[0].CompletedDates == nil {
		t.Error("nil CompletedDates not normalized")
	}
	if got := d.Habits[1].CompletedDates; len(got) != 2 || got[0] != "2026-10-13" || got[1] != "2026-10-12" {
		t.Errorf("CompletedDates = %v", got)
	}
	if d.Entries[0].Sentiment != "" || d.Entries[1].Sentiment != SentimentAnxious {
		t.Errorf("sentiments = %q, %q", d.Entries[0].Sentiment, d.Entries[1].Sentiment)
	}
}
