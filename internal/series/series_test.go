package series

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/AadarshCanCode/Wellnest/internal/analytics"
	"github.com/AadarshCanCode/Wellnest/internal/models"
)

// Tuesday 13 October 2026
var refNow = time.Date(2026, 10, 13, 9, 30, 0, 0, time.UTC)

func TestWeeklyCompletion_AlwaysSevenPoints(t *testing.T) {
	today := models.DayOf(refNow)
	tests := []struct {
		name   string
		habits []models.Habit
	}{
		{name: "no habits", habits: nil},
		{name: "sparse", habits: []models.Habit{{CompletedDates: []models.Day{today.Add(-3)}}}},
		{name: "dense", habits: []models.Habit{{CompletedDates: []models.Day{
			today, today.Add(-1), today.Add(-2), today.Add(-3), today.Add(-4), today.Add(-5), today.Add(-6),
		}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := WeeklyCompletion(tt.habits, refNow)
			if s.Len() != 7 || len(s.Data) != 7 {
				t.Fatalf("got %d labels / %d values, want 7", len(s.Labels), len(s.Data))
			}
			wantLabels := []string{"Wed", "Thu", "Fri", "Sat", "Sun", "Mon", "Tue"}
			for i, l := range wantLabels {
				if s.Labels[i] != l {
					t.Errorf("Labels[%d] = %q, want %q", i, s.Labels[i], l)
				}
			}
			for i, v := range s.Data {
				if len(tt.habits) == 0 && v != nil {
					t.Errorf("Data[%d] = %v, want null with no habits", i, *v)
				}
				if len(tt.habits) > 0 && v == nil {
					t.Errorf("Data[%d] = null, want a value", i)
				}
			}
		})
	}
}

func TestWeeklyCompletion_Values(t *testing.T) {
	today := models.DayOf(refNow)
	habits := []models.Habit{
		{CompletedDates: []models.Day{today, today.Add(-6)}},
		{CompletedDates: []models.Day{today}},
	}
	s := WeeklyCompletion(habits, refNow)

	if *s.Data[6] != 100 || *s.Data[0] != 50 || *s.Data[3] != 0 {
		t.Errorf("Data = %v, %v, %v", *s.Data[0], *s.Data[3], *s.Data[6])
	}
}

func TestStreakHorizon(t *testing.T) {
	s := StreakHorizon([]models.Habit{{CompletedDates: []models.Day{models.DayOf(refNow)}}}, refNow)
	if s.Len() != 30 {
		t.Fatalf("Len() = %d, want 30", s.Len())
	}
	if s.Labels[29] != "Oct 13" || s.Labels[0] != "Sep 14" {
		t.Errorf("Labels = %q ... %q", s.Labels[0], s.Labels[29])
	}
	if *s.Data[29] != 1 || *s.Data[28] != 0 {
		t.Errorf("Data tail = %v, %v", *s.Data[28], *s.Data[29])
	}
}

func TestMoodTrend(t *testing.T) {
	entries := []models.JournalEntry{
		// newest first, as stored
		{Content: "late", Mood: models.MoodAmazing, Date: refNow.Add(-time.Hour)},
		{Content: "early", Mood: models.MoodSad, Date: refNow.Add(-2 * time.Hour)},
		{Content: "no mood", Date: refNow.AddDate(0, 0, -1)},
		{Content: "older", Mood: models.MoodGood, Date: refNow.AddDate(0, 0, -1).Add(-time.Hour)},
		{Content: "outside", Mood: models.MoodGood, Date: refNow.AddDate(0, 0, -20)},
	}
	s := MoodTrend(entries, refNow)

	if s.Len() != 14 {
		t.Fatalf("Len() = %d, want 14", s.Len())
	}
	if s.Data[13] == nil || *s.Data[13] != 5 {
		t.Errorf("today = %v, want 5", s.Data[13])
	}
	// the first entry of yesterday has no mood
	if s.Data[12] != nil {
		t.Errorf("yesterday = %v, want null", *s.Data[12])
	}
	for i := 0; i < 12; i++ {
		if s.Data[i] != nil {
			t.Errorf("Data[%d] = %v, want null", i, *s.Data[i])
		}
	}
}

func TestJournalActivity_NoRecords(t *testing.T) {
	s := JournalActivity(nil, refNow)
	if s.Len() != 7 {
		t.Fatalf("Len() = %d, want 7", s.Len())
	}
	for i, v := range s.Data {
		if v == nil || *v != 0 {
			t.Errorf("Data[%d] = %v, want 0", i, v)
		}
	}
}

func TestSentimentDistribution_OmitsZero(t *testing.T) {
	dist := analytics.SentimentDistribution{Counts: map[models.Sentiment]int{
		models.SentimentPositive: 2,
		models.SentimentNegative: 0,
		models.SentimentNeutral:  1,
		models.SentimentAnxious:  3,
	}, Total: 6}
	s := SentimentDistribution(dist)

	want := []string{"Positive", "Neutral", "Anxious"}
	if s.Len() != len(want) {
		t.Fatalf("Labels = %v, want %v", s.Labels, want)
	}
	for i := range want {
		if s.Labels[i] != want[i] {
			t.Errorf("Labels[%d] = %q, want %q", i, s.Labels[i], want[i])
		}
	}
	if *s.Data[2] != 3 {
		t.Errorf("anxious = %v, want 3", *s.Data[2])
	}
}

func TestWeeklyFrequency(t *testing.T) {
	s := WeeklyFrequency(analytics.Patterns{WeeklyFrequency: [7]int{1, 0, 0, 0, 0, 0, 4}})
	if s.Labels[0] != "Sun" || s.Labels[6] != "Sat" || *s.Data[6] != 4 {
		t.Errorf("WeeklyFrequency() = %v %v", s.Labels, s.Data)
	}
}

func TestWeeklyFrequency_MatchesJournalActivityDay(t *testing.T) {
	east := time.FixedZone("UTC-5", -5*3600)
	entries := []models.JournalEntry{{Content: "late night", Date: time.Date(2026, 10, 12, 23, 30, 0, 0, east)}}

	activity := JournalActivity(entries, refNow)
	freq := WeeklyFrequency(analytics.WritingPatterns(entries, refNow.Location()))

	// refNow is Tuesday; the entry lands on the last point of the activity window
	if activity.Labels[6] != "Tue" || *activity.Data[6] != 1 {
		t.Fatalf("activity = %v %v", activity.Labels, activity.Data)
	}
	if freq.Labels[2] != "Tue" || *freq.Data[2] != 1 || *freq.Data[1] != 0 {
		t.Errorf("frequency = %v %v, want the entry on Tue", freq.Labels, freq.Data)
	}
}

func TestSeriesJSON_NullValues(t *testing.T) {
	b, err := json.Marshal(WeeklyCompletion(nil, refNow))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"labels":["Wed","Thu","Fri","Sat","Sun","Mon","Tue"],"data":[null,null,null,null,null,null,null]}`
	if string(b) != want {
		t.Errorf("json = %s, want %s", b, want)
	}
}

func TestFormatHour(t *testing.T) {
	tests := map[int]string{0: "12:00 AM", 1: "1:00 AM", 11: "11:00 AM", 12: "12:00 PM", 13: "1:00 PM", 23: "11:00 PM"}
	for h, want := range tests {
		if got := FormatHour(h); got != want {
			t.Errorf("FormatHour(%d) = %q, want %q", h, got, want)
		}
	}
}

func TestRelativeDay(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{name: "same day", t: refNow.Add(-9 * time.Hour), want: "Today"},
		{name: "late yesterday", t: refNow.Add(-10 * time.Hour), want: "Yesterday"},
		{name: "three days", t: refNow.AddDate(0, 0, -3), want: "3 days ago"},
		{name: "older", t: refNow.AddDate(0, 0, -12), want: "Oct 1, 2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativeDay(tt.t, refNow); got != tt.want {
				t.Errorf("RelativeDay() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCapitalize(t *testing.T) {
	tests := map[string]string{"": "", "free writing": "Free writing", "anxious": "Anxious", "éclair": "Éclair"}
	for in, want := range tests {
		if got := Capitalize(in); got != want {
			t.Errorf("Capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
