// Package series turns record snapshots into chart-ready label/value pairs.
// Windows are ordered oldest first and always contain one point per day.
package series

import (
	"math"
	"time"

	"github.com/AadarshCanCode/Wellnest/internal/analytics"
	"github.com/AadarshCanCode/Wellnest/internal/constants"
	"github.com/AadarshCanCode/Wellnest/internal/models"
)

// Series is an ordered sequence of labels and values. A nil value is
// rendered as null ("no data").
type Series struct {
	Labels []string   `json:"labels"`
	Data   []*float64 `json:"data"`
}

// Len is the number of points.
func (s Series) Len() int {
	return len(s.Labels)
}

func (s *Series) add(label string, v *float64) {
	s.Labels = append(s.Labels, label)
	s.Data = append(s.Data, v)
}

func value(v float64) *float64 {
	return &v
}

// window returns the n calendar days ending at now, oldest first.
func window(now time.Time, n int) []time.Time {
	days := make([]time.Time, n)
	for i := 0; i < n; i++ {
		days[i] = now.AddDate(0, 0, i-(n-1))
	}
	return days
}

// WeeklyCompletion is the daily completion percentage over the last seven days.
func WeeklyCompletion(habits []models.Habit, now time.Time) Series {
	var s Series
	for _, t := range window(now, constants.WeeklyWindowDays) {
		var v *float64
		if len(habits) > 0 {
			v = value(math.Round(analytics.DailyCompletionRatio(habits, models.DayOf(t)) * 100))
		}
		s.add(WeekdayShort(t), v)
	}
	return s
}

// StreakHorizon is the daily completion ratio across the streak horizon.
func StreakHorizon(habits []models.Habit, now time.Time) Series {
	var s Series
	for _, t := range window(now, constants.StreakHorizonDays) {
		var v *float64
		if len(habits) > 0 {
			v = value(analytics.DailyCompletionRatio(habits, models.DayOf(t)))
		}
		s.add(MonthDay(t), v)
	}
	return s
}

// MoodTrend plots the mood score of the first entry found for each of the
// last fourteen days. Entries are scanned in store order (newest first), so
// the latest entry of a day decides its value.
func MoodTrend(entries []models.JournalEntry, now time.Time) Series {
	var s Series
	for _, t := range window(now, constants.MoodTrendDays) {
		day := models.DayOf(t)
		var v *float64
		for _, e := range entries {
			if models.DayOf(e.Date.In(now.Location())) != day {
				continue
			}
			if e.HasMood() {
				v = value(float64(e.Mood.Score()))
			}
			break
		}
		s.add(MonthDay(t), v)
	}
	return s
}

// JournalActivity counts entries per day over the last seven days.
func JournalActivity(entries []models.JournalEntry, now time.Time) Series {
	counts := make(map[models.Day]int, len(entries))
	for _, e := range entries {
		counts[models.DayOf(e.Date.In(now.Location()))]++
	}

	var s Series
	for _, t := range window(now, constants.WeeklyWindowDays) {
		s.add(WeekdayShort(t), value(float64(counts[models.DayOf(t)])))
	}
	return s
}

// SentimentDistribution has one slice per sentiment with a non-zero count.
func SentimentDistribution(dist analytics.SentimentDistribution) Series {
	var s Series
	for _, sentiment := range models.Sentiments {
		n := dist.Counts[sentiment]
		if n == 0 {
			continue
		}
		s.add(Capitalize(string(sentiment)), value(float64(n)))
	}
	return s
}

var weekdayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func WeeklyFrequency(p analytics.Patterns) Series {
	var s Series
	for i, n := range p.WeeklyFrequency {
		s.add(weekdayLabels[i], value(float64(n)))
	}
	return s
}
