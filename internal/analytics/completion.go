// Package analytics derives streaks, completion rates and aggregate
// statistics from in-memory record snapshots. Every function is pure: the
// caller supplies the records and the reference time.
package analytics

import (
	"math"
	"time"

	"github.com/AadarshCanCode/Wellnest/internal/constants"
	"github.com/AadarshCanCode/Wellnest/internal/models"
)

// StreakOptions bounds the backward scan of CurrentStreak.
type StreakOptions struct {
	HorizonDays int
	Threshold   float64
}

func DefaultStreakOptions() StreakOptions {
	return StreakOptions{
		HorizonDays: constants.StreakHorizonDays,
		Threshold:   constants.StreakThreshold,
	}
}

// DailyCompletionRatio is the fraction of habits completed on day, in [0,1].
func DailyCompletionRatio(habits []models.Habit, day models.Day) float64 {
	if len(habits) == 0 {
		return 0
	}
	completed := 0
	for _, h := range habits {
		if h.IsCompletedOn(day) {
			completed++
		}
	}
	return float64(completed) / float64(len(habits))
}

// TodayCompletionRate is today's completion ratio as a rounded percentage.
func TodayCompletionRate(habits []models.Habit, now time.Time) int {
	return int(math.Round(DailyCompletionRatio(habits, models.DayOf(now)) * 100))
}

// CurrentStreak counts consecutive days, ending today, on which the
// completion ratio met opts.Threshold. The scan stops at the first failing
// day or after opts.HorizonDays days.
func CurrentStreak(habits []models.Habit, today time.Time, opts StreakOptions) int {
	if len(habits) == 0 {
		return 0
	}
	start := models.DayOf(today)
	streak := 0
	for i := 0; i < opts.HorizonDays; i++ {
		if DailyCompletionRatio(habits, start.Add(-i)) < opts.Threshold {
			break
		}
		streak++
	}
	return streak
}

// JournalStreak counts consecutive days, ending today, with at least one entry.
func JournalStreak(entries []models.JournalEntry, today time.Time, horizon int) int {
	if len(entries) == 0 {
		return 0
	}
	written := entryDays(entries, today.Location())
	start := models.DayOf(today)
	streak := 0
	for i := 0; i < horizon; i++ {
		if !written[start.Add(-i)] {
			break
		}
		streak++
	}
	return streak
}

// HabitStreak is the current streak of a single habit.
func HabitStreak(habit models.Habit, today time.Time, horizon int) int {
	start := models.DayOf(today)
	streak := 0
	for i := 0; i < horizon; i++ {
		if !habit.IsCompletedOn(start.Add(-i)) {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak is the longest run of consecutive completed days ever recorded.
func LongestStreak(habit models.Habit) int {
	days := make(map[models.Day]bool, len(habit.CompletedDates))
	for _, d := range habit.CompletedDates {
		if d.Valid() {
			days[d] = true
		}
	}

	longest := 0
	for d := range days {
		// only start counting at the first day of a run
		if days[d.Add(-1)] {
			continue
		}
		run := 1
		for days[d.Add(run)] {
			run++
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

func entryDays(entries []models.JournalEntry, loc *time.Location) map[models.Day]bool {
	days := make(map[models.Day]bool, len(entries))
	for _, e := range entries {
		days[models.DayOf(e.Date.In(loc))] = true
	}
	return days
}
