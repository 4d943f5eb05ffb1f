package analytics

import (
	"time"

	"github.com/AadarshCanCode/Wellnest/internal/constants"
	"github.com/AadarshCanCode/Wellnest/internal/models"
)

// MoodSummary aggregates the moods recorded in the trailing week.
type MoodSummary struct {
	Total     int                 `json:"total"`
	Average   float64             `json:"average"`
	Dominant  models.Mood         `json:"dominant"`
	Breakdown map[models.Mood]int `json:"breakdown"`
	// Order lists the moods of Breakdown in first-encountered order.
	Order []models.Mood `json:"-"`
}

// WeeklyMoodSummary summarizes entries dated no earlier than seven days
// before now that carry a mood. Ties for the dominant mood go to the mood
// encountered first in entry order.
func WeeklyMoodSummary(entries []models.JournalEntry, now time.Time) MoodSummary {
	cutoff := now.AddDate(0, 0, -constants.WeeklyWindowDays)

	summary := MoodSummary{
		Dominant:  models.MoodNeutral,
		Breakdown: map[models.Mood]int{},
	}

	scoreSum := 0
	for _, e := range entries {
		if !e.HasMood() || e.Date.Before(cutoff) {
			continue
		}
		if _, seen := summary.Breakdown[e.Mood]; !seen {
			summary.Order = append(summary.Order, e.Mood)
		}
		summary.Breakdown[e.Mood]++
		summary.Total++
		scoreSum += e.Mood.Score()
	}
	if summary.Total == 0 {
		return summary
	}

	summary.Average = float64(scoreSum) / float64(summary.Total)
	best := 0
	for _, m := range summary.Order {
		if summary.Breakdown[m] > best {
			best = summary.Breakdown[m]
			summary.Dominant = m
		}
	}
	return summary
}
