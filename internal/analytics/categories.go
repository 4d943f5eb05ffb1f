package analytics

import (
	"time"

	"github.com/AadarshCanCode/Wellnest/internal/models"
)

type CategoryCount struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// Breakdown maps each category that has habits to its counts for one day.
type Breakdown struct {
	Counts map[models.Category]CategoryCount `json:"counts"`
	// Order lists categories in first-appearance order.
	Order []models.Category `json:"-"`
}

// CategoryBreakdown groups habits by category and counts today's completions.
// Categories with no habits never appear.
func CategoryBreakdown(habits []models.Habit, today time.Time) Breakdown {
	day := models.DayOf(today)
	b := Breakdown{Counts: map[models.Category]CategoryCount{}}
	for _, h := range habits {
		c, seen := b.Counts[h.Category]
		if !seen {
			b.Order = append(b.Order, h.Category)
		}
		c.Total++
		if h.IsCompletedOn(day) {
			c.Completed++
		}
		b.Counts[h.Category] = c
	}
	return b
}
