package models

import "time"

// Category groups habits by life area.
type Category string

const (
	CategoryHealth       Category = "health"
	CategoryMindfulness  Category = "mindfulness"
	CategoryProductivity Category = "productivity"
	CategoryLearning     Category = "learning"
	CategorySocial       Category = "social"
)

// Categories lists the recognized categories in display order.
var Categories = []Category{
	CategoryHealth,
	CategoryMindfulness,
	CategoryProductivity,
	CategoryLearning,
	CategorySocial,
}

var categoryEmojis = map[Category]string{
	CategoryHealth:       "🏃",
	CategoryMindfulness:  "🧘",
	CategoryProductivity: "💼",
	CategoryLearning:     "📚",
	CategorySocial:       "👥",
}

// Known reports whether c is one of the recognized categories.
func (c Category) Known() bool {
	_, ok := categoryEmojis[c]
	return ok
}

// Emoji returns the icon for c, or a star for unrecognized categories.
func (c Category) Emoji() string {
	if e, ok := categoryEmojis[c]; ok {
		return e
	}
	return "🌟"
}

// Habit represents a recurring practice to track
type Habit struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Category       Category  `json:"category"`
	CreatedAt      time.Time `json:"createdAt"`
	CompletedDates []Day     `json:"completedDates"`
}

// IsCompletedOn reports whether the habit was marked complete on day.
func (h Habit) IsCompletedOn(day Day) bool {
	for _, d := range h.CompletedDates {
		if d == day {
			return true
		}
	}
	return false
}

// Toggle marks the habit complete on day, or unmarks it if already complete.
// It returns the new completion state.
func (h *Habit) Toggle(day Day) bool {
	for i, d := range h.CompletedDates {
		if d == day {
			h.CompletedDates = append(h.CompletedDates[:i], h.CompletedDates[i+1:]...)
			return false
		}
	}
	h.CompletedDates = append(h.CompletedDates, day)
	return true
}

// normalize drops duplicate and empty day identifiers, keeping first occurrence order.
func (h *Habit) normalize() {
	if h.CompletedDates == nil {
		h.CompletedDates = []Day{}
		return
	}
	seen := make(map[Day]bool, len(h.CompletedDates))
	days := h.CompletedDates[:0]
	for _, d := range h.CompletedDates {
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		days = append(days, d)
	}
	h.CompletedDates = days
}
