package analytics

import (
	"math"
	"strings"
	"time"

	"github.com/AadarshCanCode/Wellnest/internal/constants"
	"github.com/AadarshCanCode/Wellnest/internal/models"
)

// Patterns describes when and how the user writes.
type Patterns struct {
	AvgWords        int    `json:"avgWords"`
	MostActiveHour  int    `json:"mostActiveHour"`
	FavoritePrompt  string `json:"favoritePrompt"`
	WeeklyFrequency [7]int `json:"weeklyFrequency"`
}

// WritingPatterns aggregates word counts, hours, prompts and weekdays over
// all entries. Hours and weekdays are taken in loc, or in each entry's own
// location when loc is nil.
func WritingPatterns(entries []models.JournalEntry, loc *time.Location) Patterns {
	p := Patterns{
		MostActiveHour: constants.DefaultActiveHour,
		FavoritePrompt: constants.DefaultPrompt,
	}
	if len(entries) == 0 {
		return p
	}

	var hours [24]int
	prompts := map[string]int{}
	var promptOrder []string
	totalWords := 0

	for _, e := range entries {
		totalWords += len(strings.Fields(e.Content))
		at := e.Date
		if loc != nil {
			at = at.In(loc)
		}
		hours[at.Hour()]++
		p.WeeklyFrequency[at.Weekday()]++
		if e.Prompt != "" {
			if _, seen := prompts[e.Prompt]; !seen {
				promptOrder = append(promptOrder, e.Prompt)
			}
			prompts[e.Prompt]++
		}
	}

	p.AvgWords = int(math.Round(float64(totalWords) / float64(len(entries))))

	best := 0
	for h, n := range hours {
		if n > best {
			best = n
			p.MostActiveHour = h
		}
	}

	best = 0
	for _, prompt := range promptOrder {
		if prompts[prompt] > best {
			best = prompts[prompt]
			p.FavoritePrompt = prompt
		}
	}
	return p
}
