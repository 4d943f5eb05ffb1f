package analytics

import (
	"time"

	"github.com/AadarshCanCode/Wellnest/internal/constants"
	"github.com/AadarshCanCode/Wellnest/internal/models"
)

// Stats is the headline view shown on the dashboard.
type Stats struct {
	TotalHabits    int        `json:"totalHabits"`
	CurrentStreak  int        `json:"currentStreak"`
	CompletionRate int        `json:"completionRate"`
	JournalStreak  int        `json:"journalStreak"`
	TotalEntries   int        `json:"totalEntries"`
	SentimentScore int        `json:"sentimentScore"`
	Goals          GoalCounts `json:"goals"`
}

func Dashboard(data models.Data, now time.Time) Stats {
	return Stats{
		TotalHabits:    len(data.Habits),
		CurrentStreak:  CurrentStreak(data.Habits, now, DefaultStreakOptions()),
		CompletionRate: TodayCompletionRate(data.Habits, now),
		JournalStreak:  JournalStreak(data.Entries, now, constants.StreakHorizonDays),
		TotalEntries:   len(data.Entries),
		SentimentScore: SentimentStats(data.Entries).Score(),
		Goals:          GoalSummary(data.Goals, now),
	}
}
