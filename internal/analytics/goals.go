package analytics

import (
	"math"
	"time"

	"github.com/AadarshCanCode/Wellnest/internal/constants"
	"github.com/AadarshCanCode/Wellnest/internal/models"
)

// DaysUntil is the number of days from now to midnight of the deadline in
// now's location, rounded up. Negative once the deadline has passed.
func DaysUntil(deadline models.Day, now time.Time) int {
	t, err := deadline.Time(now.Location())
	if err != nil {
		return 0
	}
	return int(math.Ceil(t.Sub(now).Hours() / 24))
}

// GoalStatus derives a goal's status at now.
func GoalStatus(goal models.Goal, now time.Time) models.GoalStatus {
	if goal.Completed {
		return models.GoalCompleted
	}
	days := DaysUntil(goal.Deadline, now)
	switch {
	case days < 0:
		return models.GoalOverdue
	case days <= constants.UrgentDeadlineDays:
		return models.GoalUrgent
	default:
		return models.GoalPending
	}
}

type GoalCounts struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Overdue   int `json:"overdue"`
	Urgent    int `json:"urgent"`
	Pending   int `json:"pending"`
}

func GoalSummary(goals []models.Goal, now time.Time) GoalCounts {
	var c GoalCounts
	for _, g := range goals {
		c.Total++
		switch GoalStatus(g, now) {
		case models.GoalCompleted:
			c.Completed++
		case models.GoalOverdue:
			c.Overdue++
		case models.GoalUrgent:
			c.Urgent++
		default:
			c.Pending++
		}
	}
	return c
}
