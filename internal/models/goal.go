package models

import "time"

// GoalStatus is derived from a goal's completion flag and deadline; it is never stored.
type GoalStatus string

const (
	GoalCompleted GoalStatus = "completed"
	GoalOverdue   GoalStatus = "overdue"
	GoalUrgent    GoalStatus = "urgent"
	GoalPending   GoalStatus = "pending"
)

func (s GoalStatus) Emoji() string {
	switch s {
	case GoalCompleted:
		return "✅"
	case GoalOverdue:
		return "⚠️"
	case GoalUrgent:
		return "🔥"
	default:
		return "⏳"
	}
}

type Goal struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Deadline    Day        `json:"deadline"`
	CreatedAt   time.Time  `json:"createdAt"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
}

// Toggle flips the completion flag, stamping or clearing CompletedAt.
func (g *Goal) Toggle(now time.Time) {
	g.Completed = !g.Completed
	if g.Completed {
		g.CompletedAt = &now
	} else {
		g.CompletedAt = nil
	}
}
