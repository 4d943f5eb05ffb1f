package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/AadarshCanCode/Wellnest/internal/analytics"
	"github.com/AadarshCanCode/Wellnest/internal/constants"
	"github.com/AadarshCanCode/Wellnest/internal/models"
	"github.com/AadarshCanCode/Wellnest/internal/utils"
)

type GoalCmd struct {
	List   GoalListCmd   `cmd:"" help:"List goals with their status." default:"1"`
	Add    GoalAddCmd    `cmd:"" help:"Add a new goal."`
	Toggle GoalToggleCmd `cmd:"" help:"Mark a goal complete, or reopen it."`
	Delete GoalDeleteCmd `cmd:"" help:"Delete a goal."`
}

type GoalAddCmd struct {
	Title       string `arg:"" help:"Goal title."`
	Deadline    string `short:"d" help:"Deadline: YYYY-MM-DD, tomorrow or +N days (default: 30 days from today)."`
	Description string `help:"Optional description."`
}

func (c *GoalAddCmd) Run(ctx *Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	input := c.Deadline
	if input == "" {
		input = "+" + strconv.Itoa(constants.DefaultGoalLeadDays)
	}
	deadline, err := utils.ResolveDay(input, svc.Now())
	if err != nil {
		return err
	}
	goal, err := svc.AddGoal(c.Title, c.Description, deadline)
	if err != nil {
		return err
	}
	ctx.Printf("Added goal: %s (due %s, %s)\n", goal.Title, goal.Deadline, shortID(goal.ID))
	return nil
}

type GoalListCmd struct {
	JSON bool `help:"Output as JSON."`
}

// goalView is a goal with its derived status, for JSON output.
type goalView struct {
	models.Goal
	Status   models.GoalStatus `json:"status"`
	DaysLeft int               `json:"daysLeft"`
}

func (c *GoalListCmd) Run(ctx *Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	data := svc.Data()
	now := svc.Now()

	if c.JSON {
		views := make([]goalView, len(data.Goals))
		for i, g := range data.Goals {
			views[i] = goalView{Goal: g, Status: analytics.GoalStatus(g, now), DaysLeft: analytics.DaysUntil(g.Deadline, now)}
		}
		return ctx.printJSON(views)
	}

	if len(data.Goals) == 0 {
		ctx.Println("No goals yet. Add one with 'wellnest goal add <title>'.")
		return nil
	}

	counts := analytics.GoalSummary(data.Goals, now)
	ctx.Println(titleStyle.Render(fmt.Sprintf("Goals: %d total, %d completed, %d overdue, %d urgent",
		counts.Total, counts.Completed, counts.Overdue, counts.Urgent)))
	ctx.Println()
	for _, g := range data.Goals {
		status := analytics.GoalStatus(g, now)
		ctx.Printf("%s %-28s %s  %s\n", status.Emoji(), g.Title, describeDeadline(g, now), mutedStyle.Render(shortID(g.ID)))
		if g.Description != "" {
			ctx.Printf("   %s\n", mutedStyle.Render(g.Description))
		}
	}
	return nil
}

func describeDeadline(g models.Goal, now time.Time) string {
	if g.Completed {
		if g.CompletedAt != nil {
			return okStyle.Render("done " + g.CompletedAt.In(now.Location()).Format("Jan 2"))
		}
		return okStyle.Render("done")
	}
	days := analytics.DaysUntil(g.Deadline, now)
	switch {
	case days < 0:
		return warnStyle.Render(fmt.Sprintf("%s overdue", plural(-days, "day")))
	case days == 0:
		return warnStyle.Render("due today")
	case days <= constants.UrgentDeadlineDays:
		return warnStyle.Render(fmt.Sprintf("%s left", plural(days, "day")))
	default:
		return fmt.Sprintf("%s left", plural(days, "day"))
	}
}

type GoalToggleCmd struct {
	Goal string `arg:"" help:"Goal title, ID or ID prefix."`
}

func (c *GoalToggleCmd) Run(ctx *Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	goal, err := svc.ToggleGoal(c.Goal)
	if err != nil {
		return err
	}
	if goal.Completed {
		ctx.Printf("%s Completed goal: %s\n", okStyle.Render("✓"), goal.Title)
	} else {
		ctx.Printf("Reopened goal: %s\n", goal.Title)
	}
	return nil
}

type GoalDeleteCmd struct {
	Goal string `arg:"" help:"Goal title, ID or ID prefix."`
	Yes  bool   `short:"y" help:"Skip confirmation."`
}

func (c *GoalDeleteCmd) Run(ctx *Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	goal, err := svc.Goal(c.Goal)
	if err != nil {
		return err
	}
	if !c.Yes {
		ok, err := ctx.confirm(fmt.Sprintf("Delete goal %q?", goal.Title))
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Cancelled.")
			return nil
		}
	}
	if _, err := svc.DeleteGoal(goal.ID); err != nil {
		return err
	}
	ctx.Printf("Deleted goal: %s\n", goal.Title)
	return nil
}
