package cli

import (
	"fmt"

	"github.com/AadarshCanCode/Wellnest/internal/analytics"
	"github.com/AadarshCanCode/Wellnest/internal/constants"
	"github.com/AadarshCanCode/Wellnest/internal/models"
	"github.com/AadarshCanCode/Wellnest/internal/utils"
)

type HabitCmd struct {
	List    HabitListCmd    `cmd:"" help:"List habits with today's status." default:"1"`
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	Toggle  HabitToggleCmd  `cmd:"" help:"Mark a habit done for a day, or undo it."`
	Delete  HabitDeleteCmd  `cmd:"" help:"Delete a habit."`
	Streaks HabitStreaksCmd `cmd:"" help:"Show streaks and recent completion."`
}

type HabitAddCmd struct {
	Name     string `arg:"" help:"Habit name."`
	Category string `short:"c" help:"Category (health, mindfulness, productivity, learning, social)." enum:"health,mindfulness,productivity,learning,social" default:"health"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	habit, err := svc.AddHabit(c.Name, models.Category(c.Category))
	if err != nil {
		return err
	}
	ctx.Printf("Added habit: %s %s (%s)\n", habit.Category.Emoji(), habit.Name, shortID(habit.ID))
	return nil
}

type HabitListCmd struct {
	JSON bool `help:"Output as JSON."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	data := svc.Data()

	if c.JSON {
		return ctx.printJSON(data.Habits)
	}

	if len(data.Habits) == 0 {
		ctx.Println("No habits yet. Add one with 'wellnest habit add <name>'.")
		return nil
	}

	today := svc.Today()
	ctx.Println(titleStyle.Render(fmt.Sprintf("Habits for %s", today)))
	ctx.Println()
	done := 0
	for _, h := range data.Habits {
		completed := h.IsCompletedOn(today)
		if completed {
			done++
		}
		streak := analytics.HabitStreak(h, svc.Now(), constants.StreakHorizonDays)
		ctx.Printf("%s %s %-24s %s  %s\n",
			check(completed), h.Category.Emoji(), h.Name,
			mutedStyle.Render(shortID(h.ID)), mutedStyle.Render(fmt.Sprintf("🔥 %d", streak)))
	}
	ctx.Printf("\nCompleted: %d/%d (%d%%)\n", done, len(data.Habits), analytics.TodayCompletionRate(data.Habits, svc.Now()))
	return nil
}

type HabitToggleCmd struct {
	Habit string `arg:"" help:"Habit name, ID or ID prefix."`
	Date  string `help:"Day to toggle: today, yesterday, -N or YYYY-MM-DD." default:"today"`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	day, err := utils.ResolveDay(c.Date, svc.Now())
	if err != nil {
		return err
	}
	habit, done, err := svc.ToggleHabit(c.Habit, day)
	if err != nil {
		return err
	}
	if done {
		ctx.Printf("%s Marked %q done for %s\n", okStyle.Render("✓"), habit.Name, day)
	} else {
		ctx.Printf("Unmarked %q for %s\n", habit.Name, day)
	}
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit name, ID or ID prefix."`
	Yes   bool   `short:"y" help:"Skip confirmation."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	habit, err := svc.Habit(c.Habit)
	if err != nil {
		return err
	}
	if !c.Yes {
		ok, err := ctx.confirm(fmt.Sprintf("Delete habit %q and its history?", habit.Name))
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Cancelled.")
			return nil
		}
	}
	if _, err := svc.DeleteHabit(habit.ID); err != nil {
		return err
	}
	ctx.Printf("Deleted habit: %s\n", habit.Name)
	return nil
}

type HabitStreaksCmd struct{}

func (c *HabitStreaksCmd) Run(ctx *Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	data := svc.Data()
	now := svc.Now()

	overall := analytics.CurrentStreak(data.Habits, now, analytics.DefaultStreakOptions())
	ctx.Println(titleStyle.Render("Streaks"))
	ctx.Printf("Overall: %s (days with at least %.0f%% of habits done)\n\n",
		plural(overall, "day"), constants.StreakThreshold*100)

	if len(data.Habits) == 0 {
		ctx.Println("No habits yet.")
		return nil
	}
	for _, h := range data.Habits {
		current := analytics.HabitStreak(h, now, constants.StreakHorizonDays)
		longest := analytics.LongestStreak(h)
		ctx.Printf("%s %-24s current %-8s longest %s\n", h.Category.Emoji(), h.Name, plural(current, "day"), plural(longest, "day"))
	}

	ctx.Println()
	ctx.Println(titleStyle.Render("By category (today)"))
	breakdown := analytics.CategoryBreakdown(data.Habits, now)
	for _, cat := range breakdown.Order {
		n := breakdown.Counts[cat]
		ctx.Printf("%s %-14s %s %d/%d\n", cat.Emoji(), cat, bar(float64(n.Completed)/float64(n.Total), barWidth), n.Completed, n.Total)
	}
	return nil
}
