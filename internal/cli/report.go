package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/AadarshCanCode/Wellnest/internal/analytics"
	"github.com/AadarshCanCode/Wellnest/internal/models"
	"github.com/AadarshCanCode/Wellnest/internal/sentiment"
	"github.com/AadarshCanCode/Wellnest/internal/series"
)

func (c *Context) printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	c.Println(string(out))
	return nil
}

type StatsCmd struct {
	JSON bool `help:"Output as JSON."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	stats := svc.Stats()
	if c.JSON {
		return ctx.printJSON(stats)
	}

	band := analytics.ScoreBand(stats.SentimentScore)
	ctx.Println(titleStyle.Render("Wellnest dashboard"))
	ctx.Println()
	ctx.Printf("Habits           %d\n", stats.TotalHabits)
	ctx.Printf("Today            %s %d%%\n", bar(float64(stats.CompletionRate)/100, barWidth), stats.CompletionRate)
	ctx.Printf("Habit streak     🔥 %s\n", plural(stats.CurrentStreak, "day"))
	ctx.Printf("Journal entries  %d\n", stats.TotalEntries)
	ctx.Printf("Journal streak   📝 %s\n", plural(stats.JournalStreak, "day"))
	ctx.Printf("Wellness score   %s %d (%s)\n", bar(float64(stats.SentimentScore)/100, barWidth), stats.SentimentScore, band.Label())
	ctx.Printf("Goals            %d total, %d completed, %d overdue, %d urgent, %d pending\n",
		stats.Goals.Total, stats.Goals.Completed, stats.Goals.Overdue, stats.Goals.Urgent, stats.Goals.Pending)
	return nil
}

type MoodCmd struct {
	JSON bool `help:"Output as JSON."`
}

type moodReport struct {
	Weekly analytics.MoodSummary `json:"weekly"`
	Trend  series.Series         `json:"trend"`
}

func (c *MoodCmd) Run(ctx *Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	entries := svc.Data().Entries
	now := svc.Now()
	report := moodReport{
		Weekly: analytics.WeeklyMoodSummary(entries, now),
		Trend:  series.MoodTrend(entries, now),
	}
	if c.JSON {
		return ctx.printJSON(report)
	}

	w := report.Weekly
	ctx.Println(titleStyle.Render("This week"))
	if w.Total == 0 {
		ctx.Println("No moods recorded in the last 7 days.")
	} else {
		ctx.Printf("Average %.1f/5 from %s, mostly %s %s\n\n",
			w.Average, plural(w.Total, "entry"), w.Dominant.Emoji(), series.Capitalize(string(w.Dominant)))
		for _, m := range w.Order {
			n := w.Breakdown[m]
			ctx.Printf("%s %-8s %s %d\n", m.Emoji(), series.Capitalize(string(m)), bar(float64(n)/float64(w.Total), barWidth), n)
		}
	}

	ctx.Println()
	ctx.Println(titleStyle.Render("Last 14 days"))
	for i, label := range report.Trend.Labels {
		v := report.Trend.Data[i]
		if v == nil {
			ctx.Printf("%-7s %s\n", label, mutedStyle.Render("·"))
			continue
		}
		ctx.Printf("%-7s %s %.0f\n", label, bar(*v/5, 10), *v)
	}
	return nil
}

type InsightsCmd struct {
	JSON bool `help:"Output as JSON."`
}

type insightsReport struct {
	Score        int                      `json:"score"`
	Band         analytics.Band           `json:"band"`
	Distribution map[models.Sentiment]int `json:"distribution"`
	Patterns     analytics.Patterns       `json:"patterns"`
	Insights     []analytics.Insight      `json:"insights"`
	ForYou       analytics.Recommendation `json:"recommendations"`
}

func (c *InsightsCmd) Run(ctx *Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	entries := svc.Data().Entries
	dist := analytics.SentimentStats(entries)
	report := insightsReport{
		Score:        dist.Score(),
		Band:         analytics.ScoreBand(dist.Score()),
		Distribution: dist.Counts,
		Patterns:     analytics.WritingPatterns(entries, svc.Now().Location()),
		Insights:     analytics.Insights(dist, len(entries)),
		ForYou:       analytics.Recommendations(entries, svc.Now()),
	}
	if c.JSON {
		return ctx.printJSON(report)
	}

	ctx.Println(titleStyle.Render("Emotional wellness"))
	ctx.Printf("Score %d (%s)\n\n", report.Score, report.Band.Label())
	for _, s := range models.Sentiments {
		pct := dist.Percent(s, len(entries))
		ctx.Printf("%s %-9s %s %3d%%\n", s.Emoji(), series.Capitalize(string(s)), bar(float64(pct)/100, barWidth), pct)
	}

	p := report.Patterns
	ctx.Println()
	ctx.Println(titleStyle.Render("Writing patterns"))
	ctx.Printf("Average length    %s\n", plural(p.AvgWords, "word"))
	ctx.Printf("Most active hour  %s\n", series.FormatHour(p.MostActiveHour))
	ctx.Printf("Favorite prompt   %s\n", series.Capitalize(p.FavoritePrompt))

	ctx.Println()
	ctx.Println(titleStyle.Render("Insights"))
	for _, in := range report.Insights {
		ctx.Printf("%s %s\n", in.Icon, in.Message)
	}

	rec := report.ForYou
	ctx.Println()
	ctx.Println(titleStyle.Render(fmt.Sprintf("For you (%s)", series.Capitalize(string(rec.Sentiment)))))
	for _, a := range rec.Affirmations[:affirmationsShown] {
		ctx.Printf("💬 %s\n", a)
	}
	for _, v := range rec.Videos {
		ctx.Printf("▶ %s\n", mutedStyle.Render(v))
	}
	return nil
}

const affirmationsShown = 3

type ClassifyCmd struct {
	Text []string `arg:"" help:"Text to classify."`
}

// Run shows the configured classifier's verdict and the keyword hit counts
// behind the built-in classifier.
func (c *ClassifyCmd) Run(ctx *Context) error {
	text := strings.Join(c.Text, " ")
	result := ctx.Config.NewClassifier().Classify(text)
	scores := sentiment.NewKeyword().Score(text)

	ctx.Printf("%s %s\n", result.Emoji(), series.Capitalize(string(result)))
	ctx.Printf("%s\n", mutedStyle.Render(fmt.Sprintf("keywords: positive=%d negative=%d anxious=%d",
		scores.Positive, scores.Negative, scores.Anxious)))
	return nil
}
