package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/AadarshCanCode/Wellnest/internal/analytics"
	"github.com/AadarshCanCode/Wellnest/internal/models"
	"github.com/AadarshCanCode/Wellnest/internal/series"
)

const barWidth = 20

func bar(ratio float64, width int) string {
	if ratio < 0 || math.IsNaN(ratio) {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(math.Round(ratio * float64(width)))
	return barStyle.Render(strings.Repeat("█", filled)) + mutedStyle.Render(strings.Repeat("░", width-filled))
}

func renderDashboard(data models.Data, stats analytics.Stats, now time.Time) string {
	var b strings.Builder

	fmt.Fprintln(&b, headingStyle.Render("Today, "+now.Format("Monday Jan 2")))
	fmt.Fprintf(&b, "Habits done      %s %d%%\n", bar(float64(stats.CompletionRate)/100, barWidth), stats.CompletionRate)
	fmt.Fprintf(&b, "Habit streak     🔥 %d days\n", stats.CurrentStreak)
	fmt.Fprintf(&b, "Journal streak   📝 %d days (%d entries)\n", stats.JournalStreak, stats.TotalEntries)
	fmt.Fprintf(&b, "Wellness score   %s %d (%s)\n",
		bar(float64(stats.SentimentScore)/100, barWidth), stats.SentimentScore, analytics.ScoreBand(stats.SentimentScore).Label())
	fmt.Fprintf(&b, "Goals            %d total, %d completed, %d overdue, %d urgent\n",
		stats.Goals.Total, stats.Goals.Completed, stats.Goals.Overdue, stats.Goals.Urgent)

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, headingStyle.Render("Habit completion, last 7 days"))
	weekly := series.WeeklyCompletion(data.Habits, now)
	for i, label := range weekly.Labels {
		v := weekly.Data[i]
		if v == nil {
			fmt.Fprintf(&b, "%-4s %s\n", label, mutedStyle.Render("no habits"))
			continue
		}
		fmt.Fprintf(&b, "%-4s %s %3.0f%%\n", label, bar(*v/100, barWidth), *v)
	}

	mood := analytics.WeeklyMoodSummary(data.Entries, now)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, headingStyle.Render("Mood this week"))
	if mood.Total == 0 {
		fmt.Fprintln(&b, mutedStyle.Render("No moods recorded in the last 7 days."))
	} else {
		fmt.Fprintf(&b, "Average %.1f/5, mostly %s %s\n", mood.Average, mood.Dominant.Emoji(), series.Capitalize(string(mood.Dominant)))
		for _, md := range mood.Order {
			n := mood.Breakdown[md]
			fmt.Fprintf(&b, "%s %-8s %s %d\n", md.Emoji(), series.Capitalize(string(md)), bar(float64(n)/float64(mood.Total), barWidth), n)
		}
	}

	return b.String()
}

func renderInsights(data models.Data, now time.Time) string {
	var b strings.Builder
	dist := analytics.SentimentStats(data.Entries)
	score := dist.Score()

	fmt.Fprintln(&b, headingStyle.Render("Emotional wellness"))
	fmt.Fprintf(&b, "Score %d (%s)\n\n", score, analytics.ScoreBand(score).Label())
	for _, s := range models.Sentiments {
		pct := dist.Percent(s, len(data.Entries))
		fmt.Fprintf(&b, "%s %-9s %s %3d%%\n", s.Emoji(), series.Capitalize(string(s)), bar(float64(pct)/100, barWidth), pct)
	}

	p := analytics.WritingPatterns(data.Entries, now.Location())
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, headingStyle.Render("Writing patterns"))
	fmt.Fprintf(&b, "Average length    %d words\n", p.AvgWords)
	fmt.Fprintf(&b, "Most active hour  %s\n", series.FormatHour(p.MostActiveHour))
	fmt.Fprintf(&b, "Favorite prompt   %s\n", series.Capitalize(p.FavoritePrompt))

	freq := series.WeeklyFrequency(p)
	top := 0.0
	for _, v := range freq.Data {
		top = math.Max(top, *v)
	}
	for i, label := range freq.Labels {
		ratio := 0.0
		if top > 0 {
			ratio = *freq.Data[i] / top
		}
		fmt.Fprintf(&b, "%-4s %s %.0f\n", label, bar(ratio, barWidth), *freq.Data[i])
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, headingStyle.Render("Category progress today"))
	breakdown := analytics.CategoryBreakdown(data.Habits, now)
	if len(breakdown.Order) == 0 {
		fmt.Fprintln(&b, mutedStyle.Render("No habits yet."))
	}
	for _, c := range breakdown.Order {
		n := breakdown.Counts[c]
		fmt.Fprintf(&b, "%s %-14s %s %d/%d\n", c.Emoji(), c, bar(float64(n.Completed)/float64(n.Total), barWidth), n.Completed, n.Total)
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, headingStyle.Render("Insights"))
	for _, in := range analytics.Insights(dist, len(data.Entries)) {
		fmt.Fprintf(&b, "%s %s\n", in.Icon, in.Message)
	}

	rec := analytics.Recommendations(data.Entries, now)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, headingStyle.Render("For you"))
	fmt.Fprintf(&b, "💬 %s\n", rec.Affirmations[0])
	for _, v := range rec.Videos {
		fmt.Fprintln(&b, mutedStyle.Render("▶ "+v))
	}
	return b.String()
}
