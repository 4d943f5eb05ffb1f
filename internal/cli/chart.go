package cli

import (
	"fmt"
	"time"

	"github.com/AadarshCanCode/Wellnest/internal/analytics"
	"github.com/AadarshCanCode/Wellnest/internal/models"
	"github.com/AadarshCanCode/Wellnest/internal/series"
)

// ChartCmd prints chart-ready {labels, data} JSON. Days without data are null.
type ChartCmd struct {
	Kind string `arg:"" help:"Chart to build: weekly, streak, mood, activity, sentiment or frequency." enum:"weekly,streak,mood,activity,sentiment,frequency"`
	Text bool   `help:"Render as text bars instead of JSON."`
}

func (c *ChartCmd) Run(ctx *Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	s, scale, err := buildChart(c.Kind, svc.Data(), svc.Now())
	if err != nil {
		return err
	}
	if !c.Text {
		return ctx.printJSON(s)
	}

	if scale == 0 {
		scale = largest(s)
	}
	for i, label := range s.Labels {
		v := s.Data[i]
		if v == nil {
			ctx.Printf("%-10s %s\n", label, mutedStyle.Render("no data"))
			continue
		}
		ratio := 0.0
		if scale > 0 {
			ratio = *v / scale
		}
		ctx.Printf("%-10s %s %g\n", label, bar(ratio, barWidth), *v)
	}
	return nil
}

// buildChart returns the series for kind and its fixed scale maximum (0
// when the scale follows the data).
func buildChart(kind string, data models.Data, now time.Time) (series.Series, float64, error) {
	switch kind {
	case "weekly":
		return series.WeeklyCompletion(data.Habits, now), 100, nil
	case "streak":
		return series.StreakHorizon(data.Habits, now), 1, nil
	case "mood":
		return series.MoodTrend(data.Entries, now), 5, nil
	case "activity":
		return series.JournalActivity(data.Entries, now), 0, nil
	case "sentiment":
		return series.SentimentDistribution(analytics.SentimentStats(data.Entries)), 0, nil
	case "frequency":
		return series.WeeklyFrequency(analytics.WritingPatterns(data.Entries, now.Location())), 0, nil
	}
	return series.Series{}, 0, fmt.Errorf("unknown chart %q", kind)
}

func largest(s series.Series) float64 {
	m := 0.0
	for _, v := range s.Data {
		if v != nil && *v > m {
			m = *v
		}
	}
	return m
}
