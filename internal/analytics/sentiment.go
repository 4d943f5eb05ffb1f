package analytics

import (
	"math"

	"github.com/AadarshCanCode/Wellnest/internal/models"
)

// Band is the qualitative reading of a sentiment score.
type Band string

const (
	BandExcellent      Band = "excellent"
	BandGood           Band = "good"
	BandFair           Band = "fair"
	BandNeedsAttention Band = "needs-attention"
)

var sentimentWeights = map[models.Sentiment]int{
	models.SentimentPositive: 4,
	models.SentimentNeutral:  2,
	models.SentimentAnxious:  1,
	models.SentimentNegative: 0,
}

// SentimentDistribution counts entries per sentiment category.
type SentimentDistribution struct {
	Counts map[models.Sentiment]int `json:"counts"`
	Total  int                      `json:"total"`
}

// SentimentStats counts sentiments across all entries. Entries without a
// recognized sentiment are skipped.
func SentimentStats(entries []models.JournalEntry) SentimentDistribution {
	dist := SentimentDistribution{Counts: map[models.Sentiment]int{}}
	for _, s := range models.Sentiments {
		dist.Counts[s] = 0
	}
	for _, e := range entries {
		if !e.Sentiment.Known() {
			continue
		}
		dist.Counts[e.Sentiment]++
		dist.Total++
	}
	return dist
}

// Score is the weighted sentiment score in [0,100]; 0 when there are no entries.
func (d SentimentDistribution) Score() int {
	if d.Total == 0 {
		return 0
	}
	weighted := 0
	for s, n := range d.Counts {
		weighted += sentimentWeights[s] * n
	}
	return int(math.Round(float64(weighted) / float64(d.Total*4) * 100))
}

// Percent is the share of totalEntries with sentiment s, rounded.
func (d SentimentDistribution) Percent(s models.Sentiment, totalEntries int) int {
	if totalEntries == 0 {
		return 0
	}
	return int(math.Round(float64(d.Counts[s]) / float64(totalEntries) * 100))
}

func ScoreBand(score int) Band {
	switch {
	case score >= 75:
		return BandExcellent
	case score >= 50:
		return BandGood
	case score >= 25:
		return BandFair
	default:
		return BandNeedsAttention
	}
}

func (b Band) Label() string {
	switch b {
	case BandExcellent:
		return "Excellent"
	case BandGood:
		return "Good"
	case BandFair:
		return "Fair"
	default:
		return "Needs Attention"
	}
}

// Insight is a short observation derived from the sentiment mix.
type Insight struct {
	Icon    string `json:"icon"`
	Message string `json:"message"`
}

// Insights derives tips from the sentiment distribution relative to
// totalEntries. A balanced message is returned when no rule fires.
func Insights(dist SentimentDistribution, totalEntries int) []Insight {
	var out []Insight
	if totalEntries > 0 {
		positiveRatio := float64(dist.Counts[models.SentimentPositive]) / float64(totalEntries)
		anxiousRatio := float64(dist.Counts[models.SentimentAnxious]) / float64(totalEntries)

		if positiveRatio > 0.6 {
			out = append(out, Insight{Icon: "🌟", Message: "You're maintaining a positive outlook! Keep nurturing those good vibes."})
		} else if positiveRatio < 0.2 {
			out = append(out, Insight{Icon: "💙", Message: "Consider focusing on small daily gratitudes to boost positivity."})
		}
		if anxiousRatio > 0.3 {
			out = append(out, Insight{Icon: "🧘", Message: "You might benefit from mindfulness exercises or breathing techniques."})
		}
	}
	if len(out) == 0 {
		out = append(out, Insight{Icon: "📊", Message: "Your emotional balance looks healthy. Keep journaling to maintain awareness!"})
	}
	return out
}
