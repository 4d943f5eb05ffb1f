package analytics

import (
	"time"

	"github.com/AadarshCanCode/Wellnest/internal/models"
)

// Recommendation is supportive content matched to the tone of the latest
// journal entry.
type Recommendation struct {
	Sentiment    models.Sentiment `json:"sentiment"`
	Affirmations []string         `json:"affirmations"`
	Videos       []string         `json:"videos"`
}

type content struct {
	affirmations []string
	videos       []string
}

var recommendations = map[models.Sentiment]content{
	models.SentimentPositive: {
		affirmations: []string{
			"You’re shining bright today!",
			"Keep spreading joy!",
			"Your positivity is contagious.",
			"You’re making a difference!",
			"Today is full of possibilities!",
			"Your smile lights up the world!",
			"Embrace this happiness!",
			"You’re a ray of sunshine!",
		},
		videos: []string{
			"https://www.youtube.com/embed/67qwX_NPmPw",
			"https://www.youtube.com/embed/3m0xy_HXICw",
		},
	},
	models.SentimentNeutral: {
		affirmations: []string{
			"You’ve got this!",
			"One step at a time.",
			"You’re exactly where you need to be.",
			"Keep going—you’re doing great.",
			"Every moment is a fresh start.",
			"Stay steady, stay strong.",
			"Trust your journey.",
			"You’re moving forward.",
		},
		videos: []string{
			"https://www.youtube.com/embed/cO2VNQNW_8U",
			"https://www.youtube.com/embed/5VnmxjOoiSg",
		},
	},
	models.SentimentNegative: {
		affirmations: []string{
			"It’s okay to feel this way.",
			"You are enough.",
			"This will pass—you’ll rise again.",
			"You’re stronger than you know.",
			"Take it one step at a time.",
			"You’re allowed to heal.",
			"Your feelings are valid.",
			"Tomorrow is a new day.",
		},
		videos: []string{
			"https://www.youtube.com/embed/itZMM5gCboo",
			"https://www.youtube.com/embed/Zp4wnZAmqs4",
		},
	},
	models.SentimentAnxious: {
		affirmations: []string{
			"You’re safe right now.",
			"One breath at a time.",
			"You’ve faced this before.",
			"You’re not alone in this.",
			"This feeling will ease.",
			"You’re stronger than your worries.",
			"Focus on the present.",
			"You’ll get through this.",
		},
		videos: []string{
			"https://www.youtube.com/embed/p7Rfz3M0hIo",
			"https://www.youtube.com/embed/mGD3kO-Rs3Y",
		},
	},
}

// LatestEntry returns the entry with the latest date. The first one wins on
// equal dates.
func LatestEntry(entries []models.JournalEntry) (models.JournalEntry, bool) {
	if len(entries) == 0 {
		return models.JournalEntry{}, false
	}
	latest := entries[0]
	for _, e := range entries[1:] {
		if e.Date.After(latest.Date) {
			latest = e
		}
	}
	return latest, true
}

// Recommendations picks content for the latest entry's sentiment, falling
// back to neutral when there are no entries or the sentiment is unknown.
// Affirmations are rotated by the day of the year so the lead changes daily
// but stays stable within a day.
func Recommendations(entries []models.JournalEntry, now time.Time) Recommendation {
	s := models.SentimentNeutral
	if e, ok := LatestEntry(entries); ok && e.Sentiment.Known() {
		s = e.Sentiment
	}
	c := recommendations[s]

	n := len(c.affirmations)
	offset := (now.YearDay() - 1) % n
	affirmations := make([]string, 0, n)
	affirmations = append(affirmations, c.affirmations[offset:]...)
	affirmations = append(affirmations, c.affirmations[:offset]...)

	return Recommendation{
		Sentiment:    s,
		Affirmations: affirmations,
		Videos:       append([]string(nil), c.videos...),
	}
}
