package models

import "time"

type Mood string

const (
	MoodAmazing Mood = "amazing"
	MoodGood    Mood = "good"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
	MoodAnxious Mood = "anxious"
)

// Moods lists the recognized moods from best to worst.
var Moods = []Mood{MoodAmazing, MoodGood, MoodNeutral, MoodSad, MoodAnxious}

var moodScores = map[Mood]int{
	MoodSad:     1,
	MoodAnxious: 2,
	MoodNeutral: 3,
	MoodGood:    4,
	MoodAmazing: 5,
}

var moodEmojis = map[Mood]string{
	MoodAmazing: "😊",
	MoodGood:    "🙂",
	MoodNeutral: "😐",
	MoodSad:     "😔",
	MoodAnxious: "😰",
}

// Score maps a mood onto the 1-5 ordinal scale. Unrecognized moods score 3.
func (m Mood) Score() int {
	if s, ok := moodScores[m]; ok {
		return s
	}
	return 3
}

func (m Mood) Known() bool {
	_, ok := moodScores[m]
	return ok
}

func (m Mood) Emoji() string {
	return moodEmojis[m]
}

// Sentiment is the derived emotional tone of a journal entry.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
	SentimentAnxious  Sentiment = "anxious"
)

// Sentiments lists categories in reporting order.
var Sentiments = []Sentiment{SentimentPositive, SentimentNegative, SentimentNeutral, SentimentAnxious}

func (s Sentiment) Known() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral, SentimentAnxious:
		return true
	}
	return false
}

func (s Sentiment) Emoji() string {
	switch s {
	case SentimentPositive:
		return "💚"
	case SentimentNegative:
		return "💙"
	case SentimentAnxious:
		return "🧡"
	default:
		return "💜"
	}
}

// Prompts maps writing prompt tags to the text seeded into a new entry.
var Prompts = map[string]string{
	"gratitude":   "What are you grateful for today? Take a moment to appreciate the small and big things that brought you joy or comfort.",
	"challenge":   "What challenged you today and how did you handle it? Reflect on your strength and resilience.",
	"achievement": "What small win can you celebrate today? Every step forward matters, no matter how small.",
	"mindfulness": "What did you notice about yourself today? How did you feel in different moments?",
	"future":      "What are you looking forward to? Let yourself dream and feel hopeful about what's coming.",
	"stress":      "What's weighing on your mind right now? It's okay to acknowledge difficult feelings.",
}

// JournalEntry is a single dated reflection. Content and Sentiment are
// fixed at creation time.
type JournalEntry struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Mood      Mood      `json:"mood,omitempty"`
	Prompt    string    `json:"prompt,omitempty"`
	Date      time.Time `json:"date"`
	Sentiment Sentiment `json:"sentiment"`
}

// HasMood reports whether a mood was recorded for the entry.
func (e JournalEntry) HasMood() bool {
	return e.Mood != ""
}
