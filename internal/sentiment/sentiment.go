// Package sentiment classifies free text into one of the four sentiment
// categories used by the journal.
package sentiment

import (
	"strings"

	"github.com/AadarshCanCode/Wellnest/internal/models"
)

// Classifier maps text to a sentiment category. Implementations must be
// deterministic for a given configuration.
type Classifier interface {
	Classify(text string) models.Sentiment
}

// ClassifierFunc adapts a plain function to the Classifier interface.
type ClassifierFunc func(text string) models.Sentiment

func (f ClassifierFunc) Classify(text string) models.Sentiment {
	return f(text)
}

var (
	positiveWords = []string{"happy", "joy", "grateful", "love", "amazing", "wonderful", "great", "good", "excited", "peaceful", "calm", "blessed", "thankful", "proud", "accomplished"}
	negativeWords = []string{"sad", "angry", "frustrated", "worried", "anxious", "stressed", "tired", "overwhelmed", "difficult", "hard", "struggle", "pain", "hurt", "lonely", "scared"}
	// anxiousWords overlaps negativeWords on purpose; a token may count for both.
	anxiousWords = []string{"anxious", "worried", "nervous", "panic", "fear", "scared", "overwhelmed", "stress", "tension"}
)

// Scores holds per-set keyword hit counts for a piece of text.
type Scores struct {
	Positive int
	Negative int
	Anxious  int
}

// Keyword scores text against fixed keyword sets using substring matches.
type Keyword struct {
	Positive []string
	Negative []string
	Anxious  []string
}

// NewKeyword returns a Keyword classifier with the default word lists.
func NewKeyword() *Keyword {
	return &Keyword{
		Positive: positiveWords,
		Negative: negativeWords,
		Anxious:  anxiousWords,
	}
}

// Score counts, per token, whether any keyword of each set occurs inside it.
func (k *Keyword) Score(text string) Scores {
	var s Scores
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if containsAny(word, k.Positive) {
			s.Positive++
		}
		if containsAny(word, k.Negative) {
			s.Negative++
		}
		if containsAny(word, k.Anxious) {
			s.Anxious++
		}
	}
	return s
}

// Classify applies the precedence: anxious, positive, negative, neutral.
// Anxious wins whenever it has any hit and at least as many as positive.
func (k *Keyword) Classify(text string) models.Sentiment {
	return k.Score(text).Sentiment()
}

// Sentiment resolves the scores to a category.
func (s Scores) Sentiment() models.Sentiment {
	switch {
	case s.Anxious > 0 && s.Anxious >= s.Positive:
		return models.SentimentAnxious
	case s.Positive > s.Negative:
		return models.SentimentPositive
	case s.Negative > s.Positive:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

var defaultClassifier = NewKeyword()

// Classify runs the default keyword classifier.
func Classify(text string) models.Sentiment {
	return defaultClassifier.Classify(text)
}

func containsAny(word string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(word, kw) {
			return true
		}
	}
	return false
}
