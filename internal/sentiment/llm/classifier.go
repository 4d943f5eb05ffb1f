// Package llm provides a model-backed sentiment classifier that plugs into
// the same interface as the keyword classifier.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"

	"github.com/AadarshCanCode/Wellnest/internal/logger"
	"github.com/AadarshCanCode/Wellnest/internal/models"
	"github.com/AadarshCanCode/Wellnest/internal/sentiment"
)

const (
	DefaultTimeout  = 20 * time.Second
	maxContentChars = 4000
)

const instructions = `You label the emotional tone of a private journal entry.
Answer with exactly one sentiment:
- "anxious" when the writer expresses worry, nervousness, panic, fear or stress, even if positive feelings are also present
- "positive" when the entry is mainly content, grateful, hopeful or happy
- "negative" when the entry is mainly sad, angry, tired, lonely or hurt without anxiety
- "neutral" otherwise`

type classification struct {
	Sentiment string `json:"sentiment" jsonschema:"enum=positive,enum=negative,enum=neutral,enum=anxious"`
}

var classificationSchema = GenerateSchema[classification]()

// Classifier asks a hosted model for the sentiment and falls back to another
// classifier on any failure, so Classify always returns a category.
type Classifier struct {
	client   *openai.Client
	model    string
	fallback sentiment.Classifier
	timeout  time.Duration
}

// New builds a Classifier. A nil fallback defaults to the keyword classifier.
func New(client *openai.Client, model string, fallback sentiment.Classifier) *Classifier {
	if fallback == nil {
		fallback = sentiment.NewKeyword()
	}
	return &Classifier{
		client:   client,
		model:    model,
		fallback: fallback,
		timeout:  DefaultTimeout,
	}
}

// NewFromAPIKey creates an OpenAI client for apiKey and wraps it.
func NewFromAPIKey(apiKey, model string, fallback sentiment.Classifier) *Classifier {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return New(&client, model, fallback)
}

func (c *Classifier) Classify(text string) models.Sentiment {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	s, err := c.ClassifyContext(ctx, text)
	if err != nil {
		logger.Warn("Model sentiment classification failed, using fallback", "model", c.model, "error", err)
		return c.fallback.Classify(text)
	}
	return s
}

// ClassifyContext returns the model's label or an error; it never falls back.
func (c *Classifier) ClassifyContext(ctx context.Context, text string) (models.Sentiment, error) {
	if c.client == nil {
		return "", errors.New("llm classifier: client is nil")
	}
	if c.model == "" {
		return "", errors.New("llm classifier: model is empty")
	}
	if strings.TrimSpace(text) == "" {
		return models.SentimentNeutral, nil
	}

	format := responses.ResponseFormatTextConfigUnionParam{
		OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
			Name:        "JournalSentiment",
			Schema:      classificationSchema,
			Strict:      openai.Bool(true),
			Description: openai.String("Journal entry sentiment JSON"),
			Type:        "json_schema",
		},
	}

	input := []responses.ResponseInputItemUnionParam{
		responses.ResponseInputItemParamOfMessage(truncate(text, maxContentChars), responses.EasyInputMessageRoleUser),
	}
	params := responses.ResponseNewParams{
		Model:           c.model,
		MaxOutputTokens: openai.Int(50),
		Instructions:    openai.String(instructions),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: input,
		},
		Text: responses.ResponseTextConfigParam{
			Format: format,
		},
	}

	resp, err := callWithRetry(ctx, c.client, params)
	if err != nil {
		return "", err
	}
	return parseLabel(resp.OutputText())
}

func parseLabel(output string) (models.Sentiment, error) {
	var out classification
	if err := json.Unmarshal([]byte(strings.TrimSpace(output)), &out); err != nil {
		return "", fmt.Errorf("failed to decode model output: %w", err)
	}
	s := models.Sentiment(strings.ToLower(strings.TrimSpace(out.Sentiment)))
	if !s.Known() {
		return "", fmt.Errorf("model returned unknown sentiment %q", out.Sentiment)
	}
	return s, nil
}

// truncate caps s at max bytes without splitting a rune.
func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}
