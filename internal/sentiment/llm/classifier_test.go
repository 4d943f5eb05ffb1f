package llm

import (
	"context"
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/AadarshCanCode/Wellnest/internal/models"
	"github.com/AadarshCanCode/Wellnest/internal/sentiment"
)

func TestClassify_FallsBackWithoutClient(t *testing.T) {
	fallback := sentiment.ClassifierFunc(func(string) models.Sentiment {
		return models.SentimentPositive
	})
	c := New(nil, "gpt-4o-mini", fallback)

	if got := c.Classify("anything at all"); got != models.SentimentPositive {
		t.Errorf("Classify() = %v, want fallback result positive", got)
	}
}

func TestClassify_DefaultFallbackIsKeyword(t *testing.T) {
	c := New(nil, "", nil)

	if got := c.Classify("I am anxious and happy"); got != models.SentimentAnxious {
		t.Errorf("Classify() = %v, want anxious", got)
	}
}

func TestClassifyContext_Errors(t *testing.T) {
	c := New(nil, "model", nil)
	if _, err := c.ClassifyContext(context.Background(), "text"); err == nil {
		t.Error("expected error for nil client")
	}
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    models.Sentiment
		wantErr bool
	}{
		{name: "valid", output: `{"sentiment":"anxious"}`, want: models.SentimentAnxious},
		{name: "surrounding whitespace and case", output: "  {\"sentiment\":\" Positive \"}\n", want: models.SentimentPositive},
		{name: "unknown label", output: `{"sentiment":"ecstatic"}`, wantErr: true},
		{name: "not json", output: `positive`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLabel(tt.output)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseLabel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseLabel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short", in: "  calm day ", max: 20, want: "calm day"},
		{name: "ascii cut", in: "abcdef", max: 3, want: "abc…"},
		{name: "inside two-byte rune", in: "caféine", max: 4, want: "caf…"},
		{name: "after two-byte rune", in: "caféine", max: 5, want: "café…"},
		{name: "inside emoji", in: "ok 💚 fine", max: 5, want: "ok …"},
		{name: "no limit", in: "anything", max: 0, want: "anything"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) = %q is not valid UTF-8", tt.in, tt.max, got)
			}
		})
	}
}

func TestGenerateSchema(t *testing.T) {
	schema := GenerateSchema[classification]()

	if schema["additionalProperties"] != false {
		t.Errorf("additionalProperties = %v, want false", schema["additionalProperties"])
	}
	props, ok := schema["properties"].(map[string]interface{})
	if !ok {
		t.Fatalf("schema has no properties: %v", schema)
	}
	if _, ok := props["sentiment"]; !ok {
		t.Errorf("schema properties missing sentiment: %v", props)
	}
	required, ok := schema["required"].([]string)
	if !ok || len(required) != 1 || required[0] != "sentiment" {
		t.Errorf("required = %v, want [sentiment]", schema["required"])
	}
}

func TestRetryClassification(t *testing.T) {
	if !isRateLimitError(errors.New("429 Too Many Requests")) {
		t.Error("expected 429 to be a rate limit error")
	}
	if !isServerError(errors.New("500 internal server error")) {
		t.Error("expected 500 to be a server error")
	}
	if isRateLimitError(nil) || isServerError(nil) {
		t.Error("nil errors must not be retryable")
	}
}
