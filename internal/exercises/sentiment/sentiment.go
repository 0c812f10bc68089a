// Package sentiment implements the sentiment-classification exercise:
// prompt-engineered single-label classification, JSON-structured analysis
// with a documented fallback, pairwise comparison and batch reporting.
package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/practica/exercises/internal/llm"
	"github.com/practica/exercises/internal/platform/logger"
	"github.com/practica/exercises/pkg/chat"
)

// Canonical classification labels.
const (
	Positive = "Positive"
	Negative = "Negative"
	Neutral  = "Neutral"
)

const classifySystemPrompt = `You are an expert sentiment analysis specialist with years of experience in customer feedback classification.

Your task is to classify customer reviews into exactly one of these three categories:
- Positive: Reviews expressing satisfaction, praise, or positive experiences
- Negative: Reviews expressing dissatisfaction, complaints, or negative experiences
- Neutral: Reviews that are balanced, factual, or express mixed/no clear sentiment

IMPORTANT GUIDELINES:
1. Focus on the overall emotional tone and customer satisfaction level
2. Consider context - a complaint followed by praise may still be positive overall
3. Neutral reviews often contain factual statements without strong emotional indicators
4. Even mild expressions of satisfaction should be classified as Positive
5. Even mild expressions of dissatisfaction should be classified as Negative

RESPONSE FORMAT: Respond with ONLY the classification word: Positive, Negative, or Neutral

EXAMPLES:
- "Great product, works perfectly!" -> Positive
- "Terrible experience, waste of money" -> Negative
- "Product arrived on time, standard quality" -> Neutral
- "Had some issues initially but customer service fixed everything" -> Positive`

// Classify returns one of the canonical labels for a customer review. When
// the model drifts from the requested format, the reply is matched
// case-insensitively; anything unrecognizable degrades to Neutral.
func Classify(ctx context.Context, client llm.Client, text string) (string, error) {
	reply, err := client.Chat(ctx, []chat.Message{
		chat.System(classifySystemPrompt),
		chat.User("Classify this customer review: " + text),
	})
	if err != nil {
		return "", err
	}

	label := strings.TrimSpace(reply)
	switch label {
	case Positive, Negative, Neutral:
		return label, nil
	}

	logger.Warn("classification drifted from canonical labels, applying fallback",
		zap.String("reply", label))
	lower := strings.ToLower(label)
	switch {
	case strings.Contains(lower, "positive"):
		return Positive, nil
	case strings.Contains(lower, "negative"):
		return Negative, nil
	default:
		return Neutral, nil
	}
}

// Analysis is the structured output of Analyze.
type Analysis struct {
	Sentiment   string `json:"sentiment"`
	Confidence  string `json:"confidence"`
	Explanation string `json:"explanation"`
}

// FallbackAnalysis is the documented substitute when the model's reply is
// not valid JSON. The raw reply is preserved as the explanation.
func FallbackAnalysis(raw string) Analysis {
	return Analysis{Sentiment: "unknown", Confidence: "low", Explanation: raw}
}

// Analyze requests a JSON-structured sentiment breakdown. A malformed reply
// never fails the call: it degrades to FallbackAnalysis and a warning.
func Analyze(ctx context.Context, client llm.Client, text string) (Analysis, error) {
	reply, err := client.Chat(ctx, []chat.Message{
		chat.System("You are a sentiment analysis expert. Analyze the sentiment of the given text and respond with ONLY a JSON object containing 'sentiment' (positive/negative/neutral), 'confidence' (high/medium/low), and 'explanation' (brief reason)."),
		chat.User("Analyze the sentiment of this text: " + text),
	}, chat.WithJSONObject())
	if err != nil {
		return Analysis{}, err
	}

	var a Analysis
	if err := json.Unmarshal([]byte(stripFences(reply)), &a); err != nil {
		logger.Warn("analysis reply was not valid JSON, using fallback", zap.Error(err))
		return FallbackAnalysis(reply), nil
	}
	return a, nil
}

// stripFences removes a markdown code fence around a JSON reply. Models add
// them even when told not to.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// Compare asks the model to contrast the sentiments of two texts.
func Compare(ctx context.Context, client llm.Client, text1, text2 string) (string, error) {
	return client.Chat(ctx, []chat.Message{
		chat.System("You are a sentiment analysis expert. Compare the sentiments of two texts and explain the differences."),
		chat.User(fmt.Sprintf("Compare the sentiments of these two texts:\n\nText 1: %s\n\nText 2: %s", text1, text2)),
	})
}

// Result pairs a review with its classification.
type Result struct {
	Review    string
	Sentiment string
}

// ClassifyBatch classifies reviews sequentially. A provider error on one
// review aborts the batch; partial results are returned alongside the error.
func ClassifyBatch(ctx context.Context, client llm.Client, reviews []string) ([]Result, error) {
	results := make([]Result, 0, len(reviews))
	for _, review := range reviews {
		label, err := Classify(ctx, client, review)
		if err != nil {
			return results, fmt.Errorf("classifying %q: %w", truncate(review, 40), err)
		}
		results = append(results, Result{Review: review, Sentiment: label})
	}
	return results, nil
}

// Summary counts labels across a batch.
type Summary struct {
	Total    int
	Positive int
	Negative int
	Neutral  int
}

func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Sentiment {
		case Positive:
			s.Positive++
		case Negative:
			s.Negative++
		default:
			s.Neutral++
		}
	}
	return s
}

// RenderTable formats batch results the way the demo prints them.
func RenderTable(results []Result) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-3s %-70s %s\n", "#", "Review", "Sentiment"))
	b.WriteString(strings.Repeat("-", 90) + "\n")
	for i, r := range results {
		b.WriteString(fmt.Sprintf("%-3d %-70s %s\n", i+1, truncate(r.Review, 67), r.Sentiment))
	}

	s := Summarize(results)
	if s.Total > 0 {
		b.WriteString(strings.Repeat("-", 90) + "\n")
		b.WriteString(fmt.Sprintf("Total: %d  Positive: %d (%.1f%%)  Negative: %d (%.1f%%)  Neutral: %d (%.1f%%)\n",
			s.Total,
			s.Positive, pct(s.Positive, s.Total),
			s.Negative, pct(s.Negative, s.Total),
			s.Neutral, pct(s.Neutral, s.Total),
		))
	}
	return b.String()
}

func pct(n, total int) float64 {
	return float64(n) / float64(total) * 100
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
