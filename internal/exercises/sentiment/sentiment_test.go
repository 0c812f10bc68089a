package sentiment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/practica/exercises/internal/llm"
	"github.com/practica/exercises/internal/llm/llmtest"
	"github.com/practica/exercises/pkg/chat"
)

func TestClassify_CanonicalLabel(t *testing.T) {
	stub := &llmtest.Stub{Replies: []string{"Positive"}}

	label, err := Classify(context.Background(), stub, "Great product!")
	require.NoError(t, err)
	assert.Equal(t, Positive, label)

	// The prompt leads with the system instruction and ends with the review.
	prompt := stub.LastCall()
	require.Len(t, prompt, 2)
	assert.Equal(t, chat.RoleSystem, prompt[0].Role)
	assert.Contains(t, prompt[1].Content, "Great product!")
}

func TestClassify_DriftedReplyFallsBack(t *testing.T) {
	tests := []struct {
		reply string
		want  string
	}{
		{"The sentiment is positive.", Positive},
		{"I would say this is Negative overall", Negative},
		{"hard to say", Neutral},
		{"", Neutral},
	}

	for _, tc := range tests {
		stub := &llmtest.Stub{Replies: []string{tc.reply}}
		label, err := Classify(context.Background(), stub, "review")
		require.NoError(t, err)
		assert.Equal(t, tc.want, label, "reply %q", tc.reply)
	}
}

func TestAnalyze_ValidJSONRoundTrips(t *testing.T) {
	stub := &llmtest.Stub{Replies: []string{`{"sentiment":"positive","confidence":"high","explanation":"enthusiastic language"}`}}

	a, err := Analyze(context.Background(), stub, "Love it!")
	require.NoError(t, err)
	assert.Equal(t, Analysis{
		Sentiment:   "positive",
		Confidence:  "high",
		Explanation: "enthusiastic language",
	}, a)
}

func TestAnalyze_FencedJSONAccepted(t *testing.T) {
	stub := &llmtest.Stub{Replies: []string{"```json\n{\"sentiment\":\"negative\",\"confidence\":\"medium\",\"explanation\":\"complaints\"}\n```"}}

	a, err := Analyze(context.Background(), stub, "broken again")
	require.NoError(t, err)
	assert.Equal(t, "negative", a.Sentiment)
}

func TestAnalyze_MalformedJSONUsesFallback(t *testing.T) {
	stub := &llmtest.Stub{Replies: []string{"Sure! The sentiment is positive because..."}}

	a, err := Analyze(context.Background(), stub, "text")
	require.NoError(t, err)
	assert.Equal(t, "unknown", a.Sentiment)
	assert.Equal(t, "low", a.Confidence)
	assert.Equal(t, "Sure! The sentiment is positive because...", a.Explanation)
}

func TestAnalyze_ProviderErrorPropagates(t *testing.T) {
	stub := &llmtest.Stub{Err: &llm.ProviderError{Provider: llm.OpenAI, Err: errors.New("boom")}}

	_, err := Analyze(context.Background(), stub, "text")
	var provErr *llm.ProviderError
	assert.ErrorAs(t, err, &provErr)
}

func TestClassifyBatchAndSummary(t *testing.T) {
	stub := &llmtest.Stub{Replies: []string{"Positive", "Negative", "Neutral", "Positive"}}

	results, err := ClassifyBatch(context.Background(), stub, []string{"a", "b", "c", "d"})
	require.NoError(t, err)
	require.Len(t, results, 4)

	s := Summarize(results)
	assert.Equal(t, Summary{Total: 4, Positive: 2, Negative: 1, Neutral: 1}, s)

	table := RenderTable(results)
	assert.Contains(t, table, "Positive: 2 (50.0%)")
}

func TestClassifyBatch_StopsOnError(t *testing.T) {
	stub := &llmtest.Stub{Err: errors.New("transport down")}

	results, err := ClassifyBatch(context.Background(), stub, []string{"a", "b"})
	assert.Error(t, err)
	assert.Empty(t, results)
}
