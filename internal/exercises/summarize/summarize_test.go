package summarize

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/practica/exercises/internal/llm/llmtest"
)

func TestText_PromptCarriesWordLimit(t *testing.T) {
	stub := &llmtest.Stub{Replies: []string{"a short summary"}}

	got, err := Text(context.Background(), stub, "long article body", 75)
	require.NoError(t, err)
	assert.Equal(t, "a short summary", got)

	prompt := stub.LastCall()
	require.Len(t, prompt, 2)
	assert.Contains(t, prompt[0].Content, "under 75 words")
	assert.Contains(t, prompt[1].Content, "long article body")
}

func TestMany_SummarizesInOrder(t *testing.T) {
	stub := &llmtest.Stub{Replies: []string{"first", "second"}}

	got, err := Many(context.Background(), stub, []string{"t1", "t2"}, 50)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, got)
	assert.Len(t, stub.Calls, 2)
}

func TestMany_PartialResultsOnError(t *testing.T) {
	stub := &llmtest.Stub{Err: errors.New("down")}

	got, err := Many(context.Background(), stub, []string{"t1", "t2"}, 50)
	assert.Error(t, err)
	assert.Empty(t, got)
}

func TestExecutive(t *testing.T) {
	stub := &llmtest.Stub{Replies: []string{"exec summary"}}

	_, err := Executive(context.Background(), stub, "quarterly numbers")
	require.NoError(t, err)
	assert.Contains(t, stub.LastCall()[0].Content, "executive summaries")
}
