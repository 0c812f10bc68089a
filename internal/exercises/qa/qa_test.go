package qa

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/practica/exercises/internal/llm/llmtest"
)

func TestAnswer_WithBackground(t *testing.T) {
	stub := &llmtest.Stub{Replies: []string{"42"}}

	got, err := Answer(context.Background(), stub, "what is the answer?", "the answer is 42")
	require.NoError(t, err)
	assert.Equal(t, "42", got)

	prompt := stub.LastCall()
	assert.Contains(t, prompt[0].Content, "based on the provided context")
	assert.Contains(t, prompt[1].Content, "Context: the answer is 42")
}

func TestAnswer_WithoutBackground(t *testing.T) {
	stub := &llmtest.Stub{Replies: []string{"an answer"}}

	_, err := Answer(context.Background(), stub, "what is Go?", "")
	require.NoError(t, err)

	prompt := stub.LastCall()
	assert.Contains(t, prompt[0].Content, "acknowledge the uncertainty")
	assert.Equal(t, "what is Go?", prompt[1].Content)
}

func TestExtractInfo_KnownAndUnknownTypes(t *testing.T) {
	stub := &llmtest.Stub{Replies: []string{"dates: 2009"}}
	ctx := context.Background()

	_, err := ExtractInfo(ctx, stub, "Go was released in 2009.", "dates")
	require.NoError(t, err)
	assert.Contains(t, stub.LastCall()[0].Content, "Extract all dates and time references")

	_, err = ExtractInfo(ctx, stub, "text", "emails")
	require.NoError(t, err)
	assert.Contains(t, stub.LastCall()[0].Content, "Extract emails")
}

func TestFactCheck(t *testing.T) {
	stub := &llmtest.Stub{Replies: []string{"verdict"}}

	_, err := FactCheck(context.Background(), stub, "the moon is made of cheese")
	require.NoError(t, err)
	assert.Contains(t, stub.LastCall()[1].Content, "the moon is made of cheese")
}
