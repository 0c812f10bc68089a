// Package summarize implements the text-summarization exercise.
package summarize

import (
	"context"
	"fmt"

	"github.com/practica/exercises/internal/llm"
	"github.com/practica/exercises/pkg/chat"
)

// Text produces a summary capped at roughly maxWords words.
func Text(ctx context.Context, client llm.Client, text string, maxWords int) (string, error) {
	return client.Chat(ctx, []chat.Message{
		chat.System(fmt.Sprintf("You are a text summarization expert. Create concise, accurate summaries that capture the main points and key information. Keep summaries under %d words while preserving essential details. Be neutral and factual.", maxWords)),
		chat.User("Please summarize the following text:\n\n" + text),
	})
}

// Many summarizes each text in order. One failure aborts the batch; the
// summaries produced so far are returned with the error.
func Many(ctx context.Context, client llm.Client, texts []string, maxWords int) ([]string, error) {
	summaries := make([]string, 0, len(texts))
	for i, text := range texts {
		summary, err := Text(ctx, client, text, maxWords)
		if err != nil {
			return summaries, fmt.Errorf("summarizing text %d/%d: %w", i+1, len(texts), err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// Executive produces a business-register summary.
func Executive(ctx context.Context, client llm.Client, content string) (string, error) {
	return client.Chat(ctx, []chat.Message{
		chat.System("You are a business analyst creating executive summaries. Focus on key insights, actionable items, and strategic implications. Use professional language suitable for senior management."),
		chat.User("Create an executive summary for the following content:\n\n" + content),
	})
}
