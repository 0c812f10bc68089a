// Package qa implements the question-answering and information-extraction
// exercise.
package qa

import (
	"context"
	"fmt"

	"github.com/practica/exercises/internal/llm"
	"github.com/practica/exercises/pkg/chat"
)

// Answer answers a question, optionally grounded in background text. With
// background the model is told to say when it is insufficient.
func Answer(ctx context.Context, client llm.Client, question, background string) (string, error) {
	if background != "" {
		return client.Chat(ctx, []chat.Message{
			chat.System("You are a helpful assistant that answers questions based on the provided context. If the context doesn't contain enough information, say so and provide the best answer you can."),
			chat.User(fmt.Sprintf("Context: %s\n\nQuestion: %s", background, question)),
		})
	}
	return client.Chat(ctx, []chat.Message{
		chat.System("You are a knowledgeable assistant. Provide accurate, helpful answers to questions. If you're not certain about something, acknowledge the uncertainty."),
		chat.User(question),
	})
}

// extractionPrompts maps info types to their instruction phrases.
var extractionPrompts = map[string]string{
	"main_points":  "Extract the main points and key information",
	"dates":        "Extract all dates and time references",
	"names":        "Extract all names of people, places, and organizations",
	"facts":        "Extract factual claims and statistics",
	"action_items": "Extract action items and next steps",
	"keywords":     "Extract important keywords and technical terms",
}

// ExtractInfo pulls a category of information out of free text. Unlisted
// infoType values are passed through verbatim as "Extract <infoType>".
func ExtractInfo(ctx context.Context, client llm.Client, text, infoType string) (string, error) {
	prompt, ok := extractionPrompts[infoType]
	if !ok {
		prompt = "Extract " + infoType
	}
	return client.Chat(ctx, []chat.Message{
		chat.System(fmt.Sprintf("You are an information extraction specialist. %s from the given text. Present the results in a clear, organized format.", prompt)),
		chat.User("Text to analyze:\n\n" + text),
	})
}

// FactCheck asks for a balanced assessment of a claim.
func FactCheck(ctx context.Context, client llm.Client, claim string) (string, error) {
	return client.Chat(ctx, []chat.Message{
		chat.System("You are a fact-checker. Analyze claims for accuracy based on your knowledge. Provide a balanced assessment, note any uncertainties, and suggest where to verify information."),
		chat.User("Please fact-check this claim: " + claim),
	})
}
