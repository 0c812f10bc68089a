// Package codegen implements the code generation, explanation and review
// exercise.
package codegen

import (
	"context"
	"fmt"

	"github.com/practica/exercises/internal/llm"
	"github.com/practica/exercises/pkg/chat"
)

// Generate writes code in the given language from a problem description.
func Generate(ctx context.Context, client llm.Client, problem, language string) (string, error) {
	return client.Chat(ctx, []chat.Message{
		chat.System(fmt.Sprintf("You are an expert %s programmer. Generate clean, well-commented code that solves the given problem. Include error handling where appropriate.", language)),
		chat.User(fmt.Sprintf("Write %s code to solve this problem:\n\n%s", language, problem)),
	})
}

// Explain describes how a piece of code works.
func Explain(ctx context.Context, client llm.Client, code string) (string, error) {
	return client.Chat(ctx, []chat.Message{
		chat.System("You are a helpful programming tutor. Explain code clearly and concisely, breaking down complex concepts."),
		chat.User(fmt.Sprintf("Please explain how this code works:\n\n```\n%s\n```", code)),
	})
}

// Review critiques code for bugs, performance and best practices.
func Review(ctx context.Context, client llm.Client, code string) (string, error) {
	return client.Chat(ctx, []chat.Message{
		chat.System("You are an experienced code reviewer. Analyze the code for potential bugs, performance issues, best practices, and suggest improvements."),
		chat.User(fmt.Sprintf("Please review this code and provide feedback:\n\n```\n%s\n```", code)),
	})
}
