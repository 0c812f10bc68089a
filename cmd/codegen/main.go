// The codegen command demonstrates the code-generation exercise.
package main

import (
	"context"
	"fmt"

	"github.com/practica/exercises/internal/cli"
	"github.com/practica/exercises/internal/config"
	"github.com/practica/exercises/internal/exercises/codegen"
	"github.com/practica/exercises/internal/llm"
	"github.com/practica/exercises/internal/platform/logger"
)

const sample = `def fibonacci(n):
    if n <= 1:
        return n
    return fibonacci(n-1) + fibonacci(n-2)`

func main() {
	cfg, err := config.Load()
	if err != nil {
		cli.Fail(err)
	}
	logger.Initialize(logger.DefaultConfig())
	defer logger.Sync()

	client, err := llm.Default(cfg)
	if err != nil {
		cli.Fail(err)
	}
	ctx := context.Background()

	cli.Header("Generate a Solution")
	code, err := codegen.Generate(ctx, client,
		"Write a function that checks if a string is a palindrome, ignoring case and spaces.",
		"python")
	if err != nil {
		cli.Fail(err)
	}
	fmt.Println(code)

	cli.Header("Explain Existing Code")
	explanation, err := codegen.Explain(ctx, client, sample)
	if err != nil {
		cli.Fail(err)
	}
	fmt.Println(explanation)

	cli.Header("Review Existing Code")
	review, err := codegen.Review(ctx, client, sample)
	if err != nil {
		cli.Fail(err)
	}
	fmt.Println(review)
}
