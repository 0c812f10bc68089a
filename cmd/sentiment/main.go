// The sentiment command demonstrates the sentiment-analysis exercise
// against the configured provider.
package main

import (
	"context"
	"fmt"

	"github.com/practica/exercises/internal/cli"
	"github.com/practica/exercises/internal/config"
	"github.com/practica/exercises/internal/exercises/sentiment"
	"github.com/practica/exercises/internal/llm"
	"github.com/practica/exercises/internal/platform/logger"
)

var reviews = []string{
	"This product exceeded all my expectations, absolutely wonderful!",
	"Terrible quality, broke after two days. Complete waste of money.",
	"The package arrived on Tuesday as scheduled.",
	"Decent value for the price, though shipping took a while.",
}

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

	cli.Header("Basic Sentiment Classification")
	label, err := sentiment.Classify(ctx, client, reviews[0])
	if err != nil {
		cli.Fail(err)
	}
	fmt.Printf("%s %q -> %s\n", cli.CheckMark(), reviews[0], cli.Style(label, cli.Cyan))

	cli.Header("Structured Analysis")
	analysis, err := sentiment.Analyze(ctx, client, reviews[1])
	if err != nil {
		cli.Fail(err)
	}
	fmt.Printf("Sentiment:   %s\n", analysis.Sentiment)
	fmt.Printf("Confidence:  %s\n", analysis.Confidence)
	fmt.Printf("Explanation: %s\n", analysis.Explanation)

	cli.Header("Comparing Two Texts")
	comparison, err := sentiment.Compare(ctx, client, reviews[0], reviews[1])
	if err != nil {
		cli.Fail(err)
	}
	fmt.Println(comparison)

	cli.Header("Batch Classification")
	results, err := sentiment.ClassifyBatch(ctx, client, reviews)
	if err != nil {
		cli.Fail(err)
	}
	fmt.Print(sentiment.RenderTable(results))
}
