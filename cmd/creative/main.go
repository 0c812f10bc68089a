// The creative command demonstrates the creative-writing exercise.
package main

import (
	"context"
	"fmt"

	"github.com/practica/exercises/internal/cli"
	"github.com/practica/exercises/internal/config"
	"github.com/practica/exercises/internal/exercises/creative"
	"github.com/practica/exercises/internal/llm"
	"github.com/practica/exercises/internal/platform/logger"
)

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

	cli.Header("Short Story")
	story, err := creative.Story(ctx, client,
		"a lighthouse keeper discovers the light attracts more than ships",
		"mystery", "short")
	if err != nil {
		cli.Fail(err)
	}
	fmt.Println(story)

	cli.Header("Blog Post")
	post, err := creative.BlogPost(ctx, client,
		"why small teams ship faster", "conversational", "engineering managers")
	if err != nil {
		cli.Fail(err)
	}
	fmt.Println(post)

	cli.Header("Product Description")
	desc, err := creative.ProductDescription(ctx, client,
		"Trailblazer 40L Backpack",
		[]string{"waterproof zippers", "padded laptop sleeve", "lifetime warranty"},
		"weekend hikers")
	if err != nil {
		cli.Fail(err)
	}
	fmt.Println(desc)
}
