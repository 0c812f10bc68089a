// The summarize command demonstrates the text-summarization exercise.
package main

import (
	"context"
	"fmt"

	"github.com/practica/exercises/internal/cli"
	"github.com/practica/exercises/internal/config"
	"github.com/practica/exercises/internal/exercises/summarize"
	"github.com/practica/exercises/internal/llm"
	"github.com/practica/exercises/internal/platform/logger"
)

const article = `Artificial intelligence has transformed the way businesses operate
across every industry. From automating routine tasks to providing deep insights
through data analysis, AI technologies are becoming indispensable tools. Machine
learning models can now predict customer behavior, optimize supply chains, and
even assist in creative work. However, this rapid adoption also raises questions
about workforce displacement, data privacy, and the concentration of
technological power in a small number of companies.`

const meeting = `The quarterly review covered three topics. Revenue grew 12%
against forecast, driven mostly by the new subscription tier. Support ticket
volume doubled after the March release, and the team agreed to hire two
additional engineers. Finally, the data migration project slipped by six weeks
due to unexpected schema incompatibilities.`

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

	cli.Header("Basic Summarization (50 words)")
	summary, err := summarize.Text(ctx, client, article, 50)
	if err != nil {
		cli.Fail(err)
	}
	fmt.Println(summary)

	cli.Header("Tight Summarization (20 words)")
	short, err := summarize.Text(ctx, client, article, 20)
	if err != nil {
		cli.Fail(err)
	}
	fmt.Println(short)

	cli.Header("Executive Summary")
	exec, err := summarize.Executive(ctx, client, meeting)
	if err != nil {
		cli.Fail(err)
	}
	fmt.Println(exec)

	cli.Header("Batch Summarization")
	summaries, err := summarize.Many(ctx, client, []string{article, meeting}, 30)
	if err != nil {
		cli.Fail(err)
	}
	for i, s := range summaries {
		fmt.Printf("%s Text %d: %s\n", cli.CheckMark(), i+1, s)
		cli.Rule()
	}
}
