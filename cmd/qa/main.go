// The qa command demonstrates the question-answering exercise.
package main

import (
	"context"
	"fmt"

	"github.com/practica/exercises/internal/cli"
	"github.com/practica/exercises/internal/config"
	"github.com/practica/exercises/internal/exercises/qa"
	"github.com/practica/exercises/internal/llm"
	"github.com/practica/exercises/internal/platform/logger"
)

const document = `Go was designed at Google in 2007 by Robert Griesemer, Rob
Pike, and Ken Thompson. It was publicly announced in November 2009, and version
1.0 was released in March 2012. The language emphasizes simplicity, fast
compilation, and built-in support for concurrent programming.`

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

	cli.Header("Question With Context")
	answer, err := qa.Answer(ctx, client, "When was Go publicly announced?", document)
	if err != nil {
		cli.Fail(err)
	}
	fmt.Println(answer)

	cli.Header("Open Question")
	open, err := qa.Answer(ctx, client, "What are goroutines?", "")
	if err != nil {
		cli.Fail(err)
	}
	fmt.Println(open)

	cli.Header("Information Extraction")
	for _, infoType := range []string{"dates", "names"} {
		extracted, err := qa.ExtractInfo(ctx, client, document, infoType)
		if err != nil {
			cli.Fail(err)
		}
		fmt.Printf("%s %s:\n%s\n", cli.CheckMark(), infoType, extracted)
		cli.Rule()
	}

	cli.Header("Fact Checking")
	verdict, err := qa.FactCheck(ctx, client, "Go 1.0 was released in 2009.")
	if err != nil {
		cli.Fail(err)
	}
	fmt.Println(verdict)
}
