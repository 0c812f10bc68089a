// The insights command demonstrates the data-insights exercise.
package main

import (
	"context"
	"fmt"

	"github.com/practica/exercises/internal/cli"
	"github.com/practica/exercises/internal/config"
	"github.com/practica/exercises/internal/exercises/insights"
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

	cli.Header("Trend Analysis")
	trend, err := insights.Trends(ctx, client,
		"monthly active users over the last six months",
		[]float64{12500, 13100, 12900, 14800, 16200, 17950})
	if err != nil {
		cli.Fail(err)
	}
	fmt.Println(trend)

	cli.Header("Natural Language to SQL")
	query, err := insights.SQLQuery(ctx, client,
		"top five customers by total order value this year",
		"customers(id, name), orders(id, customer_id, total, created_at)")
	if err != nil {
		cli.Fail(err)
	}
	fmt.Println(query)

	cli.Header("Chart Interpretation")
	interpretation, err := insights.InterpretChart(ctx, client,
		"line", "weekly error rate dropping from 4% to 0.5% after the caching rollout")
	if err != nil {
		cli.Fail(err)
	}
	fmt.Println(interpretation)

	cli.Header("Narrative Report")
	report, err := insights.Report(ctx, client,
		"churn fell 2 points, support response times halved",
		"the retention team doubled in Q2")
	if err != nil {
		cli.Fail(err)
	}
	fmt.Println(report)
}
