// Package insights implements the data-analysis narration exercise:
// trend analysis, SQL generation, chart interpretation and report writing.
package insights

import (
	"context"
	"fmt"
	"strings"

	"github.com/practica/exercises/internal/llm"
	"github.com/practica/exercises/pkg/chat"
)

// Trends analyzes a described dataset, optionally with raw data points.
func Trends(ctx context.Context, client llm.Client, description string, points []float64) (string, error) {
	dataContext := "Data description: " + description
	if len(points) > 0 {
		formatted := make([]string, len(points))
		for i, p := range points {
			formatted[i] = fmt.Sprintf("%g", p)
		}
		dataContext += "\nData points: [" + strings.Join(formatted, ", ") + "]"
	}
	return client.Chat(ctx, []chat.Message{
		chat.System("You are a data analyst. Analyze the provided data and identify trends, patterns, anomalies, and actionable insights. Provide clear explanations and recommendations."),
		chat.User("Analyze this data:\n\n" + dataContext),
	})
}

// SQLQuery turns a natural-language question into SQL against a schema.
func SQLQuery(ctx context.Context, client llm.Client, question, schema string) (string, error) {
	return client.Chat(ctx, []chat.Message{
		chat.System("You are a SQL expert. Generate efficient, well-formatted SQL queries based on the requirements. Include comments and explain the query logic."),
		chat.User(fmt.Sprintf("Table/Schema description:\n%s\n\nQuery requirement:\n%s", schema, question)),
	})
}

// InterpretChart explains what a described chart shows.
func InterpretChart(ctx context.Context, client llm.Client, chartType, description string) (string, error) {
	return client.Chat(ctx, []chat.Message{
		chat.System("You are a data visualization expert. Interpret charts and graphs, explaining what the data shows, key trends, and actionable insights."),
		chat.User(fmt.Sprintf("Chart type: %s\n\nChart description:\n%s", chartType, description)),
	})
}

// Report writes a business report from a data summary and context.
func Report(ctx context.Context, client llm.Client, summary, businessContext string) (string, error) {
	return client.Chat(ctx, []chat.Message{
		chat.System("You are a business analyst. Create professional data reports with executive summary, key findings, insights, and actionable recommendations."),
		chat.User(fmt.Sprintf("Business context:\n%s\n\nData summary:\n%s\n\nCreate a comprehensive report.", businessContext, summary)),
	})
}
