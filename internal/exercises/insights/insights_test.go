package insights

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/practica/exercises/internal/llm/llmtest"
)

func TestTrends_IncludesDataPoints(t *testing.T) {
	stub := &llmtest.Stub{Replies: []string{"upward trend"}}

	_, err := Trends(context.Background(), stub, "monthly revenue", []float64{100, 120.5, 140})
	require.NoError(t, err)

	prompt := stub.LastCall()
	assert.Contains(t, prompt[1].Content, "Data description: monthly revenue")
	assert.Contains(t, prompt[1].Content, "[100, 120.5, 140]")
}

func TestTrends_WithoutPoints(t *testing.T) {
	stub := &llmtest.Stub{Replies: []string{"analysis"}}

	_, err := Trends(context.Background(), stub, "sensor readings", nil)
	require.NoError(t, err)
	assert.NotContains(t, stub.LastCall()[1].Content, "Data points")
}

func TestSQLQuery(t *testing.T) {
	stub := &llmtest.Stub{Replies: []string{"SELECT 1"}}

	_, err := SQLQuery(context.Background(), stub, "total revenue per month", "orders(id, total, created_at)")
	require.NoError(t, err)

	prompt := stub.LastCall()
	assert.Contains(t, prompt[0].Content, "SQL expert")
	assert.Contains(t, prompt[1].Content, "orders(id, total, created_at)")
}

func TestInterpretChartAndReport(t *testing.T) {
	stub := &llmtest.Stub{Replies: []string{"interpretation", "report"}}
	ctx := context.Background()

	_, err := InterpretChart(ctx, stub, "bar", "sales per region")
	require.NoError(t, err)
	assert.Contains(t, stub.LastCall()[1].Content, "Chart type: bar")

	_, err = Report(ctx, stub, "revenue grew 12%", "Q3 planning")
	require.NoError(t, err)
	assert.Contains(t, stub.LastCall()[1].Content, "Business context:\nQ3 planning")
}
