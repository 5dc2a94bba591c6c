package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/courtside-ai/courtside-engine/pkg/llm"
	"github.com/courtside-ai/courtside-engine/pkg/models"
)

func floatPtr(v float64) *float64 { return &v }

func testRows() []models.PlayerStatRow {
	return []models.PlayerStatRow{
		{
			PlayerName: "Shai Gilgeous-Alexander",
			Points:     floatPtr(32.7),
			Rebounds:   floatPtr(5.0),
			Assists:    floatPtr(6.4),
			Steals:     floatPtr(1.7),
			Blocks:     floatPtr(1.0),
			FG3Pct:     floatPtr(0.375),
		},
		{
			PlayerName: "Luka Doncic",
			Points:     floatPtr(31.2),
			Rebounds:   floatPtr(9.1),
			Assists:    floatPtr(8.3),
			Steals:     floatPtr(1.4),
			Blocks:     floatPtr(0.5),
			FG3Pct:     floatPtr(0.354),
		},
	}
}

func TestSummarizeAnswerUsesModelOutput(t *testing.T) {
	mock := llm.NewMockLLMClient()
	mock.GenerateFunc = func(context.Context, string, string, float64) (string, error) {
		return "  SGA leads the league in scoring.  ", nil
	}
	n := NewNarrator(mock, 0, zap.NewNop())

	q := &models.Query{Task: models.TaskRank, Metric: models.MetricPPG, Season: 2026}
	got := n.SummarizeAnswer(context.Background(), q, testRows())

	assert.Equal(t, "SGA leads the league in scoring.", got)
}

func TestSummarizeAnswerFallsBackOnError(t *testing.T) {
	mock := llm.NewMockLLMClient()
	mock.GenerateFunc = func(context.Context, string, string, float64) (string, error) {
		return "", errors.New("connection refused")
	}
	n := NewNarrator(mock, 0, zap.NewNop())

	q := &models.Query{Task: models.TaskRank, Metric: models.MetricPPG, Season: 2026}
	got := n.SummarizeAnswer(context.Background(), q, testRows())

	assert.Equal(t, TemplateSummary(q, testRows()), got)
	assert.NotEmpty(t, got)
}

func TestSummarizeAnswerFallsBackOnBlankOutput(t *testing.T) {
	mock := llm.NewMockLLMClient()
	mock.GenerateFunc = func(context.Context, string, string, float64) (string, error) {
		return "   \n", nil
	}
	n := NewNarrator(mock, 0, zap.NewNop())

	q := &models.Query{Task: models.TaskRank, Metric: models.MetricPPG, Season: 2026}
	got := n.SummarizeAnswer(context.Background(), q, testRows())

	assert.Equal(t, TemplateSummary(q, testRows()), got)
}

func TestSummarizeAnswerEmptyRows(t *testing.T) {
	mock := llm.NewMockLLMClient()
	n := NewNarrator(mock, 0, zap.NewNop())

	got := n.SummarizeAnswer(context.Background(), &models.Query{Task: models.TaskRank, Metric: models.MetricPPG, Season: 2026}, nil)

	assert.Equal(t, "No qualified players matched that question.", got)
	assert.Zero(t, mock.GenerateCalls, "no model call for an empty result")
}

func TestTemplateSummarySingleMetric(t *testing.T) {
	q := &models.Query{Task: models.TaskRank, Metric: models.MetricPPG, Season: 2026}
	got := TemplateSummary(q, testRows())

	assert.Contains(t, got, "Shai Gilgeous-Alexander leads with 32.7 points per game in the 2026 season.")
	assert.Contains(t, got, "Luka Doncic is next at 31.2.")
}

func TestTemplateSummaryPercentageConversion(t *testing.T) {
	rows := []models.PlayerStatRow{
		{PlayerName: "Stephen Curry", FG3Pct: floatPtr(0.427)},
	}
	q := &models.Query{Task: models.TaskRank, Metric: models.MetricThreePct, Season: 2026}

	got := TemplateSummary(q, rows)
	assert.Contains(t, got, "42.7%", "stored fractions render as percentages")
	assert.NotContains(t, got, "0.4")
}

func TestTemplateSummaryCompareUsesFullStatLines(t *testing.T) {
	q := &models.Query{Task: models.TaskCompare, Metric: models.MetricAll, Season: 2026}
	got := TemplateSummary(q, testRows())

	for _, fragment := range []string{
		"Shai Gilgeous-Alexander: 32.7 pts",
		"Luka Doncic: 31.2 pts",
		"9.1 reb",
		"37.5 3P%",
	} {
		assert.Contains(t, got, fragment)
	}
	assert.False(t, strings.Contains(got, "leads with"), "compare summaries never rank")
}

func TestTemplateSummaryMissingValues(t *testing.T) {
	rows := []models.PlayerStatRow{{PlayerName: "Rookie Guard"}}

	q := &models.Query{Task: models.TaskCompare, Metric: models.MetricAll, Season: 2026}
	assert.Contains(t, TemplateSummary(q, rows), "Rookie Guard: - pts")

	q = &models.Query{Task: models.TaskRank, Metric: models.MetricPPG, Season: 2026}
	assert.Equal(t, "Rookie Guard leads the results for the 2026 season.", TemplateSummary(q, rows))
}

func TestFormatMetricValue(t *testing.T) {
	assert.Equal(t, "27.3", FormatMetricValue(models.MetricPPG, 27.3))
	assert.Equal(t, "51.2%", FormatMetricValue(models.MetricFGPct, 0.512))
	assert.Equal(t, "61.0%", FormatMetricValue(models.MetricTSPct, 0.61))
}
