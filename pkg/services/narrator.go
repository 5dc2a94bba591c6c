package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/courtside-ai/courtside-engine/pkg/llm"
	"github.com/courtside-ai/courtside-engine/pkg/models"
	"github.com/courtside-ai/courtside-engine/pkg/prompts"
)

// Narrator turns result rows into a short natural-language summary. The
// text-generation capability does the writing when it can; a deterministic
// template that never fails covers every other case.
type Narrator struct {
	client      llm.LLMClient
	temperature float64
	logger      *zap.Logger
}

// NewNarrator creates a Narrator.
func NewNarrator(client llm.LLMClient, temperature float64, logger *zap.Logger) *Narrator {
	return &Narrator{client: client, temperature: temperature, logger: logger.Named("narrator")}
}

// SummarizeAnswer produces a summary for the query and its rows. It always
// returns a non-empty string when rows exist.
func (n *Narrator) SummarizeAnswer(ctx context.Context, q *models.Query, rows []models.PlayerStatRow) string {
	if len(rows) == 0 {
		return "No qualified players matched that question."
	}

	summary, err := n.client.Generate(ctx, prompts.BuildSummaryPrompt(q, rows), prompts.SummarySystemMessage, n.temperature)
	if err == nil && strings.TrimSpace(summary) != "" {
		return strings.TrimSpace(summary)
	}
	if err != nil {
		n.logger.Warn("narration failed, using template summary", zap.Error(err))
	}

	return TemplateSummary(q, rows)
}

// TemplateSummary is the deterministic fallback narration. Compare-task and
// full-stat-line queries always describe the whole line; a single metric
// would be misleading when the user asked for an overall assessment.
func TemplateSummary(q *models.Query, rows []models.PlayerStatRow) string {
	if len(rows) == 0 {
		return "No qualified players matched that question."
	}

	if q.Task == models.TaskCompare || q.Metric == models.MetricAll {
		lines := make([]string, 0, len(rows))
		for _, row := range rows {
			lines = append(lines, statLine(&row))
		}
		return strings.Join(lines, " ")
	}

	top := rows[0]
	value := top.MetricValue(q.Metric)
	if value == nil {
		return fmt.Sprintf("%s leads the results for the %d season.", top.PlayerName, q.Season)
	}

	label := string(q.Metric)
	if info, ok := models.MetricCatalog[q.Metric]; ok {
		label = info.Description
	}

	out := fmt.Sprintf("%s leads with %s %s in the %d season.",
		top.PlayerName, FormatMetricValue(q.Metric, *value), label, q.Season)

	if len(rows) > 1 {
		second := rows[1]
		if sv := second.MetricValue(q.Metric); sv != nil {
			out += fmt.Sprintf(" %s is next at %s.", second.PlayerName, FormatMetricValue(q.Metric, *sv))
		}
	}

	return out
}

// FormatMetricValue renders a raw stored value for humans. Percentage
// metrics are stored as fractions and converted here, at presentation time,
// never in the executor.
func FormatMetricValue(m models.Metric, value float64) string {
	if models.MetricCatalog[m].Percentage {
		return fmt.Sprintf("%.1f%%", value*100)
	}
	return fmt.Sprintf("%.1f", value)
}

// statLine renders the full line used for compare and all-metric summaries.
func statLine(row *models.PlayerStatRow) string {
	return fmt.Sprintf("%s: %s pts, %s ast, %s reb, %s stl, %s blk, %s 3P%%.",
		row.PlayerName,
		floatOrDash(row.Points),
		floatOrDash(row.Assists),
		floatOrDash(row.Rebounds),
		floatOrDash(row.Steals),
		floatOrDash(row.Blocks),
		pctOrDash(row.FG3Pct),
	)
}

func floatOrDash(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}

func pctOrDash(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v*100)
}
