package prompts

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/courtside-ai/courtside-engine/pkg/models"
)

// SummarySystemMessage frames the narration call.
const SummarySystemMessage = "You are a basketball statistics commentator. Write one or two factual sentences summarizing the result rows. Never invent numbers that are not in the data."

// BuildSummaryPrompt creates the narration instruction for a query and its
// result rows. Rows are passed as JSON so the model quotes real values.
func BuildSummaryPrompt(q *models.Query, rows []models.PlayerStatRow) string {
	var b strings.Builder

	fmt.Fprintf(&b, "The user asked a %s question about %s for the %d season.\n\n", q.Task, metricLabel(q.Metric), q.Season)

	if q.Task == models.TaskCompare || q.Metric == models.MetricAll {
		b.WriteString("Summarize each player's full stat line (points, rebounds, assists, steals, blocks, shooting splits), since the user asked for an overall view; a single stat would be misleading here.\n\n")
	} else {
		b.WriteString("Lead with the top player and the requested stat. Percentage stats in the data are fractions; multiply by 100 when quoting them.\n\n")
	}

	b.WriteString("Result rows (JSON):\n")
	payload, err := json.Marshal(rows)
	if err != nil {
		payload = []byte("[]")
	}
	b.Write(payload)
	b.WriteString("\n")

	return b.String()
}

func metricLabel(m models.Metric) string {
	if m == models.MetricAll {
		return "the full stat line"
	}
	if info, ok := models.MetricCatalog[m]; ok {
		return info.Description
	}
	return string(m)
}
