package prompts

import (
	"encoding/json"
	"strings"

	"github.com/courtside-ai/courtside-engine/pkg/models"
)

// QuerySchemaName identifies the structured-query schema in the
// response_format request.
const QuerySchemaName = "basketball_query"

// QueryJSONSchema is the JSON schema constraining translation output. Built
// once at init from the same enum sets the validator enforces, so the schema
// and the validator cannot drift apart.
var QueryJSONSchema = buildQuerySchema()

func buildQuerySchema() json.RawMessage {
	metricEnum := make([]string, 0, len(models.MetricCatalog)+1)
	for _, m := range sortedMetrics() {
		metricEnum = append(metricEnum, string(m))
	}
	metricEnum = append(metricEnum, string(models.MetricAll))

	taskEnum := []string{
		string(models.TaskRank), string(models.TaskLeaders), string(models.TaskLookup),
		string(models.TaskCompare), string(models.TaskTeam),
		string(models.TaskHistoricalComparison), string(models.TaskSolo),
	}

	rangeSchema := map[string]any{
		"type": []string{"object", "null"},
		"properties": map[string]any{
			"gte": map[string]any{"type": []string{"number", "null"}},
			"lte": map[string]any{"type": []string{"number", "null"}},
		},
		"additionalProperties": false,
	}

	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"task":   map[string]any{"type": "string", "enum": taskEnum},
			"metric": map[string]any{"type": []string{"string", "null"}, "enum": appendNull(metricEnum)},
			"season": map[string]any{"type": "integer"},
			"team": map[string]any{
				"anyOf": []any{
					map[string]any{"type": "string"},
					map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					map[string]any{"type": "null"},
				},
			},
			"position": map[string]any{
				"type": []string{"string", "null"},
				"enum": []any{"guards", "forwards", "centers", nil},
			},
			"clutch":          map[string]any{"type": []string{"boolean", "null"}},
			"order_direction": map[string]any{"type": []string{"string", "null"}, "enum": []any{"asc", "desc", nil}},
			"limit":           map[string]any{"type": []string{"integer", "null"}},
			"filters": map[string]any{
				"type": []string{"object", "null"},
				"properties": map[string]any{
					"players":          map[string]any{"type": []string{"array", "null"}, "items": map[string]any{"type": "string"}},
					"min_games":        map[string]any{"type": []string{"integer", "null"}},
					"draft_year_range": rangeSchema,
					"colleges":         map[string]any{"type": []string{"array", "null"}, "items": map[string]any{"type": "string"}},
					"countries":        map[string]any{"type": []string{"array", "null"}, "items": map[string]any{"type": "string"}},
					"age_range":        rangeSchema,
					"minutes_range":    rangeSchema,
					"salary_range":     rangeSchema,
					"min_metric_value": map[string]any{"type": []string{"number", "null"}},
					"filter_by_metric": map[string]any{"type": []string{"string", "null"}, "enum": appendNull(metricEnum)},
					"order_by_age":     map[string]any{"type": []string{"string", "null"}, "enum": []any{"asc", "desc", nil}},
				},
				"additionalProperties": false,
			},
			"historical_comparison_count": map[string]any{
				"anyOf": []any{
					map[string]any{"type": "integer"},
					map[string]any{"type": "string", "enum": []string{"all"}},
					map[string]any{"type": "null"},
				},
			},
		},
		"required":             []string{"task", "metric", "season"},
		"additionalProperties": false,
	}

	raw, err := json.Marshal(schema)
	if err != nil {
		// The schema is assembled from literals; a marshal failure is a
		// programming error.
		panic("marshal query schema: " + err.Error())
	}
	return raw
}

func appendNull(values []string) []any {
	out := make([]any, 0, len(values)+1)
	for _, v := range values {
		out = append(out, v)
	}
	out = append(out, nil)
	return out
}

// ContainsTeamAlias reports whether the question mentions any team name,
// nickname, or abbreviation. Used by tests and by the fallback task
// precedence check.
func ContainsTeamAlias(question string) bool {
	lower := strings.ToLower(question)
	for _, t := range TeamDictionary {
		if strings.Contains(lower, strings.ToLower(t.Name)) {
			return true
		}
		for _, a := range t.Aliases {
			if strings.Contains(lower, a) {
				return true
			}
		}
	}
	return false
}
