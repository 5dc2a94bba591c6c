package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQueryValid(t *testing.T) {
	raw := []byte(`{"task": "rank", "metric": "ppg", "season": 2026}`)

	q, err := ParseQuery(raw, true)
	require.NoError(t, err)
	assert.Equal(t, TaskRank, q.Task)
	assert.Equal(t, MetricPPG, q.Metric)
	assert.Equal(t, 2026, q.Season)
	assert.Equal(t, OrderDesc, q.OrderDirection)
	assert.Equal(t, DefaultLimit, q.Limit)
}

func TestParseQueryStrictRejectsUnknownKeys(t *testing.T) {
	raw := []byte(`{"task": "rank", "metric": "ppg", "season": 2026, "made_up": true}`)

	_, err := ParseQuery(raw, true)
	require.Error(t, err)

	var violation *SchemaViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, "query", violation.Field)

	// The lenient variant tolerates the same payload.
	_, err = ParseQuery(raw, false)
	assert.NoError(t, err)
}

func TestParseQueryRejections(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		field string
	}{
		{
			name:  "missing task",
			raw:   `{"metric": "ppg", "season": 2026}`,
			field: "task",
		},
		{
			name:  "unknown task",
			raw:   `{"task": "predict", "metric": "ppg", "season": 2026}`,
			field: "task",
		},
		{
			name:  "missing metric",
			raw:   `{"task": "rank", "season": 2026}`,
			field: "metric",
		},
		{
			name:  "unknown metric",
			raw:   `{"task": "rank", "metric": "dunks", "season": 2026}`,
			field: "metric",
		},
		{
			name:  "missing season",
			raw:   `{"task": "rank", "metric": "ppg"}`,
			field: "season",
		},
		{
			name:  "negative season",
			raw:   `{"task": "rank", "metric": "ppg", "season": -3}`,
			field: "season",
		},
		{
			name:  "unknown position",
			raw:   `{"task": "rank", "metric": "ppg", "season": 2026, "position": "wings"}`,
			field: "position",
		},
		{
			name:  "unknown order direction",
			raw:   `{"task": "rank", "metric": "ppg", "season": 2026, "order_direction": "sideways"}`,
			field: "order_direction",
		},
		{
			name:  "unknown filter metric",
			raw:   `{"task": "rank", "metric": "ppg", "season": 2026, "filters": {"filter_by_metric": "dunks", "min_metric_value": 5}}`,
			field: "filters.filter_by_metric",
		},
		{
			name:  "all as filter metric",
			raw:   `{"task": "rank", "metric": "ppg", "season": 2026, "filters": {"filter_by_metric": "all", "min_metric_value": 5}}`,
			field: "filters.filter_by_metric",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseQuery([]byte(tt.raw), true)
			require.Error(t, err)

			var violation *SchemaViolation
			require.ErrorAs(t, err, &violation)
			assert.Equal(t, tt.field, violation.Field)
		})
	}
}

func TestNormalizeCoercesEmptyToAbsent(t *testing.T) {
	// Explicit null, "", and [] on optional fields all decode to the zero
	// value and must validate as if omitted.
	raw := []byte(`{
		"task": "rank",
		"metric": "ppg",
		"season": 2026,
		"team": [],
		"position": "",
		"order_direction": null,
		"filters": {
			"players": [],
			"colleges": ["", "  "],
			"age_range": {"gte": null, "lte": null},
			"salary_range": null
		}
	}`)

	q, err := ParseQuery(raw, true)
	require.NoError(t, err)
	assert.Nil(t, q.Team)
	assert.Empty(t, q.Position)
	assert.Equal(t, OrderDesc, q.OrderDirection)
	assert.Nil(t, q.Filters, "a filters object holding only empty values collapses to absent")
}

func TestNormalizeIsIdempotent(t *testing.T) {
	q := &Query{
		Task:           Task(" Rank "),
		Metric:         Metric("PPG"),
		Season:         2026,
		Team:           TeamList{" BOS ", ""},
		OrderDirection: OrderDirection("DESC"),
	}

	q.Normalize()
	first := *q.Clone()
	q.Normalize()

	assert.Equal(t, &first, q.Clone())
	assert.Equal(t, TaskRank, q.Task)
	assert.Equal(t, MetricPPG, q.Metric)
	assert.Equal(t, TeamList{"BOS"}, q.Team)
}

func TestNormalizeKeepsZeroLimitForTeamTask(t *testing.T) {
	team := &Query{Task: TaskTeam, Season: 2026}
	team.Normalize()
	assert.Zero(t, team.Limit, "team queries keep zero limit to mean no explicit list size")

	rank := &Query{Task: TaskRank, Metric: MetricPPG, Season: 2026}
	rank.Normalize()
	assert.Equal(t, DefaultLimit, rank.Limit)
}

func TestNormalizeClearsRedundantFilterMetric(t *testing.T) {
	min := 20.0
	q := &Query{
		Task:   TaskRank,
		Metric: MetricPPG,
		Season: 2026,
		Filters: &Filters{
			FilterByMetric: MetricPPG,
			MinMetricValue: &min,
		},
	}

	q.Normalize()
	require.NotNil(t, q.Filters)
	assert.Empty(t, q.Filters.FilterByMetric)
	assert.Equal(t, &min, q.Filters.MinMetricValue)
}

func TestTeamTaskNeedsNoMetric(t *testing.T) {
	raw := []byte(`{"task": "team", "season": 2026, "team": "BOS"}`)

	q, err := ParseQuery(raw, true)
	require.NoError(t, err)
	assert.Empty(t, q.Metric)
	assert.Equal(t, TeamList{"BOS"}, q.Team)
}
