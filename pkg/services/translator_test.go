package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/courtside-ai/courtside-engine/pkg/llm"
	"github.com/courtside-ai/courtside-engine/pkg/models"
)

const testSeason = 2026

func newTestTranslator(mock *llm.MockLLMClient) *Translator {
	return NewTranslator(mock, testSeason, 0, zap.NewNop())
}

func jsonResponder(response string) func(context.Context, string, string, float64, string, json.RawMessage) (string, error) {
	return func(context.Context, string, string, float64, string, json.RawMessage) (string, error) {
		return response, nil
	}
}

func TestToStructuredQueryHappyPath(t *testing.T) {
	mock := llm.NewMockLLMClient()
	mock.GenerateJSONFunc = jsonResponder(`{"task": "leaders", "metric": "apg", "season": 2025, "limit": 5}`)

	q := newTestTranslator(mock).ToStructuredQuery(context.Background(), "who led the league in assists in 2025")

	assert.Equal(t, models.TaskLeaders, q.Task)
	assert.Equal(t, models.MetricAPG, q.Metric)
	assert.Equal(t, 2025, q.Season)
	assert.Equal(t, 5, q.Limit)
	assert.Equal(t, models.OrderDesc, q.OrderDirection)
}

func TestToStructuredQueryIsTotal(t *testing.T) {
	// Every failure mode resolves to the same deterministic fallback.
	tests := []struct {
		name string
		fn   func(context.Context, string, string, float64, string, json.RawMessage) (string, error)
	}{
		{
			name: "transport error",
			fn: func(context.Context, string, string, float64, string, json.RawMessage) (string, error) {
				return "", errors.New("model not found")
			},
		},
		{
			name: "no JSON in output",
			fn:   jsonResponder("I cannot answer that question."),
		},
		{
			name: "empty output",
			fn:   jsonResponder(""),
		},
		{
			name: "invalid task survives no repair",
			fn:   jsonResponder(`{"task": "predict", "metric": "ppg", "season": 2026}`),
		},
		{
			name: "unknown key under strict decoding",
			fn:   jsonResponder(`{"task": "rank", "metric": "ppg", "season": 2026, "invented": 1}`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockLLMClient()
			mock.GenerateJSONFunc = tt.fn

			tr := newTestTranslator(mock)
			q := tr.ToStructuredQuery(context.Background(), "who scores the most points")

			require.NotNil(t, q)
			assert.Equal(t, tr.Fallback(), q)
			assert.NoError(t, q.Validate())
		})
	}
}

func TestToStructuredQueryRepairsDefaults(t *testing.T) {
	mock := llm.NewMockLLMClient()
	mock.GenerateJSONFunc = jsonResponder(`{"task": "", "metric": "dunks", "season": 0, "position": "wings"}`)

	q := newTestTranslator(mock).ToStructuredQuery(context.Background(), "who scores the most")

	assert.Equal(t, models.TaskRank, q.Task)
	assert.Equal(t, models.MetricPPG, q.Metric)
	assert.Equal(t, testSeason, q.Season)
	assert.Empty(t, q.Position)
}

func TestToStructuredQueryKeepsCaseVariantEnums(t *testing.T) {
	// A valid metric in the wrong case is lowercased and kept, not replaced
	// with the default.
	mock := llm.NewMockLLMClient()
	mock.GenerateJSONFunc = jsonResponder(`{"task": "rank", "metric": "FG_PCT", "season": 2026, "position": "Guards"}`)

	q := newTestTranslator(mock).ToStructuredQuery(context.Background(), "who shoots the best from the field")

	assert.Equal(t, models.MetricFGPct, q.Metric)
	assert.Equal(t, models.PositionGuards, q.Position)
}

func TestToStructuredQueryRetriesOnce(t *testing.T) {
	calls := 0
	mock := llm.NewMockLLMClient()
	mock.GenerateJSONFunc = func(context.Context, string, string, float64, string, json.RawMessage) (string, error) {
		calls++
		if calls == 1 {
			return "", llm.NewError(llm.ErrorTypeEndpoint, "server error", true, errors.New("503"))
		}
		return `{"task": "rank", "metric": "rpg", "season": 2026}`, nil
	}

	q := newTestTranslator(mock).ToStructuredQuery(context.Background(), "who grabs the most rebounds")

	assert.Equal(t, 2, calls)
	assert.Equal(t, models.MetricRPG, q.Metric)
}

func TestToStructuredQueryDoesNotRetryAuthErrors(t *testing.T) {
	mock := llm.NewMockLLMClient()
	mock.GenerateJSONFunc = func(context.Context, string, string, float64, string, json.RawMessage) (string, error) {
		return "", llm.NewError(llm.ErrorTypeAuth, "authentication failed", false, errors.New("401"))
	}

	tr := newTestTranslator(mock)
	q := tr.ToStructuredQuery(context.Background(), "who scores the most")

	assert.Equal(t, 1, mock.GenerateJSONCalls)
	assert.Equal(t, tr.Fallback(), q)
}

func TestToStructuredQueryToleratesProseAroundJSON(t *testing.T) {
	mock := llm.NewMockLLMClient()
	mock.GenerateJSONFunc = jsonResponder("Here is the query:\n```json\n{\"task\": \"rank\", \"metric\": \"bpg\", \"season\": 2026}\n```\nDone.")

	q := newTestTranslator(mock).ToStructuredQuery(context.Background(), "who blocks the most shots")

	assert.Equal(t, models.MetricBPG, q.Metric)
}

func TestOrderDirectionReconciliation(t *testing.T) {
	tests := []struct {
		name     string
		question string
		response string
		want     models.OrderDirection
	}{
		{
			name:     "asc trigger overrides a missing direction",
			question: "who is averaging the least amount of points",
			response: `{"task": "rank", "metric": "ppg", "season": 2026}`,
			want:     models.OrderAsc,
		},
		{
			name:     "asc trigger overrides an explicit desc",
			question: "who has the fewest turnovers",
			response: `{"task": "rank", "metric": "topg", "season": 2026, "order_direction": "desc"}`,
			want:     models.OrderAsc,
		},
		{
			name:     "stray asc without a trigger flips back to desc",
			question: "who scores the most points",
			response: `{"task": "rank", "metric": "ppg", "season": 2026, "order_direction": "asc"}`,
			want:     models.OrderDesc,
		},
		{
			name:     "bottom is a trigger",
			question: "show the bottom ten in field goal percentage",
			response: `{"task": "rank", "metric": "fg_pct", "season": 2026}`,
			want:     models.OrderAsc,
		},
		{
			name:     "top stays descending",
			question: "who are the top scorers",
			response: `{"task": "leaders", "metric": "ppg", "season": 2026}`,
			want:     models.OrderDesc,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockLLMClient()
			mock.GenerateJSONFunc = jsonResponder(tt.response)

			q := newTestTranslator(mock).ToStructuredQuery(context.Background(), tt.question)
			assert.Equal(t, tt.want, q.OrderDirection)
		})
	}
}

func TestFallback(t *testing.T) {
	tr := newTestTranslator(llm.NewMockLLMClient())
	q := tr.Fallback()

	assert.Equal(t, models.TaskRank, q.Task)
	assert.Equal(t, models.MetricPPG, q.Metric)
	assert.Equal(t, testSeason, q.Season)
	assert.Equal(t, models.OrderDesc, q.OrderDirection)
	assert.Equal(t, models.DefaultLimit, q.Limit)
	assert.NoError(t, q.Validate())
}
