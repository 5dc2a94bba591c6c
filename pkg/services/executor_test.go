package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/courtside-ai/courtside-engine/pkg/models"
)

// fakeStatsRepo records which execution path ran and with what arguments.
type fakeStatsRepo struct {
	lastMethod string
	lastQuery  *models.Query
	lastNames  []string
	rows       []models.PlayerStatRow
	err        error
}

func (f *fakeStatsRepo) Compare(_ context.Context, q *models.Query, names []string) ([]models.PlayerStatRow, error) {
	f.lastMethod, f.lastQuery, f.lastNames = "compare", q, names
	return f.rows, f.err
}

func (f *fakeStatsRepo) Leaders(_ context.Context, q *models.Query) ([]models.PlayerStatRow, error) {
	f.lastMethod, f.lastQuery = "leaders", q
	return f.rows, f.err
}

func (f *fakeStatsRepo) Aggregate(_ context.Context, q *models.Query, names []string) ([]models.PlayerStatRow, error) {
	f.lastMethod, f.lastQuery, f.lastNames = "aggregate", q, names
	return f.rows, f.err
}

func TestExecutorDispatch(t *testing.T) {
	tests := []struct {
		name       string
		q          *models.Query
		wantMethod string
	}{
		{
			name: "compare path",
			q: &models.Query{
				Task:    models.TaskCompare,
				Metric:  models.MetricAll,
				Season:  2026,
				Filters: &models.Filters{Players: []string{"LeBron James", "Kevin Durant"}},
			},
			wantMethod: "compare",
		},
		{
			name:       "leaders path",
			q:          &models.Query{Task: models.TaskRank, Metric: models.MetricPPG, Season: 2026},
			wantMethod: "leaders",
		},
		{
			name:       "aggregate path",
			q:          &models.Query{Task: models.TaskRank, Metric: models.MetricFGPct, Season: 2026},
			wantMethod: "aggregate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeStatsRepo{}
			ex := NewExecutor(repo, zap.NewNop())

			_, err := ex.Run(context.Background(), tt.q)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMethod, repo.lastMethod)
		})
	}
}

func TestExecutorScreensFilterValues(t *testing.T) {
	repo := &fakeStatsRepo{}
	ex := NewExecutor(repo, zap.NewNop())

	q := &models.Query{
		Task:   models.TaskRank,
		Metric: models.MetricFGPct,
		Season: 2026,
		Filters: &models.Filters{
			Colleges: []string{"Duke", "x' OR '1'='1"},
		},
	}

	_, err := ex.Run(context.Background(), q)
	require.NoError(t, err)

	require.NotNil(t, repo.lastQuery.Filters)
	assert.Equal(t, []string{"Duke"}, repo.lastQuery.Filters.Colleges,
		"the injection-flagged value is dropped, the clean one kept")

	// Screening works on a copy; the caller's query is untouched.
	assert.Equal(t, []string{"Duke", "x' OR '1'='1"}, q.Filters.Colleges)
}

func TestExecutorEmptyResultIsNotAnError(t *testing.T) {
	repo := &fakeStatsRepo{rows: nil}
	ex := NewExecutor(repo, zap.NewNop())

	rows, err := ex.Run(context.Background(), &models.Query{
		Task: models.TaskRank, Metric: models.MetricPPG, Season: 2026,
	})
	require.NoError(t, err)
	assert.Empty(t, rows)
}
