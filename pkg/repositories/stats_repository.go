package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/courtside-ai/courtside-engine/pkg/database"
	"github.com/courtside-ai/courtside-engine/pkg/models"
)

// StatsRepository provides the three execution paths over the player
// statistics store. A query matching zero rows is not an error on any path;
// callers decide how to present "no qualified players."
type StatsRepository interface {
	// Compare fetches named players side by side, ordered by name.
	Compare(ctx context.Context, q *models.Query, names []string) ([]models.PlayerStatRow, error)
	// Leaders reads a precomputed per-stat ranking table for one of the five
	// basic counting stats.
	Leaders(ctx context.Context, q *models.Query) ([]models.PlayerStatRow, error)
	// Aggregate scans the season-averages table with incremental filters.
	Aggregate(ctx context.Context, q *models.Query, names []string) ([]models.PlayerStatRow, error)
}

type statsRepository struct {
	db *database.DB
}

// NewStatsRepository creates a StatsRepository backed by the statistics
// store.
func NewStatsRepository(db *database.DB) StatsRepository {
	return &statsRepository{db: db}
}

var _ StatsRepository = (*statsRepository)(nil)

func (r *statsRepository) Compare(ctx context.Context, q *models.Query, names []string) ([]models.PlayerStatRow, error) {
	sql, args := BuildCompareQuery(q, names)
	return r.queryRows(ctx, sql, args)
}

func (r *statsRepository) Leaders(ctx context.Context, q *models.Query) ([]models.PlayerStatRow, error) {
	if !models.IsBasicCountingStat(q.Metric) {
		return nil, fmt.Errorf("metric %q has no leaders table", q.Metric)
	}
	sql, args := BuildLeadersQuery(q)
	return r.queryRows(ctx, sql, args)
}

func (r *statsRepository) Aggregate(ctx context.Context, q *models.Query, names []string) ([]models.PlayerStatRow, error) {
	sql, args := BuildAggregateQuery(q, names)
	return r.queryRows(ctx, sql, args)
}

func (r *statsRepository) queryRows(ctx context.Context, sql string, args []any) ([]models.PlayerStatRow, error) {
	ctx, cancel := r.db.QueryContext(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query player stats: %w", err)
	}
	defer rows.Close()

	var out []models.PlayerStatRow
	for rows.Next() {
		row, err := scanStatRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read player stats: %w", err)
	}

	return out, nil
}

// scanStatRow scans one row in statColumns order. Pointer targets keep the
// distinction between "not recorded by this source" and zero.
func scanStatRow(rows pgx.Rows) (models.PlayerStatRow, error) {
	var row models.PlayerStatRow
	err := rows.Scan(
		&row.PlayerID, &row.PlayerName, &row.Team, &row.Season,
		&row.GamesPlayed, &row.Minutes, &row.Points, &row.Rebounds,
		&row.Assists, &row.Steals, &row.Blocks, &row.Turnovers,
		&row.FGM, &row.FGA, &row.FGPct, &row.FG3M, &row.FG3A, &row.FG3Pct,
		&row.FTM, &row.FTA, &row.FTPct, &row.TSPct, &row.EFGPct, &row.UsgPct,
		&row.PER, &row.PlusMinus, &row.OffRating, &row.DefRating, &row.DD2,
		&row.Age, &row.DraftYear, &row.College, &row.Country, &row.Salary,
	)
	if err != nil {
		return row, fmt.Errorf("failed to scan player stat row: %w", err)
	}
	return row, nil
}
