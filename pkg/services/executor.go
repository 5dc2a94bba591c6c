package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/courtside-ai/courtside-engine/pkg/models"
	"github.com/courtside-ai/courtside-engine/pkg/repositories"
	"github.com/courtside-ai/courtside-engine/pkg/sqlguard"
)

// Executor runs a validated player query against the statistics store,
// dispatching to the strategy the planner selects.
type Executor struct {
	stats  repositories.StatsRepository
	logger *zap.Logger
}

// NewExecutor creates an Executor.
func NewExecutor(stats repositories.StatsRepository, logger *zap.Logger) *Executor {
	return &Executor{stats: stats, logger: logger.Named("executor")}
}

// Run executes the query and returns ordered stat rows. Zero matching rows
// is an empty slice, not an error.
func (e *Executor) Run(ctx context.Context, q *models.Query) ([]models.PlayerStatRow, error) {
	q = e.screenFilters(q)
	strategy := ChooseStrategy(q)

	e.logger.Debug("executing query",
		zap.String("strategy", strategy.String()),
		zap.String("task", string(q.Task)),
		zap.String("metric", string(q.Metric)),
		zap.Int("season", q.Season))

	switch strategy {
	case StrategyCompare:
		return e.stats.Compare(ctx, q, q.PlayerNames())
	case StrategyLeaders:
		return e.stats.Leaders(ctx, q)
	default:
		return e.stats.Aggregate(ctx, q, q.PlayerNames())
	}
}

// screenFilters runs every model-supplied string filter value through the
// injection check. All values are bound as parameters regardless; a hit
// means the model was steered by the question text, so the value is dropped
// and logged rather than failing the whole query.
func (e *Executor) screenFilters(q *models.Query) *models.Query {
	out := q.Clone()

	var dropped []*sqlguard.CheckResult
	var d []*sqlguard.CheckResult

	teams, d := sqlguard.CleanValues("team", out.Team)
	out.Team = models.TeamList(teams)
	dropped = append(dropped, d...)

	if f := out.Filters; f != nil {
		f.Players, d = sqlguard.CleanValues("players", f.Players)
		dropped = append(dropped, d...)
		f.Colleges, d = sqlguard.CleanValues("colleges", f.Colleges)
		dropped = append(dropped, d...)
		f.Countries, d = sqlguard.CleanValues("countries", f.Countries)
		dropped = append(dropped, d...)
	}

	for _, r := range dropped {
		e.logger.Warn("dropped filter value failing injection check",
			zap.String("filter", r.FilterName),
			zap.String("fingerprint", r.Fingerprint))
	}

	return out
}
