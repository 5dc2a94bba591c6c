package services

import (
	"github.com/courtside-ai/courtside-engine/pkg/models"
)

// Strategy selects the physical data-access path for a query. The same
// statistic can live in differently shaped tables, so strategy choice
// affects both correctness and cost. Modeled as an explicit variant keyed on
// (task, metric class, filter set) so a fourth storage shape is a new
// variant, not a patch to nested conditionals.
type Strategy int

const (
	// StrategyAggregate scans the full season-averages table with an
	// incrementally built WHERE clause. The catch-all path.
	StrategyAggregate Strategy = iota
	// StrategyLeaders joins a precomputed per-stat ranking table, avoiding a
	// full scan and sort when a precomputed order already exists.
	StrategyLeaders
	// StrategyCompare fetches named players side by side from the
	// season-averages table, ordered by name rather than by metric.
	StrategyCompare
)

// String returns a human-readable strategy name for logs.
func (s Strategy) String() string {
	switch s {
	case StrategyAggregate:
		return "aggregate"
	case StrategyLeaders:
		return "leaders"
	case StrategyCompare:
		return "compare"
	default:
		return "unknown"
	}
}

// ChooseStrategy picks the execution strategy for a validated player query.
//
// Compare wins when the task is compare and names are present. Leaders
// requires a rank/leaders task, one of the five basic counting stats, no
// clutch context, and no filter beyond min_games: min_games is the only
// filter the leaders join expresses, so any other filter must take the
// aggregate path or it would silently vanish from the query.
func ChooseStrategy(q *models.Query) Strategy {
	if q.Task == models.TaskCompare && len(q.PlayerNames()) > 0 {
		return StrategyCompare
	}

	if q.Task != models.TaskRank && q.Task != models.TaskLeaders {
		return StrategyAggregate
	}
	if !models.IsBasicCountingStat(q.Metric) {
		return StrategyAggregate
	}
	if q.Clutch {
		return StrategyAggregate
	}
	if f := q.Filters; f != nil && !leadersCanServe(f) {
		return StrategyAggregate
	}

	return StrategyLeaders
}

// leadersCanServe reports whether the filter set is expressible on the
// leaders join. Team and position live on the query itself; of the Filters
// fields only min_games is.
func leadersCanServe(f *models.Filters) bool {
	return len(f.Players) == 0 &&
		f.DraftYearRange.Empty() &&
		len(f.Colleges) == 0 &&
		len(f.Countries) == 0 &&
		f.AgeRange.Empty() &&
		f.MinutesRange.Empty() &&
		f.SalaryRange.Empty() &&
		f.MinMetricValue == nil &&
		f.FilterByMetric == "" &&
		f.OrderByAge == ""
}
