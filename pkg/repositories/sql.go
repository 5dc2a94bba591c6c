// Package repositories provides data access for the statistics store.
package repositories

import (
	"fmt"
	"strings"

	"github.com/courtside-ai/courtside-engine/pkg/models"
)

// Storage shapes. The same stat can live in a precomputed per-stat leaders
// table, the full season-averages table, or its clutch-context variant.
const (
	seasonAveragesTable = "player_season_averages"
	clutchAveragesTable = "player_clutch_averages"
)

// compareLimit is a high ceiling guarding against runaway joins on the
// compare path; no meaningful row limit applies there.
const compareLimit = 100

// statColumns are the season-averages columns projected into PlayerStatRow,
// in scan order.
var statColumns = []string{
	"player_id", "player_name", "team_abbreviation", "season",
	"games_played", "minutes", "pts", "reb", "ast", "stl", "blk", "tov",
	"fgm", "fga", "fg_pct", "fg3m", "fg3a", "fg3_pct", "ftm", "fta", "ft_pct",
	"ts_pct", "efg_pct", "usg_pct", "per", "plus_minus", "off_rating",
	"def_rating", "dd2", "age", "draft_year", "college", "country", "salary",
}

// positionCodes maps the query position enum onto the stored single-letter
// position codes.
var positionCodes = map[models.Position]string{
	models.PositionGuards:   "G",
	models.PositionForwards: "F",
	models.PositionCenters:  "C",
}

// argList accumulates bound parameters; every filter value is a parameter,
// never interpolated into the SQL text.
type argList struct {
	args []any
}

func (a *argList) add(v any) string {
	a.args = append(a.args, v)
	return fmt.Sprintf("$%d", len(a.args))
}

// sourceTable returns the aggregate table for the query's stat context.
func sourceTable(q *models.Query) string {
	if q.Clutch {
		return clutchAveragesTable
	}
	return seasonAveragesTable
}

func prefixed(alias string, cols []string) string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return strings.Join(out, ", ")
}

// BuildCompareQuery builds the side-by-side fetch for explicitly named
// players. Name matching is case-insensitive substring, a deliberate
// tolerance for spelling and punctuation variance at the cost of possible
// substring false positives. Ordering is by name, not metric: the caller
// wants named entities side by side, not a ranking.
func BuildCompareQuery(q *models.Query, names []string) (string, []any) {
	var args argList
	var b strings.Builder

	fmt.Fprintf(&b, "SELECT %s FROM %s a", prefixed("a", statColumns), sourceTable(q))
	fmt.Fprintf(&b, " WHERE a.season = %s", args.add(q.Season))

	if len(names) > 0 {
		var matches []string
		for _, name := range names {
			matches = append(matches, fmt.Sprintf("a.player_name ILIKE %s", args.add("%"+name+"%")))
		}
		fmt.Fprintf(&b, " AND (%s)", strings.Join(matches, " OR "))
	}

	fmt.Fprintf(&b, " ORDER BY a.player_name ASC LIMIT %d", compareLimit)
	return b.String(), args.args
}

// BuildLeadersQuery builds the per-stat leaders join: one primary join
// against the precomputed ranking table for the requested stat, left-joining
// the remaining stats from the aggregate table to assemble a complete row.
// Callers must have routed away queries carrying any filter beyond
// min_games; the join expresses nothing else.
func BuildLeadersQuery(q *models.Query) (string, []any) {
	info := models.MetricCatalog[q.Metric]
	var args argList
	var b strings.Builder

	fmt.Fprintf(&b, "SELECT l.player_id, l.player_name, l.team_abbreviation, l.season, ")
	b.WriteString("a.games_played, a.minutes, a.pts, a.reb, a.ast, a.stl, a.blk, a.tov, ")
	b.WriteString("a.fgm, a.fga, a.fg_pct, a.fg3m, a.fg3a, a.fg3_pct, a.ftm, a.fta, a.ft_pct, ")
	b.WriteString("a.ts_pct, a.efg_pct, a.usg_pct, a.per, a.plus_minus, a.off_rating, ")
	b.WriteString("a.def_rating, a.dd2, a.age, a.draft_year, a.college, a.country, a.salary")
	fmt.Fprintf(&b, " FROM %s l", info.LeadersTable)
	fmt.Fprintf(&b, " LEFT JOIN %s a ON a.player_id = l.player_id AND a.season = l.season", seasonAveragesTable)
	fmt.Fprintf(&b, " WHERE l.season = %s", args.add(q.Season))

	if len(q.Team) > 0 {
		fmt.Fprintf(&b, " AND l.team_abbreviation = ANY(%s)", args.add([]string(q.Team)))
	}
	if code, ok := positionCodes[q.Position]; ok {
		fmt.Fprintf(&b, " AND a.position = %s", args.add(code))
	}
	if f := q.Filters; f != nil && f.MinGames != nil {
		fmt.Fprintf(&b, " AND a.games_played >= %s", args.add(*f.MinGames))
	}

	rankOrder := "ASC"
	if q.OrderDirection == models.OrderAsc {
		// The precomputed rank is descending by value, so the ascending view
		// walks it backwards.
		rankOrder = "DESC"
	}
	fmt.Fprintf(&b, " ORDER BY l.rank %s LIMIT %s", rankOrder, args.add(clampLimit(q.Limit, models.MaxPlayerRows)))

	return b.String(), args.args
}

// BuildAggregateQuery builds the catch-all scan over the season-averages
// table (or its clutch variant). The WHERE clause grows incrementally:
// season is always bound first, every other filter is appended conditionally
// as its own bound parameter.
func BuildAggregateQuery(q *models.Query, names []string) (string, []any) {
	var args argList
	var b strings.Builder

	fmt.Fprintf(&b, "SELECT %s FROM %s a", prefixed("a", statColumns), sourceTable(q))
	fmt.Fprintf(&b, " WHERE a.season = %s", args.add(q.Season))

	if len(q.Team) > 0 {
		fmt.Fprintf(&b, " AND a.team_abbreviation = ANY(%s)", args.add([]string(q.Team)))
	}
	if code, ok := positionCodes[q.Position]; ok {
		fmt.Fprintf(&b, " AND a.position = %s", args.add(code))
	}

	if f := q.Filters; f != nil {
		if r := f.DraftYearRange; r != nil {
			if r.Gte != nil {
				fmt.Fprintf(&b, " AND a.draft_year >= %s", args.add(int(*r.Gte)))
			}
			if r.Lte != nil {
				fmt.Fprintf(&b, " AND a.draft_year <= %s", args.add(int(*r.Lte)))
			}
		}
		if len(f.Colleges) > 0 {
			var matches []string
			for _, college := range f.Colleges {
				matches = append(matches, fmt.Sprintf("a.college ILIKE %s", args.add("%"+college+"%")))
			}
			fmt.Fprintf(&b, " AND (%s)", strings.Join(matches, " OR "))
		}
		if len(f.Countries) > 0 {
			var matches []string
			for _, country := range f.Countries {
				matches = append(matches, fmt.Sprintf("a.country ILIKE %s", args.add("%"+country+"%")))
			}
			fmt.Fprintf(&b, " AND (%s)", strings.Join(matches, " OR "))
		}
		appendRange(&b, &args, "a.age", f.AgeRange)
		appendRange(&b, &args, "a.minutes", f.MinutesRange)
		appendRange(&b, &args, "a.salary", f.SalaryRange)
		if f.MinGames != nil {
			fmt.Fprintf(&b, " AND a.games_played >= %s", args.add(*f.MinGames))
		}
		if f.MinMetricValue != nil {
			fmt.Fprintf(&b, " AND a.%s >= %s", thresholdColumn(q), args.add(*f.MinMetricValue))
		}
	}

	if len(names) > 0 {
		var matches []string
		for _, name := range names {
			matches = append(matches, fmt.Sprintf("a.player_name ILIKE %s", args.add("%"+name+"%")))
		}
		fmt.Fprintf(&b, " AND (%s)", strings.Join(matches, " OR "))
	}

	fmt.Fprintf(&b, " ORDER BY %s LIMIT %s", orderClause(q), args.add(clampLimit(q.Limit, models.MaxPlayerRows)))
	return b.String(), args.args
}

// thresholdColumn resolves the column a min_metric_value threshold applies
// to: the filter metric when one is named, otherwise the rank metric.
func thresholdColumn(q *models.Query) string {
	if q.Filters != nil && q.Filters.FilterByMetric != "" {
		if info, ok := models.MetricCatalog[q.Filters.FilterByMetric]; ok {
			return info.Column
		}
	}
	return orderColumn(q.Metric)
}

// orderColumn maps a metric onto its column with a safe fallback when the
// metric has no direct mapping (the "all" sentinel).
func orderColumn(m models.Metric) string {
	if info, ok := models.MetricCatalog[m]; ok {
		return info.Column
	}
	return "pts"
}

func orderClause(q *models.Query) string {
	dir := "DESC"
	if q.OrderDirection == models.OrderAsc {
		dir = "ASC"
	}

	primary := fmt.Sprintf("a.%s %s NULLS LAST", orderColumn(q.Metric), dir)
	if q.Filters != nil && q.Filters.OrderByAge != "" {
		ageDir := "ASC"
		if q.Filters.OrderByAge == "desc" {
			ageDir = "DESC"
		}
		primary = fmt.Sprintf("a.age %s NULLS LAST, %s", ageDir, primary)
	}

	// Name as the final key keeps equal-value orderings deterministic.
	return primary + ", a.player_name ASC"
}

func clampLimit(limit, ceiling int) int {
	if limit <= 0 {
		return models.DefaultLimit
	}
	if limit > ceiling {
		return ceiling
	}
	return limit
}

func appendRange(b *strings.Builder, args *argList, column string, r *models.Range) {
	if r == nil {
		return
	}
	if r.Gte != nil {
		fmt.Fprintf(b, " AND %s >= %s", column, args.add(*r.Gte))
	}
	if r.Lte != nil {
		fmt.Fprintf(b, " AND %s <= %s", column, args.add(*r.Lte))
	}
}
