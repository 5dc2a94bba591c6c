// Package models defines the structured query schema and result row shapes.
package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/courtside-ai/courtside-engine/pkg/jsonutil"
)

// Task is the intent category of a structured query.
type Task string

const (
	TaskRank                 Task = "rank"
	TaskLeaders              Task = "leaders"
	TaskLookup               Task = "lookup"
	TaskCompare              Task = "compare"
	TaskTeam                 Task = "team"
	TaskHistoricalComparison Task = "historical_comparison"
	TaskSolo                 Task = "solo"
)

// Tasks is the closed set of valid task values.
var Tasks = map[Task]bool{
	TaskRank:                 true,
	TaskLeaders:              true,
	TaskLookup:               true,
	TaskCompare:              true,
	TaskTeam:                 true,
	TaskHistoricalComparison: true,
	TaskSolo:                 true,
}

// Metric is a single named statistic a query ranks, filters, or reports on.
type Metric string

const (
	MetricPPG          Metric = "ppg"
	MetricRPG          Metric = "rpg"
	MetricAPG          Metric = "apg"
	MetricSPG          Metric = "spg"
	MetricBPG          Metric = "bpg"
	MetricTOPG         Metric = "topg"
	MetricMPG          Metric = "mpg"
	MetricGP           Metric = "gp"
	MetricFGM          Metric = "fgm"
	MetricFGA          Metric = "fga"
	MetricTPM          Metric = "tpm"
	MetricTPA          Metric = "tpa"
	MetricFTM          Metric = "ftm"
	MetricFTA          Metric = "fta"
	MetricFGPct        Metric = "fg_pct"
	MetricThreePct     Metric = "three_pct"
	MetricFTPct        Metric = "ft_pct"
	MetricTSPct        Metric = "ts_pct"
	MetricEFGPct       Metric = "efg_pct"
	MetricUsgPct       Metric = "usg_pct"
	MetricPER          Metric = "per"
	MetricPlusMinus    Metric = "plus_minus"
	MetricOffRating    Metric = "ortg"
	MetricDefRating    Metric = "drtg"
	MetricDoubleDouble Metric = "double_doubles"

	// MetricAll is the sentinel requesting the full stat line rather than a
	// single column.
	MetricAll Metric = "all"
)

// MetricInfo describes how a metric maps onto the storage layer and how it
// should be presented.
type MetricInfo struct {
	// Column is the season-averages column holding the metric.
	Column string
	// Percentage metrics are stored as fractions (0-1) and multiplied by 100
	// only at presentation time.
	Percentage bool
	// LeadersTable is the precomputed per-stat ranking table, set only for
	// the five basic counting stats.
	LeadersTable string
	// Description is the definition given to the translation prompt.
	Description string
}

// MetricCatalog is the closed metric vocabulary. MetricAll is valid in a
// query but intentionally absent here; it has no single column.
var MetricCatalog = map[Metric]MetricInfo{
	MetricPPG:          {Column: "pts", LeadersTable: "points_leaders", Description: "points per game"},
	MetricRPG:          {Column: "reb", LeadersTable: "rebounds_leaders", Description: "rebounds per game"},
	MetricAPG:          {Column: "ast", LeadersTable: "assists_leaders", Description: "assists per game"},
	MetricSPG:          {Column: "stl", LeadersTable: "steals_leaders", Description: "steals per game"},
	MetricBPG:          {Column: "blk", LeadersTable: "blocks_leaders", Description: "blocks per game"},
	MetricTOPG:         {Column: "tov", Description: "turnovers per game"},
	MetricMPG:          {Column: "minutes", Description: "minutes per game"},
	MetricGP:           {Column: "games_played", Description: "games played"},
	MetricFGM:          {Column: "fgm", Description: "field goals made per game"},
	MetricFGA:          {Column: "fga", Description: "field goals attempted per game"},
	MetricTPM:          {Column: "fg3m", Description: "three pointers made per game"},
	MetricTPA:          {Column: "fg3a", Description: "three pointers attempted per game"},
	MetricFTM:          {Column: "ftm", Description: "free throws made per game"},
	MetricFTA:          {Column: "fta", Description: "free throws attempted per game"},
	MetricFGPct:        {Column: "fg_pct", Percentage: true, Description: "field goal percentage"},
	MetricThreePct:     {Column: "fg3_pct", Percentage: true, Description: "three point percentage"},
	MetricFTPct:        {Column: "ft_pct", Percentage: true, Description: "free throw percentage"},
	MetricTSPct:        {Column: "ts_pct", Percentage: true, Description: "true shooting percentage"},
	MetricEFGPct:       {Column: "efg_pct", Percentage: true, Description: "effective field goal percentage"},
	MetricUsgPct:       {Column: "usg_pct", Percentage: true, Description: "usage percentage"},
	MetricPER:          {Column: "per", Description: "player efficiency rating"},
	MetricPlusMinus:    {Column: "plus_minus", Description: "plus/minus"},
	MetricOffRating:    {Column: "off_rating", Description: "offensive rating"},
	MetricDefRating:    {Column: "def_rating", Description: "defensive rating"},
	MetricDoubleDouble: {Column: "dd2", Description: "double-doubles"},
}

// ValidMetric reports whether m is in the closed metric vocabulary.
func ValidMetric(m Metric) bool {
	if m == MetricAll {
		return true
	}
	_, ok := MetricCatalog[m]
	return ok
}

// IsBasicCountingStat reports whether m has a precomputed leaders table.
func IsBasicCountingStat(m Metric) bool {
	return MetricCatalog[m].LeadersTable != ""
}

// Position restricts a query to a positional group.
type Position string

const (
	PositionGuards   Position = "guards"
	PositionForwards Position = "forwards"
	PositionCenters  Position = "centers"
)

var Positions = map[Position]bool{
	PositionGuards:   true,
	PositionForwards: true,
	PositionCenters:  true,
}

// OrderDirection controls result ordering. Descending is the default and is
// only overridden by an explicit ascending trigger in the question.
type OrderDirection string

const (
	OrderAsc  OrderDirection = "asc"
	OrderDesc OrderDirection = "desc"
)

// Limits applied when clamping query limits.
const (
	DefaultLimit  = 10
	MaxPlayerRows = 25
	MaxTeamRows   = 30
)

// TeamList accepts either a single abbreviation string or an array of them,
// since the text-generation capability emits both shapes.
type TeamList []string

// UnmarshalJSON implements json.Unmarshaler.
func (t *TeamList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		if one == "" {
			*t = nil
			return nil
		}
		*t = TeamList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("team must be a string or array of strings")
	}
	*t = TeamList(many)
	return nil
}

// ComparisonCount is the number of historical comparables requested, or all
// of them.
type ComparisonCount struct {
	All bool
	N   int
}

// UnmarshalJSON accepts a number, a numeric string, or the literal string
// "all".
func (c *ComparisonCount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil && strings.EqualFold(s, "all") {
		c.All = true
		c.N = 0
		return nil
	}
	if n := jsonutil.FlexibleNumber(data); n != nil && *n == float64(int(*n)) {
		c.All = false
		c.N = int(*n)
		return nil
	}
	return fmt.Errorf("historical_comparison_count must be a number or 'all'")
}

// MarshalJSON implements json.Marshaler.
func (c ComparisonCount) MarshalJSON() ([]byte, error) {
	if c.All {
		return json.Marshal("all")
	}
	return json.Marshal(c.N)
}

// Range is a numeric bound pair; either side may be open.
type Range struct {
	Gte *float64 `json:"gte,omitempty"`
	Lte *float64 `json:"lte,omitempty"`
}

// UnmarshalJSON tolerates numeric strings for either bound, a shape the
// text-generation capability produces for salary figures in particular.
func (r *Range) UnmarshalJSON(data []byte) error {
	var raw struct {
		Gte json.RawMessage `json:"gte"`
		Lte json.RawMessage `json:"lte"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Gte = jsonutil.FlexibleNumber(raw.Gte)
	r.Lte = jsonutil.FlexibleNumber(raw.Lte)
	return nil
}

// Empty reports whether both bounds are absent.
func (r *Range) Empty() bool {
	return r == nil || (r.Gte == nil && r.Lte == nil)
}

// Filters narrows the player population a query runs against.
type Filters struct {
	Players        []string `json:"players,omitempty"`
	MinGames       *int     `json:"min_games,omitempty"`
	DraftYearRange *Range   `json:"draft_year_range,omitempty"`
	Colleges       []string `json:"colleges,omitempty"`
	Countries      []string `json:"countries,omitempty"`
	AgeRange       *Range   `json:"age_range,omitempty"`
	MinutesRange   *Range   `json:"minutes_range,omitempty"`
	SalaryRange    *Range   `json:"salary_range,omitempty"`
	MinMetricValue *float64 `json:"min_metric_value,omitempty"`
	FilterByMetric Metric   `json:"filter_by_metric,omitempty"`
	OrderByAge     string   `json:"order_by_age,omitempty"`
}

// Empty reports whether no filter is set.
func (f *Filters) Empty() bool {
	if f == nil {
		return true
	}
	return len(f.Players) == 0 && f.MinGames == nil && f.DraftYearRange.Empty() &&
		len(f.Colleges) == 0 && len(f.Countries) == 0 && f.AgeRange.Empty() &&
		f.MinutesRange.Empty() && f.SalaryRange.Empty() && f.MinMetricValue == nil &&
		f.FilterByMetric == "" && f.OrderByAge == ""
}

// Query is the validated structured representation of a user's statistical
// question. It is immutable after validation; downstream stages derive new
// queries with the With* copy helpers instead of mutating in place.
type Query struct {
	Task                      Task             `json:"task"`
	Metric                    Metric           `json:"metric,omitempty"`
	Season                    int              `json:"season"`
	Team                      TeamList         `json:"team,omitempty"`
	Position                  Position         `json:"position,omitempty"`
	Clutch                    bool             `json:"clutch,omitempty"`
	OrderDirection            OrderDirection   `json:"order_direction,omitempty"`
	Limit                     int              `json:"limit,omitempty"`
	Filters                   *Filters         `json:"filters,omitempty"`
	HistoricalComparisonCount *ComparisonCount `json:"historical_comparison_count,omitempty"`
}

// Clone returns a deep structural copy of the query.
func (q *Query) Clone() *Query {
	out := *q
	out.Team = append(TeamList(nil), q.Team...)
	if q.Filters != nil {
		f := *q.Filters
		f.Players = append([]string(nil), q.Filters.Players...)
		f.Colleges = append([]string(nil), q.Filters.Colleges...)
		f.Countries = append([]string(nil), q.Filters.Countries...)
		f.MinGames = cloneInt(q.Filters.MinGames)
		f.DraftYearRange = cloneRange(q.Filters.DraftYearRange)
		f.AgeRange = cloneRange(q.Filters.AgeRange)
		f.MinutesRange = cloneRange(q.Filters.MinutesRange)
		f.SalaryRange = cloneRange(q.Filters.SalaryRange)
		f.MinMetricValue = cloneFloat(q.Filters.MinMetricValue)
		out.Filters = &f
	}
	if q.HistoricalComparisonCount != nil {
		c := *q.HistoricalComparisonCount
		out.HistoricalComparisonCount = &c
	}
	return &out
}

// WithPlayers returns a copy of the query with filters.players set to the
// given names. Used to merge heuristically extracted names; an existing
// explicit players filter always wins, in which case the receiver is
// returned unchanged.
func (q *Query) WithPlayers(names []string) *Query {
	if q.Filters != nil && len(q.Filters.Players) > 0 {
		return q
	}
	if len(names) == 0 {
		return q
	}
	out := q.Clone()
	if out.Filters == nil {
		out.Filters = &Filters{}
	}
	out.Filters.Players = append([]string(nil), names...)
	return out
}

// PlayerNames returns the explicit players filter, or nil.
func (q *Query) PlayerNames() []string {
	if q.Filters == nil {
		return nil
	}
	return q.Filters.Players
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneRange(r *Range) *Range {
	if r == nil {
		return nil
	}
	return &Range{Gte: cloneFloat(r.Gte), Lte: cloneFloat(r.Lte)}
}
