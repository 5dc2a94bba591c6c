package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamListUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want TeamList
	}{
		{name: "single string", raw: `"BOS"`, want: TeamList{"BOS"}},
		{name: "array", raw: `["BOS", "LAL"]`, want: TeamList{"BOS", "LAL"}},
		{name: "empty string", raw: `""`, want: nil},
		{name: "empty array", raw: `[]`, want: TeamList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got TeamList
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &got))
			assert.Equal(t, tt.want, got)
		})
	}

	var got TeamList
	assert.Error(t, json.Unmarshal([]byte(`42`), &got))
}

func TestComparisonCountUnmarshal(t *testing.T) {
	var c ComparisonCount

	require.NoError(t, json.Unmarshal([]byte(`5`), &c))
	assert.False(t, c.All)
	assert.Equal(t, 5, c.N)

	require.NoError(t, json.Unmarshal([]byte(`"all"`), &c))
	assert.True(t, c.All)
	assert.Zero(t, c.N)

	require.NoError(t, json.Unmarshal([]byte(`"ALL"`), &c))
	assert.True(t, c.All)

	// Numeric strings are tolerated.
	require.NoError(t, json.Unmarshal([]byte(`"3"`), &c))
	assert.False(t, c.All)
	assert.Equal(t, 3, c.N)

	assert.Error(t, json.Unmarshal([]byte(`"some"`), &c))
	assert.Error(t, json.Unmarshal([]byte(`1.5`), &c))
}

func TestComparisonCountMarshal(t *testing.T) {
	out, err := json.Marshal(ComparisonCount{All: true})
	require.NoError(t, err)
	assert.JSONEq(t, `"all"`, string(out))

	out, err = json.Marshal(ComparisonCount{N: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `3`, string(out))
}

func TestCloneIsDeep(t *testing.T) {
	min := 15.0
	gte := 2024.0
	q := &Query{
		Task:   TaskRank,
		Metric: MetricPPG,
		Season: 2026,
		Team:   TeamList{"BOS"},
		Filters: &Filters{
			Players:        []string{"Jayson Tatum"},
			MinMetricValue: &min,
			DraftYearRange: &Range{Gte: &gte},
		},
		HistoricalComparisonCount: &ComparisonCount{N: 3},
	}

	clone := q.Clone()
	clone.Team[0] = "LAL"
	clone.Filters.Players[0] = "changed"
	*clone.Filters.MinMetricValue = 99
	*clone.Filters.DraftYearRange.Gte = 1999
	clone.HistoricalComparisonCount.N = 9

	assert.Equal(t, TeamList{"BOS"}, q.Team)
	assert.Equal(t, []string{"Jayson Tatum"}, q.Filters.Players)
	assert.Equal(t, 15.0, *q.Filters.MinMetricValue)
	assert.Equal(t, 2024.0, *q.Filters.DraftYearRange.Gte)
	assert.Equal(t, 3, q.HistoricalComparisonCount.N)
}

func TestWithPlayers(t *testing.T) {
	q := &Query{Task: TaskCompare, Metric: MetricAll, Season: 2026}

	merged := q.WithPlayers([]string{"LeBron James", "Kevin Durant"})
	assert.NotSame(t, q, merged)
	assert.Equal(t, []string{"LeBron James", "Kevin Durant"}, merged.PlayerNames())
	assert.Nil(t, q.Filters, "the receiver is never mutated")

	// An explicit players filter wins over extraction.
	explicit := &Query{
		Task:    TaskCompare,
		Metric:  MetricAll,
		Season:  2026,
		Filters: &Filters{Players: []string{"Stephen Curry"}},
	}
	assert.Same(t, explicit, explicit.WithPlayers([]string{"Someone Else"}))

	// Nothing extracted leaves the query alone.
	assert.Same(t, q, q.WithPlayers(nil))
}

func TestMetricCatalogLeadersTables(t *testing.T) {
	leaders := map[Metric]string{
		MetricPPG: "points_leaders",
		MetricRPG: "rebounds_leaders",
		MetricAPG: "assists_leaders",
		MetricSPG: "steals_leaders",
		MetricBPG: "blocks_leaders",
	}

	for m, table := range leaders {
		assert.True(t, IsBasicCountingStat(m), "%s should have a leaders table", m)
		assert.Equal(t, table, MetricCatalog[m].LeadersTable)
	}

	for m, info := range MetricCatalog {
		if _, ok := leaders[m]; !ok {
			assert.False(t, IsBasicCountingStat(m), "%s should not have a leaders table", m)
			assert.Empty(t, info.LeadersTable)
		}
	}
}

func TestMetricValue(t *testing.T) {
	pts := 27.3
	gp := 70
	row := PlayerStatRow{PlayerName: "Test Player", Points: &pts, GamesPlayed: &gp}

	require.NotNil(t, row.MetricValue(MetricPPG))
	assert.Equal(t, 27.3, *row.MetricValue(MetricPPG))

	require.NotNil(t, row.MetricValue(MetricGP))
	assert.Equal(t, 70.0, *row.MetricValue(MetricGP))

	assert.Nil(t, row.MetricValue(MetricRPG))
	assert.Nil(t, row.MetricValue(MetricAll))
}
