package models

// PlayerStatRow is a denormalized projection joining player identity, team,
// season, and per-game stats. Many columns are nullable because not every
// stat source populates every column; pointers distinguish "not recorded"
// from zero. Rows are produced transiently per query and never persisted by
// this service.
type PlayerStatRow struct {
	PlayerID    int64    `json:"player_id"`
	PlayerName  string   `json:"player_name"`
	Team        string   `json:"team"`
	Season      int      `json:"season"`
	GamesPlayed *int     `json:"games_played,omitempty"`
	Minutes     *float64 `json:"minutes,omitempty"`
	Points      *float64 `json:"pts,omitempty"`
	Rebounds    *float64 `json:"reb,omitempty"`
	Assists     *float64 `json:"ast,omitempty"`
	Steals      *float64 `json:"stl,omitempty"`
	Blocks      *float64 `json:"blk,omitempty"`
	Turnovers   *float64 `json:"tov,omitempty"`
	FGM         *float64 `json:"fgm,omitempty"`
	FGA         *float64 `json:"fga,omitempty"`
	FGPct       *float64 `json:"fg_pct,omitempty"`
	FG3M        *float64 `json:"fg3m,omitempty"`
	FG3A        *float64 `json:"fg3a,omitempty"`
	FG3Pct      *float64 `json:"fg3_pct,omitempty"`
	FTM         *float64 `json:"ftm,omitempty"`
	FTA         *float64 `json:"fta,omitempty"`
	FTPct       *float64 `json:"ft_pct,omitempty"`
	TSPct       *float64 `json:"ts_pct,omitempty"`
	EFGPct      *float64 `json:"efg_pct,omitempty"`
	UsgPct      *float64 `json:"usg_pct,omitempty"`
	PER         *float64 `json:"per,omitempty"`
	PlusMinus   *float64 `json:"plus_minus,omitempty"`
	OffRating   *float64 `json:"off_rating,omitempty"`
	DefRating   *float64 `json:"def_rating,omitempty"`
	DD2         *float64 `json:"dd2,omitempty"`
	Age         *float64 `json:"age,omitempty"`
	DraftYear   *int     `json:"draft_year,omitempty"`
	College     *string  `json:"college,omitempty"`
	Country     *string  `json:"country,omitempty"`
	Salary      *float64 `json:"salary,omitempty"`
}

// MetricValue returns the row's value for a metric, or nil when the stat
// source did not populate it. Percentage metrics come back as raw fractions;
// the x100 conversion belongs to presentation.
func (r *PlayerStatRow) MetricValue(m Metric) *float64 {
	switch m {
	case MetricPPG:
		return r.Points
	case MetricRPG:
		return r.Rebounds
	case MetricAPG:
		return r.Assists
	case MetricSPG:
		return r.Steals
	case MetricBPG:
		return r.Blocks
	case MetricTOPG:
		return r.Turnovers
	case MetricMPG:
		return r.Minutes
	case MetricGP:
		if r.GamesPlayed == nil {
			return nil
		}
		v := float64(*r.GamesPlayed)
		return &v
	case MetricFGM:
		return r.FGM
	case MetricFGA:
		return r.FGA
	case MetricTPM:
		return r.FG3M
	case MetricTPA:
		return r.FG3A
	case MetricFTM:
		return r.FTM
	case MetricFTA:
		return r.FTA
	case MetricFGPct:
		return r.FGPct
	case MetricThreePct:
		return r.FG3Pct
	case MetricFTPct:
		return r.FTPct
	case MetricTSPct:
		return r.TSPct
	case MetricEFGPct:
		return r.EFGPct
	case MetricUsgPct:
		return r.UsgPct
	case MetricPER:
		return r.PER
	case MetricPlusMinus:
		return r.PlusMinus
	case MetricOffRating:
		return r.OffRating
	case MetricDefRating:
		return r.DefRating
	case MetricDoubleDouble:
		return r.DD2
	}
	return nil
}

// TeamPlayer is one of a team's top scorers, embedded in TeamData.
type TeamPlayer struct {
	PlayerName string  `json:"player_name"`
	Points     float64 `json:"pts"`
	Rebounds   float64 `json:"reb"`
	Assists    float64 `json:"ast"`
}

// TeamData is a team's standing, optionally carrying its top scorers when
// the question resolved to a single team.
type TeamData struct {
	Team       string       `json:"team"`
	Name       string       `json:"name"`
	Season     int          `json:"season"`
	Wins       int          `json:"wins"`
	Losses     int          `json:"losses"`
	WinPct     float64      `json:"win_pct"`
	Conference string       `json:"conference"`
	Seed       *int         `json:"seed,omitempty"`
	TopScorers []TeamPlayer `json:"top_scorers,omitempty"`
}

// ClusterMatch is one historically similar player returned by the backend
// clustering service.
type ClusterMatch struct {
	PlayerName string  `json:"player_name"`
	Season     int     `json:"season"`
	Similarity float64 `json:"similarity"`
	Points     float64 `json:"pts"`
	Rebounds   float64 `json:"reb"`
	Assists    float64 `json:"ast"`
}

// ClusterResult is the backend clustering response. NoClusterFound is a soft
// marker carried inside a 200 so a missing cluster keeps the conversational
// flow instead of becoming a 404.
type ClusterResult struct {
	Player         string         `json:"player"`
	NoClusterFound bool           `json:"noClusterFound,omitempty"`
	Matches        []ClusterMatch `json:"matches,omitempty"`
}
