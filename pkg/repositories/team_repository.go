package repositories

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/courtside-ai/courtside-engine/pkg/database"
	"github.com/courtside-ai/courtside-engine/pkg/models"
)

const standingsTable = "team_standings"

// Top-scorer eligibility floor: end-of-bench players with trivial minutes or
// games are noise in a "tell me about this team" answer.
const (
	topScorerMinGames   = 10
	topScorerMinMinutes = 10.0
	topScorerCount      = 5
)

// TeamRepository provides standings and roster-summary data access.
type TeamRepository interface {
	// Standings fetches standing rows for a season, optionally restricted to
	// specific team abbreviations. Rows come back unranked; RankTeams
	// applies the win-percentage ordering.
	Standings(ctx context.Context, season int, teams []string) ([]models.TeamData, error)
	// TopScorers fetches a team's leading scorers meeting the games and
	// minutes floor, ordered by points descending.
	TopScorers(ctx context.Context, season int, team string) ([]models.TeamPlayer, error)
}

type teamRepository struct {
	db *database.DB
}

// NewTeamRepository creates a TeamRepository backed by the statistics store.
func NewTeamRepository(db *database.DB) TeamRepository {
	return &teamRepository{db: db}
}

var _ TeamRepository = (*teamRepository)(nil)

// BuildStandingsQuery builds the standings fetch.
func BuildStandingsQuery(season int, teams []string) (string, []any) {
	var args argList
	var b strings.Builder

	b.WriteString("SELECT team_abbreviation, team_name, season, wins, losses, conference, seed")
	fmt.Fprintf(&b, " FROM %s WHERE season = %s", standingsTable, args.add(season))
	if len(teams) > 0 {
		fmt.Fprintf(&b, " AND team_abbreviation = ANY(%s)", args.add(teams))
	}
	b.WriteString(" ORDER BY team_abbreviation ASC")

	return b.String(), args.args
}

// BuildTopScorersQuery builds the roster-summary fetch for one team.
func BuildTopScorersQuery(season int, team string) (string, []any) {
	var args argList
	var b strings.Builder

	b.WriteString("SELECT player_name, pts, reb, ast")
	fmt.Fprintf(&b, " FROM %s WHERE season = %s AND team_abbreviation = %s", seasonAveragesTable, args.add(season), args.add(team))
	fmt.Fprintf(&b, " AND games_played >= %s AND minutes >= %s", args.add(topScorerMinGames), args.add(topScorerMinMinutes))
	fmt.Fprintf(&b, " ORDER BY pts DESC LIMIT %d", topScorerCount)

	return b.String(), args.args
}

func (r *teamRepository) Standings(ctx context.Context, season int, teams []string) ([]models.TeamData, error) {
	sql, args := BuildStandingsQuery(season, teams)

	ctx, cancel := r.db.QueryContext(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query standings: %w", err)
	}
	defer rows.Close()

	var out []models.TeamData
	for rows.Next() {
		var td models.TeamData
		if err := rows.Scan(&td.Team, &td.Name, &td.Season, &td.Wins, &td.Losses, &td.Conference, &td.Seed); err != nil {
			return nil, fmt.Errorf("failed to scan standing: %w", err)
		}
		td.WinPct = WinPct(td.Wins, td.Losses)
		out = append(out, td)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read standings: %w", err)
	}

	return out, nil
}

func (r *teamRepository) TopScorers(ctx context.Context, season int, team string) ([]models.TeamPlayer, error) {
	sql, args := BuildTopScorersQuery(season, team)

	ctx, cancel := r.db.QueryContext(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query top scorers: %w", err)
	}
	defer rows.Close()

	var out []models.TeamPlayer
	for rows.Next() {
		var tp models.TeamPlayer
		if err := rows.Scan(&tp.PlayerName, &tp.Points, &tp.Rebounds, &tp.Assists); err != nil {
			return nil, fmt.Errorf("failed to scan top scorer: %w", err)
		}
		out = append(out, tp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read top scorers: %w", err)
	}

	return out, nil
}

// WinPct computes wins / (wins + losses); a team with no games is 0.0, not a
// division by zero.
func WinPct(wins, losses int) float64 {
	games := wins + losses
	if games == 0 {
		return 0.0
	}
	return float64(wins) / float64(games)
}

// RankTeams sorts standings by win percentage in the given direction,
// breaking ties first by raw win count, then by losses (fewer losses first
// when descending, more when ascending). Computed here rather than in SQL so
// the tie-break policy is one testable function.
func RankTeams(teams []models.TeamData, direction models.OrderDirection) []models.TeamData {
	ranked := append([]models.TeamData(nil), teams...)
	asc := direction == models.OrderAsc

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.WinPct != b.WinPct {
			if asc {
				return a.WinPct < b.WinPct
			}
			return a.WinPct > b.WinPct
		}
		if a.Wins != b.Wins {
			if asc {
				return a.Wins < b.Wins
			}
			return a.Wins > b.Wins
		}
		if a.Losses != b.Losses {
			if asc {
				return a.Losses > b.Losses
			}
			return a.Losses < b.Losses
		}
		return a.Team < b.Team
	})

	return ranked
}
