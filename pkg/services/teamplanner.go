package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/courtside-ai/courtside-engine/pkg/models"
	"github.com/courtside-ai/courtside-engine/pkg/repositories"
	"github.com/courtside-ai/courtside-engine/pkg/sqlguard"
)

// TeamPlanner is the specialized execution path for team-standing and
// roster-summary questions.
type TeamPlanner struct {
	teams  repositories.TeamRepository
	logger *zap.Logger
}

// NewTeamPlanner creates a TeamPlanner.
func NewTeamPlanner(teams repositories.TeamRepository, logger *zap.Logger) *TeamPlanner {
	return &TeamPlanner{teams: teams, logger: logger.Named("team_planner")}
}

// Run returns ranked TeamData for a team query.
//
// A named team, or the absence of an explicit limit, reads as "tell me about
// this one team": the result is a single TeamData carrying its top scorers.
// Otherwise the result is a bare ranked list of up to 30 teams with no
// roster detail.
func (p *TeamPlanner) Run(ctx context.Context, q *models.Query) ([]models.TeamData, error) {
	q = p.screenTeams(q)

	standings, err := p.teams.Standings(ctx, q.Season, []string(q.Team))
	if err != nil {
		return nil, err
	}

	ranked := repositories.RankTeams(standings, q.OrderDirection)

	// A zero limit survives normalization only for team queries and means
	// the question never asked for a list.
	singleTeam := len(q.Team) > 0 || q.Limit <= 0
	if singleTeam {
		if len(ranked) == 0 {
			return nil, nil
		}
		top := ranked[0]
		scorers, err := p.teams.TopScorers(ctx, q.Season, top.Team)
		if err != nil {
			return nil, err
		}
		top.TopScorers = scorers
		return []models.TeamData{top}, nil
	}

	limit := q.Limit
	if limit <= 0 || limit > models.MaxTeamRows {
		limit = models.MaxTeamRows
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// screenTeams runs the model-supplied team names through the same injection
// check the player path applies to its string filters. Values are bound as
// parameters regardless; a hit is dropped and logged, not fatal.
func (p *TeamPlanner) screenTeams(q *models.Query) *models.Query {
	out := q.Clone()
	teams, dropped := sqlguard.CleanValues("team", out.Team)
	out.Team = models.TeamList(teams)
	for _, r := range dropped {
		p.logger.Warn("dropped team value failing injection check",
			zap.String("fingerprint", r.Fingerprint))
	}
	return out
}
