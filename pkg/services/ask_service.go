package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/courtside-ai/courtside-engine/pkg/apperrors"
	"github.com/courtside-ai/courtside-engine/pkg/models"
)

// ClusterFetcher is the downstream clustering capability consumed by
// historical-comparison questions. Kept as an interface so the backend
// client stays optional and substitutable in tests.
type ClusterFetcher interface {
	SimilarPlayers(ctx context.Context, player string, count *models.ComparisonCount) (*models.ClusterResult, error)
}

// Answer is the assembled response for one question.
type Answer struct {
	Query    *models.Query          `json:"query"`
	Rows     []models.PlayerStatRow `json:"rows,omitempty"`
	Teams    []models.TeamData      `json:"teams,omitempty"`
	Clusters *models.ClusterResult  `json:"clusters,omitempty"`
	Summary  string                 `json:"summary,omitempty"`
}

// AskService orchestrates the question-answering pipeline: classify the
// question, translate it, merge heuristically extracted names, branch on the
// task, and optionally narrate the result.
type AskService struct {
	classifier  *Classifier
	translator  *Translator
	executor    *Executor
	teamPlanner *TeamPlanner
	narrator    *Narrator
	clusters    ClusterFetcher // nil when no backend is configured
	logger      *zap.Logger
}

// NewAskService creates an AskService. clusters may be nil; historical
// comparison questions then fail with an upstream error instead of a panic.
func NewAskService(
	classifier *Classifier,
	translator *Translator,
	executor *Executor,
	teamPlanner *TeamPlanner,
	narrator *Narrator,
	clusters ClusterFetcher,
	logger *zap.Logger,
) *AskService {
	return &AskService{
		classifier:  classifier,
		translator:  translator,
		executor:    executor,
		teamPlanner: teamPlanner,
		narrator:    narrator,
		clusters:    clusters,
		logger:      logger.Named("ask"),
	}
}

// Ask answers one question. Informational questions return
// apperrors.ErrInformationalQuestion; tasks that need a specific player but
// cannot resolve one return apperrors.ErrNoPlayerName.
func (s *AskService) Ask(ctx context.Context, question string, narrate bool) (*Answer, error) {
	if !s.classifier.IsDataQuestion(ctx, question) {
		return nil, apperrors.ErrInformationalQuestion
	}

	q := s.translator.ToStructuredQuery(ctx, question)

	var colleges []string
	if q.Filters != nil {
		colleges = q.Filters.Colleges
	}
	extracted := ExtractPlayerNames(question, colleges)
	q = q.WithPlayers(extracted)

	switch q.Task {
	case models.TaskTeam:
		teams, err := s.teamPlanner.Run(ctx, q)
		if err != nil {
			return nil, err
		}
		return &Answer{Query: q, Teams: teams}, nil

	case models.TaskHistoricalComparison:
		return s.historicalComparison(ctx, q)

	case models.TaskSolo:
		if len(q.PlayerNames()) == 0 {
			return nil, fmt.Errorf("%w: a player profile question must name a player", apperrors.ErrNoPlayerName)
		}
		fallthrough

	default:
		rows, err := s.executor.Run(ctx, q)
		if err != nil {
			return nil, err
		}

		answer := &Answer{Query: q, Rows: rows}
		if narrate {
			answer.Summary = s.narrator.SummarizeAnswer(ctx, q, rows)
		}
		return answer, nil
	}
}

// historicalComparison proxies to the clustering backend. The response
// envelope carries a synthesized minimal query rather than the translated
// one, since cluster results have no metric or ordering semantics.
func (s *AskService) historicalComparison(ctx context.Context, q *models.Query) (*Answer, error) {
	name := firstPlayerName(q)
	if name == "" {
		return nil, fmt.Errorf("%w: a historical comparison must name a player", apperrors.ErrNoPlayerName)
	}
	if s.clusters == nil {
		return nil, fmt.Errorf("%w: clustering backend is not configured", apperrors.ErrUpstreamUnavailable)
	}

	result, err := s.clusters.SimilarPlayers(ctx, name, q.HistoricalComparisonCount)
	if err != nil {
		return nil, err
	}

	placeholder := &models.Query{
		Task:           models.TaskHistoricalComparison,
		Metric:         models.MetricAll,
		Season:         q.Season,
		OrderDirection: models.OrderDesc,
	}
	return &Answer{Query: placeholder, Clusters: result}, nil
}

func firstPlayerName(q *models.Query) string {
	names := q.PlayerNames()
	if len(names) == 0 {
		return ""
	}
	return names[0]
}
