package services

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/courtside-ai/courtside-engine/pkg/llm"
	"github.com/courtside-ai/courtside-engine/pkg/models"
	"github.com/courtside-ai/courtside-engine/pkg/prompts"
	"github.com/courtside-ai/courtside-engine/pkg/retry"
)

// Translator maps unconstrained question text onto the structured query
// schema using the text-generation capability as an imprecise function
// approximator, then defends against its failure modes. Translation is
// total: every path returns a valid query, never an error.
type Translator struct {
	client        llm.LLMClient
	currentSeason int
	temperature   float64
	retryCfg      *retry.Config
	logger        *zap.Logger
}

// NewTranslator creates a Translator. The current season is the default
// applied when a question does not name one.
func NewTranslator(client llm.LLMClient, currentSeason int, temperature float64, logger *zap.Logger) *Translator {
	return &Translator{
		client:        client,
		currentSeason: currentSeason,
		temperature:   temperature,
		retryCfg:      retry.LLMConfig(),
		logger:        logger.Named("translator"),
	}
}

// ascTriggers are the lexical markers that flip ordering to ascending.
// Descending is the default and is never overridden without one of these.
var ascTriggers = []string{"least", "lowest", "worst", "fewest", "bottom", "minimum"}

// ToStructuredQuery translates question text into a validated query. On any
// transport, parse, or validation failure it returns the deterministic
// fallback query, so the pipeline always has something queryable.
func (t *Translator) ToStructuredQuery(ctx context.Context, question string) *models.Query {
	prompt := prompts.BuildTranslationPrompt(question, t.currentSeason)

	content, err := retry.DoWithResult(ctx, t.retryCfg, func() (string, error) {
		return t.client.GenerateJSON(ctx, prompt, prompts.TranslationSystemMessage, t.temperature, prompts.QuerySchemaName, prompts.QueryJSONSchema)
	})
	if err != nil {
		t.logger.Warn("translation call failed, using fallback query", zap.Error(err))
		return t.Fallback()
	}

	jsonStr, err := llm.ExtractJSON(content)
	if err != nil {
		t.logger.Warn("no JSON in translation output, using fallback query",
			zap.Int("content_len", len(content)))
		return t.Fallback()
	}

	q, err := t.repairAndValidate([]byte(jsonStr), question)
	if err != nil {
		t.logger.Warn("translation output failed validation, using fallback query", zap.Error(err))
		return t.Fallback()
	}

	return q
}

// repairAndValidate decodes raw translation output under the strict schema
// variant, applies defensive repairs, and validates. Repair runs before
// validation: an explicit null for an unused field is a legitimate omission,
// not a violation.
func (t *Translator) repairAndValidate(raw []byte, question string) (*models.Query, error) {
	var q models.Query
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&q); err != nil {
		return nil, &models.SchemaViolation{Field: "query", Reason: err.Error()}
	}

	t.repair(&q, question)

	q.Normalize()
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return &q, nil
}

// repair patches the known failure modes of the model's output. Enum fields
// are lowercased here, ahead of the checks, so a case-variant but valid
// value is kept rather than replaced with a default.
func (t *Translator) repair(q *models.Query, question string) {
	q.Metric = models.Metric(strings.ToLower(strings.TrimSpace(string(q.Metric))))
	q.Position = models.Position(strings.ToLower(strings.TrimSpace(string(q.Position))))

	if q.Metric == "" || !models.ValidMetric(q.Metric) {
		q.Metric = models.MetricPPG
	}
	if q.Task == "" {
		q.Task = models.TaskRank
	}
	if q.Season <= 0 {
		q.Season = t.currentSeason
	}
	if q.Position != "" && !models.Positions[q.Position] {
		q.Position = ""
	}

	// Reconcile order direction with the lexical triggers. The prompt states
	// the same rule, but the model occasionally sets asc for "most" or drops
	// it for "fewest"; the question text is the authority.
	if hasAscTrigger(question) {
		q.OrderDirection = models.OrderAsc
	} else if q.OrderDirection == models.OrderAsc {
		q.OrderDirection = models.OrderDesc
	}
}

func hasAscTrigger(question string) bool {
	lower := strings.ToLower(question)
	for _, trigger := range ascTriggers {
		if strings.Contains(lower, trigger) {
			return true
		}
	}
	return false
}

// Fallback returns the deterministic query used when translation fails:
// current-season scoring leaders, descending, ten rows.
func (t *Translator) Fallback() *models.Query {
	return &models.Query{
		Task:           models.TaskRank,
		Metric:         models.MetricPPG,
		Season:         t.currentSeason,
		OrderDirection: models.OrderDesc,
		Limit:          models.DefaultLimit,
	}
}
