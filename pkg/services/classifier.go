package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/courtside-ai/courtside-engine/pkg/llm"
	"github.com/courtside-ai/courtside-engine/pkg/prompts"
)

// Classifier decides whether a question is an in-domain statistics request
// or an informational one.
type Classifier struct {
	client      llm.LLMClient
	temperature float64
	logger      *zap.Logger
}

// NewClassifier creates a Classifier.
func NewClassifier(client llm.LLMClient, temperature float64, logger *zap.Logger) *Classifier {
	return &Classifier{
		client:      client,
		temperature: temperature,
		logger:      logger.Named("classifier"),
	}
}

// IsDataQuestion returns false only when the model clearly answers "no".
// Ambiguous or failed classification fails open toward attempting
// translation, so a flaky model never blocks legitimate queries.
func (c *Classifier) IsDataQuestion(ctx context.Context, question string) bool {
	answer, err := c.client.Generate(ctx, prompts.BuildClassifierPrompt(question), prompts.ClassifierSystemMessage, c.temperature)
	if err != nil {
		c.logger.Warn("classification failed, treating question as in-domain", zap.Error(err))
		return true
	}

	normalized := strings.ToLower(strings.TrimSpace(answer))
	normalized = strings.Trim(normalized, ".!\"'")

	switch normalized {
	case "no":
		return false
	case "yes":
		return true
	default:
		c.logger.Debug("ambiguous classification, treating question as in-domain",
			zap.String("answer", answer))
		return true
	}
}
