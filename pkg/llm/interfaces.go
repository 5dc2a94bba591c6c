package llm

import (
	"context"
	"encoding/json"
)

// LLMClient defines the text-generation capability consumed by the pipeline.
// Use this interface for dependency injection to enable mocking in tests.
type LLMClient interface {
	// Generate produces an unconstrained chat completion.
	Generate(ctx context.Context, prompt, systemMessage string, temperature float64) (string, error)

	// GenerateJSON produces a completion constrained to a JSON schema.
	GenerateJSON(ctx context.Context, prompt, systemMessage string, temperature float64, schemaName string, schema json.RawMessage) (string, error)

	// GetModel returns the configured model name.
	GetModel() string

	// GetEndpoint returns the configured endpoint.
	GetEndpoint() string
}

// Ensure Client implements LLMClient at compile time.
var _ LLMClient = (*Client)(nil)
