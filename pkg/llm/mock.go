package llm

import (
	"context"
	"encoding/json"
)

// MockLLMClient is a configurable mock for testing LLM-backed components.
// Set the function fields to control behavior in tests.
type MockLLMClient struct {
	// GenerateFunc is called when Generate is invoked.
	// If nil, returns empty string and nil error.
	GenerateFunc func(ctx context.Context, prompt, systemMessage string, temperature float64) (string, error)

	// GenerateJSONFunc is called when GenerateJSON is invoked.
	// If nil, returns "{}" and nil error.
	GenerateJSONFunc func(ctx context.Context, prompt, systemMessage string, temperature float64, schemaName string, schema json.RawMessage) (string, error)

	// Model is returned by GetModel. Defaults to "mock-model".
	Model string

	// Endpoint is returned by GetEndpoint. Defaults to "http://mock-endpoint".
	Endpoint string

	// Call tracking for verification
	GenerateCalls     int
	GenerateJSONCalls int
	LastPrompt        string
	LastSystemMessage string
}

// NewMockLLMClient creates a new mock with sensible defaults.
func NewMockLLMClient() *MockLLMClient {
	return &MockLLMClient{
		Model:    "mock-model",
		Endpoint: "http://mock-endpoint",
	}
}

// Generate implements LLMClient.
func (m *MockLLMClient) Generate(ctx context.Context, prompt, systemMessage string, temperature float64) (string, error) {
	m.GenerateCalls++
	m.LastPrompt = prompt
	m.LastSystemMessage = systemMessage
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt, systemMessage, temperature)
	}
	return "", nil
}

// GenerateJSON implements LLMClient.
func (m *MockLLMClient) GenerateJSON(ctx context.Context, prompt, systemMessage string, temperature float64, schemaName string, schema json.RawMessage) (string, error) {
	m.GenerateJSONCalls++
	m.LastPrompt = prompt
	m.LastSystemMessage = systemMessage
	if m.GenerateJSONFunc != nil {
		return m.GenerateJSONFunc(ctx, prompt, systemMessage, temperature, schemaName, schema)
	}
	return "{}", nil
}

// GetModel implements LLMClient.
func (m *MockLLMClient) GetModel() string {
	if m.Model == "" {
		return "mock-model"
	}
	return m.Model
}

// GetEndpoint implements LLMClient.
func (m *MockLLMClient) GetEndpoint() string {
	if m.Endpoint == "" {
		return "http://mock-endpoint"
	}
	return m.Endpoint
}

// Reset clears call tracking counters.
func (m *MockLLMClient) Reset() {
	m.GenerateCalls = 0
	m.GenerateJSONCalls = 0
	m.LastPrompt = ""
	m.LastSystemMessage = ""
}

// Ensure MockLLMClient implements LLMClient at compile time.
var _ LLMClient = (*MockLLMClient)(nil)
