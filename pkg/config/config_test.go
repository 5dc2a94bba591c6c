package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, yaml string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(oldWD)) })
}

const minimalYAML = `
llm:
  endpoint: http://localhost:8000/v1
  model: test-model
`

func TestLoadDefaults(t *testing.T) {
	writeConfig(t, minimalYAML)

	cfg, err := Load("1.2.3")
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", cfg.Version)
	assert.Equal(t, "127.0.0.1", cfg.BindAddr)
	assert.Equal(t, "8090", cfg.Port)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 2026, cfg.CurrentSeason)

	assert.Equal(t, int32(20), cfg.Database.MaxConnections)
	assert.Equal(t, 30, cfg.Database.IdleTimeoutSeconds)
	assert.Equal(t, 2, cfg.Database.ConnectTimeoutSeconds)
	assert.Equal(t, 5, cfg.Database.QueryTimeoutSeconds)

	assert.Equal(t, "test-model", cfg.LLM.Model)
	assert.Equal(t, 20*time.Second, cfg.LLM.Timeout())

	assert.False(t, cfg.Backend.IsAvailable())
	assert.Equal(t, DefaultSuggestions, cfg.Suggestions)
}

func TestLoadEnvOverrides(t *testing.T) {
	writeConfig(t, minimalYAML)
	t.Setenv("PGPASSWORD", "secret")
	t.Setenv("CURRENT_SEASON", "2025")
	t.Setenv("SUGGESTIONS", "first question|second question")

	cfg, err := Load("dev")
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, 2025, cfg.CurrentSeason)
	assert.Equal(t, []string{"first question", "second question"}, cfg.Suggestions)
}

func TestLoadValidation(t *testing.T) {
	writeConfig(t, "current_season: 1900\nllm:\n  endpoint: http://x\n  model: m\n")

	_, err := Load("dev")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			CurrentSeason: 2026,
			LLM:           LLMConfig{Endpoint: "http://x", Model: "m"},
		}
	}

	assert.NoError(t, base().validate())

	cfg := base()
	cfg.LLM.Endpoint = ""
	assert.Error(t, cfg.validate())

	cfg = base()
	cfg.LLM.Model = ""
	assert.Error(t, cfg.validate())

	cfg = base()
	cfg.CurrentSeason = 1900
	assert.Error(t, cfg.validate())
}

func TestLoadMissingFile(t *testing.T) {
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { require.NoError(t, os.Chdir(oldWD)) })
	_, err = Load("dev")
	assert.Error(t, err)
}

func TestConnectionString(t *testing.T) {
	db := DatabaseConfig{
		Host:                  "db.internal",
		Port:                  5433,
		User:                  "courtside",
		Password:              "pw",
		Database:              "courtside_stats",
		SSLMode:               "require",
		ConnectTimeoutSeconds: 2,
	}

	got := db.ConnectionString()
	assert.Equal(t, "host=db.internal port=5433 user=courtside password=pw dbname=courtside_stats sslmode=require connect_timeout=2", got)
}

func TestBackendConfig(t *testing.T) {
	b := BackendConfig{BaseURL: "http://clusters.internal", TimeoutSeconds: 10}
	assert.True(t, b.IsAvailable())
	assert.Equal(t, 10*time.Second, b.Timeout())
}
