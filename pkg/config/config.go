// Package config loads service configuration from config.yaml with
// environment variable overrides.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for courtside-engine.
// Configuration can come from YAML file (config.yaml) or environment
// variables. Environment variables always override YAML values. Secrets
// (API keys, passwords) must only come from environment variables.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8090"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// CurrentSeason is the default season year applied when a question does
	// not name one.
	CurrentSeason int `yaml:"current_season" env:"CURRENT_SEASON" env-default:"2026"`

	// Database configuration (PostgreSQL)
	Database DatabaseConfig `yaml:"database"`

	// LLM is the text-generation capability endpoint.
	LLM LLMConfig `yaml:"llm"`

	// Backend is the downstream clustering/historical-comparison service.
	Backend BackendConfig `yaml:"backend"`

	// Suggestions are the example questions returned when a question is
	// classified as informational.
	Suggestions []string `yaml:"suggestions" env:"SUGGESTIONS" env-separator:"|"`
}

// DatabaseConfig holds PostgreSQL configuration. The pool limits are
// resource-exhaustion guards, not correctness requirements.
type DatabaseConfig struct {
	Host           string `yaml:"host" env:"PGHOST" env-default:"localhost"`
	Port           int    `yaml:"port" env:"PGPORT" env-default:"5432"`
	User           string `yaml:"user" env:"PGUSER" env-default:"courtside"`
	Password       string `yaml:"-" env:"PGPASSWORD"` // Secret - not in YAML
	Database       string `yaml:"database" env:"PGDATABASE" env-default:"courtside_stats"`
	SSLMode        string `yaml:"ssl_mode" env:"PGSSLMODE" env-default:"disable"`
	MaxConnections int32  `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"20"`

	// IdleTimeoutSeconds evicts idle connections from the pool.
	IdleTimeoutSeconds int `yaml:"idle_timeout_seconds" env:"PGIDLE_TIMEOUT_SECONDS" env-default:"30"`
	// ConnectTimeoutSeconds bounds connection establishment.
	ConnectTimeoutSeconds int `yaml:"connect_timeout_seconds" env:"PGCONNECT_TIMEOUT_SECONDS" env-default:"2"`
	// QueryTimeoutSeconds bounds worst-case latency for runaway SQL.
	QueryTimeoutSeconds int `yaml:"query_timeout_seconds" env:"PGQUERY_TIMEOUT_SECONDS" env-default:"5"`
}

// LLMConfig holds text-generation endpoint configuration.
type LLMConfig struct {
	Endpoint       string  `yaml:"endpoint" env:"LLM_ENDPOINT" env-default:"https://api.openai.com/v1"`
	Model          string  `yaml:"model" env:"LLM_MODEL" env-default:"gpt-4o-mini"`
	APIKey         string  `yaml:"-" env:"LLM_API_KEY"` // Secret - not in YAML
	Temperature    float64 `yaml:"temperature" env:"LLM_TEMPERATURE" env-default:"0"`
	TimeoutSeconds int     `yaml:"timeout_seconds" env:"LLM_TIMEOUT_SECONDS" env-default:"20"`
}

// Timeout returns the per-request deadline for LLM calls.
func (c *LLMConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// BackendConfig holds the clustering/historical-comparison proxy settings.
type BackendConfig struct {
	BaseURL        string `yaml:"base_url" env:"BACKEND_BASE_URL" env-default:""`
	APIKey         string `yaml:"-" env:"BACKEND_API_KEY"` // Secret - not in YAML
	TimeoutSeconds int    `yaml:"timeout_seconds" env:"BACKEND_TIMEOUT_SECONDS" env-default:"10"`
}

// IsAvailable returns true if the backend proxy is configured.
func (c *BackendConfig) IsAvailable() bool {
	return c.BaseURL != ""
}

// Timeout returns the per-request deadline for backend calls.
func (c *BackendConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DefaultSuggestions are served when no suggestion list is configured.
var DefaultSuggestions = []string{
	"who leads the league in scoring this season",
	"which rookies are averaging the most points",
	"compare LeBron James and Kevin Durant",
	"what is the best team in the league right now",
	"who has the highest three point percentage among guards",
}

// Load reads configuration from config.yaml with environment variable
// overrides. The version parameter is injected at build time.
func Load(version string) (*Config, error) {
	cfg := &Config{Version: version}

	if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
		return nil, fmt.Errorf("failed to read config.yaml: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if len(cfg.Suggestions) == 0 {
		cfg.Suggestions = DefaultSuggestions
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.CurrentSeason < 1946 {
		return fmt.Errorf("current_season %d predates the league", c.CurrentSeason)
	}
	if c.LLM.Endpoint == "" {
		return fmt.Errorf("llm endpoint is required")
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("llm model is required")
	}
	return nil
}

// ConnectionString returns a PostgreSQL connection string including the
// connect timeout.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s connect_timeout=%d",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode, c.ConnectTimeoutSeconds,
	)
}
