package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/courtside-ai/courtside-engine/pkg/backend"
	"github.com/courtside-ai/courtside-engine/pkg/config"
	"github.com/courtside-ai/courtside-engine/pkg/database"
	"github.com/courtside-ai/courtside-engine/pkg/handlers"
	"github.com/courtside-ai/courtside-engine/pkg/llm"
	"github.com/courtside-ai/courtside-engine/pkg/middleware"
	"github.com/courtside-ai/courtside-engine/pkg/repositories"
	"github.com/courtside-ai/courtside-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("env", cfg.Env),
		zap.Int("current_season", cfg.CurrentSeason),
		zap.String("database", cfg.Database.Database),
		zap.String("llm_model", cfg.LLM.Model),
		zap.Bool("backend_configured", cfg.Backend.IsAvailable()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := database.NewConnection(ctx, &database.Config{
		URL:             cfg.Database.ConnectionString(),
		MaxConnections:  cfg.Database.MaxConnections,
		MaxConnIdleTime: time.Duration(cfg.Database.IdleTimeoutSeconds) * time.Second,
		QueryTimeout:    time.Duration(cfg.Database.QueryTimeoutSeconds) * time.Second,
	})
	cancel()
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	llmClient, err := llm.NewClient(&llm.Config{
		Endpoint: cfg.LLM.Endpoint,
		Model:    cfg.LLM.Model,
		APIKey:   cfg.LLM.APIKey,
		Timeout:  cfg.LLM.Timeout(),
	}, logger)
	if err != nil {
		logger.Fatal("Failed to create LLM client", zap.Error(err))
	}

	var clusters services.ClusterFetcher
	if cfg.Backend.IsAvailable() {
		client, err := backend.NewClient(&backend.Config{
			BaseURL: cfg.Backend.BaseURL,
			APIKey:  cfg.Backend.APIKey,
			Timeout: cfg.Backend.Timeout(),
		}, logger)
		if err != nil {
			logger.Fatal("Failed to create backend client", zap.Error(err))
		}
		clusters = client
	}

	statsRepo := repositories.NewStatsRepository(db)
	teamRepo := repositories.NewTeamRepository(db)

	askService := services.NewAskService(
		services.NewClassifier(llmClient, cfg.LLM.Temperature, logger),
		services.NewTranslator(llmClient, cfg.CurrentSeason, cfg.LLM.Temperature, logger),
		services.NewExecutor(statsRepo, logger),
		services.NewTeamPlanner(teamRepo, logger),
		services.NewNarrator(llmClient, cfg.LLM.Temperature, logger),
		clusters,
		logger,
	)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewAskHandler(askService, cfg.Suggestions, logger).RegisterRoutes(mux)

	handler := middleware.RequestLogger(logger)(mux)

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("Starting courtside-engine", zap.String("addr", addr), zap.String("version", cfg.Version))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
