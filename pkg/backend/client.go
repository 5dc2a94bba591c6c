// Package backend is the HTTP client for the downstream player-clustering
// service used by historical-comparison questions.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/courtside-ai/courtside-engine/pkg/apperrors"
	"github.com/courtside-ai/courtside-engine/pkg/models"
)

// Client talks to the clustering backend over plain HTTP with a shared API
// key header.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *zap.Logger
}

// Config holds backend client configuration.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// NewClient creates a backend client. BaseURL must be set; a service running
// without a backend should not construct one.
func NewClient(cfg *Config, logger *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("backend base URL is required")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
		logger:  logger.Named("backend"),
	}, nil
}

// SimilarPlayers fetches the historical cluster for a player. count bounds
// the number of comparables; a nil count requests the backend default and
// ComparisonCount.All requests every match.
//
// A player with no cluster is a soft miss: the backend answers 200 with the
// noClusterFound marker set, and that result is passed through unchanged.
func (c *Client) SimilarPlayers(ctx context.Context, player string, count *models.ComparisonCount) (*models.ClusterResult, error) {
	endpoint := fmt.Sprintf("%s/clusters/%s", c.baseURL, url.PathEscape(player))
	if count != nil {
		v := url.Values{}
		if count.All {
			v.Set("count", "all")
		} else if count.N > 0 {
			v.Set("count", strconv.Itoa(count.N))
		}
		if encoded := v.Encode(); encoded != "" {
			endpoint += "?" + encoded
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build cluster request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("cluster request failed",
			zap.String("player", player),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: backend has no record of %q", apperrors.ErrNotFound, player)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: backend returned HTTP %d", apperrors.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var result models.ClusterResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decode cluster response: %v", apperrors.ErrUpstreamUnavailable, err)
	}

	c.logger.Debug("cluster request completed",
		zap.String("player", player),
		zap.Bool("no_cluster", result.NoClusterFound),
		zap.Int("matches", len(result.Matches)),
		zap.Duration("elapsed", time.Since(start)))

	return &result, nil
}
