// Package database wraps the pgx connection pool for the statistics store.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a pgxpool connection pool and carries the configured statement
// timeout so query call sites can bound runaway SQL.
type DB struct {
	*pgxpool.Pool
	queryTimeout time.Duration
}

// Config holds database connection configuration.
type Config struct {
	URL             string
	MaxConnections  int32
	MaxConnIdleTime time.Duration
	QueryTimeout    time.Duration
}

// NewConnection creates a new database connection pool.
func NewConnection(ctx context.Context, cfg *Config) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	poolConfig.MaxConns = cfg.MaxConnections
	if poolConfig.MaxConns == 0 {
		poolConfig.MaxConns = 20
	}

	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	if poolConfig.MaxConnIdleTime == 0 {
		poolConfig.MaxConnIdleTime = 30 * time.Second
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	qt := cfg.QueryTimeout
	if qt == 0 {
		qt = 5 * time.Second
	}

	return &DB{Pool: pool, queryTimeout: qt}, nil
}

// QueryContext returns a derived context bounded by the configured query
// timeout, along with its cancel func.
func (db *DB) QueryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, db.queryTimeout)
}

// Close closes the connection pool.
func (db *DB) Close() {
	db.Pool.Close()
}
