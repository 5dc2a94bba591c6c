// Package apperrors defines sentinel errors shared across the pipeline.
package apperrors

import "errors"

var (
	// ErrNotFound indicates a lookup matched nothing that must exist.
	ErrNotFound = errors.New("not found")
	// ErrNoPlayerName indicates a task requiring a specific player could not
	// resolve a name from structured filters or heuristic extraction.
	ErrNoPlayerName = errors.New("no player name found in question")
	// ErrInformationalQuestion indicates the question was classified as
	// out-of-domain and should receive suggestions, not a query.
	ErrInformationalQuestion = errors.New("question is informational, not a statistics request")
	// ErrUpstreamUnavailable indicates the backend proxy or relational store
	// is unreachable or misconfigured.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
)
