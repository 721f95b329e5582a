package core

import "context"

// SessionStore persists ordered, append-only per-session turn history.
//
// Contract:
//   - Turns returns an empty slice (not an error) for an unknown session id
//   - Append adds one turn at the end, creating the session implicitly
//   - Clear removes all history for the id and is idempotent on unknown ids
//   - the store never merges two session ids
//
// Implementations must be safe for concurrent use and must not hold any
// internal lock across external I/O.
type SessionStore interface {
	Turns(ctx context.Context, sessionID string) ([]Turn, error)
	Append(ctx context.Context, sessionID string, turn Turn) error
	Clear(ctx context.Context, sessionID string) error
}
