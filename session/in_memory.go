package session

import (
	"context"
	"sync"

	"github.com/hupe1980/chatmesh/core"
)

// InMemoryStore is a volatile SessionStore implementation keeping turn
// history in a process local map. A single mutex covers all three
// operations, so concurrent requests against different sessions serialize
// briefly but never corrupt state. The lock is held only for the duration of
// the local map mutation, never across I/O.
type InMemoryStore struct {
	mu       sync.Mutex
	sessions map[string][]core.Turn
}

// NewInMemoryStore constructs an empty in-memory session store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string][]core.Turn)}
}

// Turns returns a copy of the session's history, or an empty slice for an
// unknown id. It never fails.
func (s *InMemoryStore) Turns(_ context.Context, sessionID string) ([]core.Turn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	turns := make([]core.Turn, len(s.sessions[sessionID]))
	copy(turns, s.sessions[sessionID])
	return turns, nil
}

// Append adds one turn to the end of the session, creating it if absent.
func (s *InMemoryStore) Append(_ context.Context, sessionID string, turn core.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = append(s.sessions[sessionID], turn)
	return nil
}

// Clear removes all history for the id; idempotent on unknown ids.
func (s *InMemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
