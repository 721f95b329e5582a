package audit

import (
	"context"
	"sync"

	"github.com/hupe1980/chatmesh/core"
)

// InMemoryLog is a volatile AuditLog keeping records in a process local
// slice. Best suited for tests and ephemeral demo servers.
type InMemoryLog struct {
	mu      sync.Mutex
	records []core.AuditRecord
}

// NewInMemoryLog constructs an empty in-memory audit log.
func NewInMemoryLog() *InMemoryLog {
	return &InMemoryLog{}
}

// Write appends one record. It never fails.
func (l *InMemoryLog) Write(_ context.Context, record core.AuditRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, record)
	return nil
}

// Records returns a copy of all records written so far, in write order.
func (l *InMemoryLog) Records() []core.AuditRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	records := make([]core.AuditRecord, len(l.records))
	copy(records, l.records)
	return records
}
