package core

import (
	"context"
	"time"
)

// AuditRecord captures one completed exchange. Records are written by the
// orchestrator after persistence and consumed by operators; the core never
// reads them back.
type AuditRecord struct {
	Time      time.Time `json:"time"`
	SessionID string    `json:"session_id"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	// Path names what served the request: "tool:<name>" or "<family>:<model>".
	Path string `json:"path"`
}

// AuditLog is an append-only, write-only sink for completed exchanges.
type AuditLog interface {
	Write(ctx context.Context, record AuditRecord) error
}
