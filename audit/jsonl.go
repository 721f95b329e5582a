package audit

import (
	"context"
	"fmt"
	"io"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/hupe1980/chatmesh/core"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONLWriter is an AuditLog emitting one JSON record per line to an
// io.Writer (typically an append-opened file). A mutex serializes writes so
// concurrent exchanges never interleave within a line.
type JSONLWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewJSONLWriter constructs a JSONL sink over w.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{w: w}
}

// Write encodes the record and appends it as one line.
func (l *JSONLWriter) Write(_ context.Context, record core.AuditRecord) error {
	encoded, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("audit: encode record: %w", err)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.w.Write(append(encoded, '\n')); err != nil {
		return fmt.Errorf("audit: write record: %w", err)
	}
	return nil
}
