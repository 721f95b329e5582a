package audit

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/chatmesh/core"
)

// Interface compliance (compile-time assertions)
var (
	_ core.AuditLog = (*InMemoryLog)(nil)
	_ core.AuditLog = (*JSONLWriter)(nil)
)

func TestInMemoryLog_AppendOnly(t *testing.T) {
	ctx := context.Background()
	log := NewInMemoryLog()

	require.NoError(t, log.Write(ctx, core.AuditRecord{SessionID: "s1", Path: "tool:calc"}))
	require.NoError(t, log.Write(ctx, core.AuditRecord{SessionID: "s1", Path: "openai:gpt-4o-mini"}))

	records := log.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "tool:calc", records[0].Path)
	assert.Equal(t, "openai:gpt-4o-mini", records[1].Path)

	// Returned slice is a copy.
	records[0].Path = "mutated"
	assert.Equal(t, "tool:calc", log.Records()[0].Path)
}

func TestInMemoryLog_ConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	log := NewInMemoryLog()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = log.Write(ctx, core.AuditRecord{SessionID: "s"})
		}()
	}
	wg.Wait()

	assert.Len(t, log.Records(), 50)
}

func TestJSONLWriter(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	log := NewJSONLWriter(&buf)

	record := core.AuditRecord{
		Time:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		SessionID: "s1",
		Input:     "/calc 1+1",
		Output:    "2",
		Path:      "tool:calc",
	}
	require.NoError(t, log.Write(ctx, record))
	require.NoError(t, log.Write(ctx, record))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"session_id":"s1"`)
	assert.Contains(t, lines[0], `"path":"tool:calc"`)
}
