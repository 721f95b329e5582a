package logging

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger defines the minimal logging interface for chatmesh.
// This allows users to provide their own logger implementation or use the
// built-in slog adapter.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogAdapter wraps *slog.Logger to implement the Logger interface.
type SlogAdapter struct {
	*slog.Logger
}

// Debug logs a debug message.
func (s *SlogAdapter) Debug(msg string, args ...any) { s.Logger.Debug(msg, args...) }

// Info logs an informational message.
func (s *SlogAdapter) Info(msg string, args ...any) { s.Logger.Info(msg, args...) }

// Warn logs a warning message.
func (s *SlogAdapter) Warn(msg string, args ...any) { s.Logger.Warn(msg, args...) }

// Error logs an error message.
func (s *SlogAdapter) Error(msg string, args ...any) { s.Logger.Error(msg, args...) }

// NewSlogAdapter creates a Logger from *slog.Logger.
func NewSlogAdapter(logger *slog.Logger) Logger {
	return &SlogAdapter{Logger: logger}
}

// NewJSONLogger creates a Logger emitting JSON records to w at the given
// level. Pass nil for w to log to stdout.
func NewJSONLogger(w io.Writer, level slog.Level) Logger {
	if w == nil {
		w = os.Stdout
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return NewSlogAdapter(slog.New(handler))
}

// NoOpLogger discards all log messages. Useful for testing or when logging
// is disabled.
type NoOpLogger struct{}

// Debug logs a debug message.
func (NoOpLogger) Debug(string, ...any) {}

// Info logs an informational message.
func (NoOpLogger) Info(string, ...any) {}

// Warn logs a warning message.
func (NoOpLogger) Warn(string, ...any) {}

// Error logs an error message.
func (NoOpLogger) Error(string, ...any) {}

// OrNoOp returns l, substituting a NoOpLogger when l is nil so callers never
// have to nil-check their logger.
func OrNoOp(l Logger) Logger {
	if l == nil {
		return NoOpLogger{}
	}
	return l
}

// ExchangeLogger adds domain convenience methods on top of a Logger.
type ExchangeLogger struct {
	Logger
}

// NewExchangeLogger wraps l (or a NoOpLogger when nil).
func NewExchangeLogger(l Logger) *ExchangeLogger {
	return &ExchangeLogger{Logger: OrNoOp(l)}
}

// LogExchange records one completed request/reply pair.
func (l *ExchangeLogger) LogExchange(sessionID, path string, dur time.Duration) {
	l.Info("exchange completed", "session_id", sessionID, "path", path, "duration", dur)
}

// LogProviderCall records latency and outcome of a model invocation.
func (l *ExchangeLogger) LogProviderCall(family, model string, dur time.Duration, err error) {
	if err != nil {
		l.Error("provider call failed", "family", family, "model", model, "duration", dur, "error", err.Error())
		return
	}
	l.Info("provider call completed", "family", family, "model", model, "duration", dur)
}

// LogToolCall records a dispatched tool invocation.
func (l *ExchangeLogger) LogToolCall(tool string, dur time.Duration) {
	l.Info("tool call completed", "tool", tool, "duration", dur)
}
