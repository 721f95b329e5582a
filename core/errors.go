package core

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when the presented credential is absent or
	// does not match the configured shared secret. Surfaced to the caller as
	// a rejection; never retried server-side.
	ErrUnauthorized = errors.New("invalid or missing credential")

	// ErrRateLimited is returned when the fixed-window quota for a credential
	// is exhausted. The caller is expected to retry later.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// ConfigError indicates a deployment defect: a missing shared secret, a
// missing required provider credential or an unknown provider family. It is
// always surfaced as a server-side failure, never as a caller mistake.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// NewConfigError creates a ConfigError with a formatted reason.
func NewConfigError(format string, args ...any) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
