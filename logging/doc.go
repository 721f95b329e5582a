// Package logging provides a tiny abstraction over slog so downstream code
// can depend on a minimal interface (Logger) while allowing users to plug any
// structured logger. It also offers an ExchangeLogger with domain specific
// helpers for completed exchanges, provider calls and tool invocations.
package logging
