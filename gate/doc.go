// Package gate implements the request-admission check applied before any
// core logic runs: a fail-closed shared-secret credential comparison and a
// fixed-window rate limiter counting requests per credential key.
package gate
