// Package session houses concrete implementations of the core.SessionStore.
// The interface itself (and the Turn struct) live in the core package to
// centralize domain contracts. Keeping only implementations here prevents
// higher level packages (engine, server) from depending on concrete storage.
//
// Two interchangeable backends are provided: the transient InMemoryStore in
// this package and the durable Redis-backed store in the redis subpackage.
// Additional backends (Postgres, Firestore, etc.) belong in further
// subpackages; only the wiring layer decides which one to instantiate.
package session
