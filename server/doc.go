// Package server exposes the chat engine over HTTP. It owns request
// validation, credential extraction from the X-API-Key header and the
// mapping from domain errors to status codes; all chat semantics live in
// the engine.
package server
