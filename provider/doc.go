// Package provider resolves a configured provider family and generation
// config to an invocable core.Provider. Vendor adapters live in subpackages
// (openai, anthropic, gemini, ollama); this package owns the factory that
// picks one at request time plus the deterministic offline echo fallback.
package provider
