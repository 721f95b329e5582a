// Package engine implements the request orchestrator: given an admitted
// message and session id it decides tool-path versus provider-path, builds
// the prompt from stored history, invokes the chosen path with a bounded
// timeout, persists the new turns and writes the audit record.
package engine
