// Package tool implements the command-dispatch subsystem: a registry of
// named pure string-to-string functions plus the built-in calculator and
// web-lookup tools. Messages starting with the command marker are routed to
// a registered tool instead of the language-model provider.
package tool
