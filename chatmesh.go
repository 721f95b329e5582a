// Package chatmesh provides a high-level façade over the chat Engine and its
// service abstractions (gate, sessions, providers, tools & audit) enabling
// rapid construction of chat services. Most applications interact with this
// package by:
//  1. Creating a ChatMesh via New() (optionally overriding default in-memory services)
//  2. Serving exchanges through Chat, or mounting server.Server for HTTP access
//
// The façade delegates orchestration to engine.Engine while keeping setup and
// usage ergonomics concise. All defaults are safe for local development and
// testing: without credentials the openai family answers through a
// deterministic echo fallback, and the calculator and web search tools are
// pre-registered. Production deployments typically supply a durable session
// store, live provider credentials and a structured logger.
package chatmesh

import (
	"context"

	"github.com/hupe1980/chatmesh/core"
	"github.com/hupe1980/chatmesh/engine"
	"github.com/hupe1980/chatmesh/logging"
	"github.com/hupe1980/chatmesh/provider"
	"github.com/hupe1980/chatmesh/tool"
)

// Options configures the ChatMesh instance.
type Options struct {
	// SessionStore persists per-session history (defaults to in-memory).
	SessionStore core.SessionStore

	// Providers resolves generation configs to provider adapters (defaults
	// to the openai family without credentials, i.e. the echo fallback).
	Providers engine.ProviderResolver

	// Tools is the command registry. Nil gets a registry with the built-in
	// calculator and web search tools.
	Tools *tool.Registry

	// AuditLog receives one record per completed exchange (defaults to
	// in-memory).
	AuditLog core.AuditLog

	// ServiceDefaults and EnvDefaults are the lower generation config layers.
	ServiceDefaults core.GenerationConfig
	EnvDefaults     core.GenerationConfig

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// ChatMesh is the high-level façade aggregating the underlying engine and
// services.
type ChatMesh struct {
	opts   Options
	engine *engine.Engine
}

// New creates a new ChatMesh instance with optional overrides. Any unset
// service is initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *ChatMesh {
	opts := Options{
		Providers: provider.NewFactory(),
		Logger:    logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Tools == nil {
		opts.Tools = DefaultTools()
	}

	e := engine.New(func(o *engine.Options) {
		if opts.SessionStore != nil {
			o.SessionStore = opts.SessionStore
		}
		if opts.Providers != nil {
			o.Providers = opts.Providers
		}
		if opts.AuditLog != nil {
			o.AuditLog = opts.AuditLog
		}
		o.Tools = opts.Tools
		o.ServiceDefaults = opts.ServiceDefaults
		o.EnvDefaults = opts.EnvDefaults
		o.Logger = opts.Logger
	})

	return &ChatMesh{opts: opts, engine: e}
}

// DefaultTools returns a registry pre-loaded with the built-in calculator and
// web search tools.
func DefaultTools() *tool.Registry {
	r := tool.NewRegistry()
	// Registration of built-ins cannot collide on a fresh registry.
	_ = r.Register("calc", tool.Calculator)
	_ = r.Register("search", tool.NewSearchTool().Search)
	return r
}

// Engine exposes the underlying engine, e.g. for mounting a server.Server.
func (c *ChatMesh) Engine() *engine.Engine {
	return c.engine
}

// Chat serves one exchange.
func (c *ChatMesh) Chat(ctx context.Context, req engine.Request) (engine.Response, error) {
	return c.engine.Chat(ctx, req)
}

// ClearSession removes all history for the id; idempotent on unknown ids.
func (c *ChatMesh) ClearSession(ctx context.Context, sessionID string) error {
	return c.engine.ClearSession(ctx, sessionID)
}
