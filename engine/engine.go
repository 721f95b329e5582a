package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/chatmesh/audit"
	"github.com/hupe1980/chatmesh/core"
	"github.com/hupe1980/chatmesh/logging"
	"github.com/hupe1980/chatmesh/provider"
	"github.com/hupe1980/chatmesh/session"
	"github.com/hupe1980/chatmesh/tool"
)

// DefaultSystemPrompt is the fixed preamble prepended to every provider
// prompt.
const DefaultSystemPrompt = "You are a helpful, concise assistant. " +
	"Use the provided conversation history to maintain context. " +
	"If the user asks factual questions, be accurate and cite assumptions briefly."

// DefaultProviderTimeout bounds each outbound provider call.
const DefaultProviderTimeout = 60 * time.Second

// ProviderResolver maps a resolved generation config to an invocable
// provider. provider.Factory is the production implementation.
type ProviderResolver interface {
	Resolve(cfg core.GenerationConfig) (core.Provider, error)
}

// Options configures an Engine using the functional options pattern. Any
// unset service is initialized with an in-memory implementation so the
// zero-configuration engine is fully functional offline.
type Options struct {
	// SessionStore persists per-session turn history.
	// Defaults to the in-memory implementation if not provided.
	SessionStore core.SessionStore

	// Providers resolves generation configs to provider adapters.
	// Defaults to a factory for the openai family without credentials,
	// i.e. the deterministic echo fallback.
	Providers ProviderResolver

	// Tools is the command registry consulted before the provider path.
	// Defaults to an empty registry.
	Tools *tool.Registry

	// AuditLog receives one record per completed exchange.
	// Defaults to the in-memory implementation if not provided.
	AuditLog core.AuditLog

	// Logger defaults to a NoOpLogger if nil.
	Logger logging.Logger

	// ServiceDefaults and EnvDefaults are the lower two generation config
	// layers; per-request overrides form the third and highest.
	ServiceDefaults core.GenerationConfig
	EnvDefaults     core.GenerationConfig

	// SystemPrompt is the fixed preamble for provider prompts.
	SystemPrompt string

	// ProviderTimeout bounds each provider invocation. Timed-out calls are
	// dispatch failures; they are never retried.
	ProviderTimeout time.Duration

	// NewSessionID generates ids for requests that supply none.
	// Defaults to random UUIDs.
	NewSessionID func() string
}

// Engine orchestrates one exchange per call. It owns no conversation state
// itself: history lives in the SessionStore and is never cached beyond one
// request.
type Engine struct {
	opts Options
	log  *logging.ExchangeLogger
}

// New creates an Engine with in-memory defaults.
func New(optFns ...func(o *Options)) *Engine {
	opts := Options{
		SessionStore:    session.NewInMemoryStore(),
		Providers:       provider.NewFactory(),
		Tools:           tool.NewRegistry(),
		AuditLog:        audit.NewInMemoryLog(),
		Logger:          logging.NoOpLogger{},
		SystemPrompt:    DefaultSystemPrompt,
		ProviderTimeout: DefaultProviderTimeout,
		NewSessionID:    uuid.NewString,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.NewSessionID == nil {
		opts.NewSessionID = uuid.NewString
	}
	if opts.ProviderTimeout <= 0 {
		opts.ProviderTimeout = DefaultProviderTimeout
	}
	opts.Logger = logging.OrNoOp(opts.Logger)
	return &Engine{opts: opts, log: logging.NewExchangeLogger(opts.Logger)}
}

// Request is one inbound exchange.
type Request struct {
	// Message is the raw user utterance.
	Message string
	// SessionID ties the exchange to a conversation; empty means "start a
	// fresh session".
	SessionID string
	// Overrides carries optional per-request generation settings.
	Overrides core.GenerationOverrides
}

// Response is the reply text tied to its session.
type Response struct {
	Reply     string
	SessionID string
}

// Chat runs one exchange end to end: tool dispatch or provider invocation,
// then persistence of both turns and the audit record.
//
// Tool-path failures come back as normal replies (the tool "succeeds" with
// an error-describing string). Provider-path failures propagate as errors
// and leave no partial turns behind.
func (e *Engine) Chat(ctx context.Context, req Request) (Response, error) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = e.opts.NewSessionID()
	}
	start := time.Now()

	if reply, name, ok := e.opts.Tools.Dispatch(req.Message); ok {
		if err := e.persistExchange(ctx, sessionID, req.Message, reply); err != nil {
			return Response{}, err
		}
		path := "tool:" + name
		e.writeAudit(ctx, sessionID, req.Message, reply, path)
		e.log.LogToolCall(name, time.Since(start))
		e.log.LogExchange(sessionID, path, time.Since(start))
		return Response{Reply: reply, SessionID: sessionID}, nil
	}

	history, err := e.opts.SessionStore.Turns(ctx, sessionID)
	if err != nil {
		return Response{}, err
	}

	cfg := core.ResolveGenerationConfig(req.Overrides, e.opts.ServiceDefaults, e.opts.EnvDefaults)
	prov, err := e.opts.Providers.Resolve(cfg)
	if err != nil {
		return Response{}, err
	}

	callCtx, cancel := context.WithTimeout(ctx, e.opts.ProviderTimeout)
	defer cancel()

	callStart := time.Now()
	reply, err := prov.Complete(callCtx, core.Prompt{
		System:  e.opts.SystemPrompt,
		History: history,
		Input:   req.Message,
	})
	info := prov.Info()
	e.log.LogProviderCall(info.Family, info.Model, time.Since(callStart), err)
	if err != nil {
		// No turns are persisted for a failed dispatch.
		return Response{}, fmt.Errorf("provider dispatch: %w", err)
	}

	if err := e.persistExchange(ctx, sessionID, req.Message, reply); err != nil {
		return Response{}, err
	}
	e.writeAudit(ctx, sessionID, req.Message, reply, info.Path())
	e.log.LogExchange(sessionID, info.Path(), time.Since(start))

	return Response{Reply: reply, SessionID: sessionID}, nil
}

// ClearSession removes all history for the id; idempotent on unknown ids.
func (e *Engine) ClearSession(ctx context.Context, sessionID string) error {
	return e.opts.SessionStore.Clear(ctx, sessionID)
}

// persistExchange appends the human turn, then the reply turn. The two
// appends are not atomic; an interleaving exchange on the same session is an
// accepted limitation.
func (e *Engine) persistExchange(ctx context.Context, sessionID, input, reply string) error {
	if err := e.opts.SessionStore.Append(ctx, sessionID, core.HumanTurn(input)); err != nil {
		return err
	}
	if err := e.opts.SessionStore.Append(ctx, sessionID, core.AssistantTurn(reply)); err != nil {
		return err
	}
	return nil
}

// writeAudit records the completed exchange. The audit log is an operator
// sink; a write failure must not fail an already-served request.
func (e *Engine) writeAudit(ctx context.Context, sessionID, input, output, path string) {
	record := core.AuditRecord{
		Time:      time.Now(),
		SessionID: sessionID,
		Input:     input,
		Output:    output,
		Path:      path,
	}
	if err := e.opts.AuditLog.Write(ctx, record); err != nil {
		e.opts.Logger.Warn("audit write failed", "session_id", sessionID, "error", err.Error())
	}
}
