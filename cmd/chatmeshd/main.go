// Command chatmeshd runs the chat service: an HTTP front end over the chat
// engine with gate, session store, provider and tool wiring taken from the
// environment.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/hupe1980/chatmesh"
	"github.com/hupe1980/chatmesh/audit"
	"github.com/hupe1980/chatmesh/config"
	"github.com/hupe1980/chatmesh/core"
	"github.com/hupe1980/chatmesh/gate"
	"github.com/hupe1980/chatmesh/logging"
	"github.com/hupe1980/chatmesh/provider"
	"github.com/hupe1980/chatmesh/server"
	"github.com/hupe1980/chatmesh/session"
	sessionredis "github.com/hupe1980/chatmesh/session/redis"
)

func main() {
	// A missing .env file is not an error; the environment may be set
	// directly.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)

	if err := run(cfg, logger); err != nil {
		logger.Error("service exited", "error", err.Error())
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger logging.Logger) error {
	sessions, err := newSessionStore(cfg, logger)
	if err != nil {
		return err
	}

	auditLog, closeAudit, err := newAuditLog(cfg, logger)
	if err != nil {
		return err
	}
	defer closeAudit()

	providers := provider.NewFactory(func(o *provider.Options) {
		o.Family = cfg.ProviderFamily
		o.Credentials = provider.Credentials{
			OpenAIAPIKey:    cfg.OpenAIAPIKey,
			AnthropicAPIKey: cfg.AnthropicAPIKey,
			GeminiAPIKey:    cfg.GeminiAPIKey,
			OllamaHost:      cfg.OllamaHost,
		}
		o.Logger = logger
	})

	mesh := chatmesh.New(func(o *chatmesh.Options) {
		o.SessionStore = sessions
		o.Providers = providers
		o.AuditLog = auditLog
		o.EnvDefaults = core.GenerationConfig{
			ModelName:   cfg.ModelName,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
		}
		o.Logger = logger
	})

	g := gate.New(func(o *gate.Options) {
		o.Secret = cfg.APIKey
		o.Limit = cfg.RateLimitPerMinute
		o.Window = cfg.RateLimitWindow
		o.Logger = logger
	})

	srv := server.New(mesh.Engine(), func(o *server.Options) {
		o.Gate = g
		o.Logger = logger
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting chatmeshd",
		"provider", cfg.ProviderFamily,
		"backend", cfg.MemoryBackend,
		"port", cfg.Port,
	)

	err = srv.ListenAndServe(ctx, ":"+cfg.Port)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// newSessionStore selects the backend from configuration: the in-memory
// default, or Redis for durability across restarts.
func newSessionStore(cfg *config.Config, logger logging.Logger) (core.SessionStore, error) {
	switch cfg.MemoryBackend {
	case config.BackendRedis:
		store, err := sessionredis.NewFromURL(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		logger.Info("using redis session backend", "url", cfg.RedisURL)
		return store, nil
	default:
		// Anything else falls back to the volatile in-memory store.
		return session.NewInMemoryStore(), nil
	}
}

// newAuditLog opens the JSONL audit sink when a path is configured; otherwise
// the exchanges stay in memory.
func newAuditLog(cfg *config.Config, logger logging.Logger) (core.AuditLog, func(), error) {
	if cfg.AuditLogPath == "" {
		return audit.NewInMemoryLog(), func() {}, nil
	}
	f, err := os.OpenFile(cfg.AuditLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("writing audit records", "path", cfg.AuditLogPath)
	return audit.NewJSONLWriter(f), func() { _ = f.Close() }, nil
}
