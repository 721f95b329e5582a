package provider

import (
	"github.com/hupe1980/chatmesh/core"
	"github.com/hupe1980/chatmesh/logging"
	"github.com/hupe1980/chatmesh/provider/anthropic"
	"github.com/hupe1980/chatmesh/provider/gemini"
	"github.com/hupe1980/chatmesh/provider/ollama"
	"github.com/hupe1980/chatmesh/provider/openai"
)

// Known provider families. The family is selected once at startup from
// configuration; the factory maps it to a concrete adapter per request.
const (
	FamilyOpenAI    = "openai"
	FamilyAnthropic = "anthropic"
	FamilyGemini    = "gemini"
	FamilyOllama    = "ollama"
)

// Credentials carries the per-family secrets and endpoints the factory may
// need. Only the field matching the configured family is consulted.
type Credentials struct {
	OpenAIAPIKey    string
	AnthropicAPIKey string
	GeminiAPIKey    string
	// OllamaHost is the local inference endpoint; the ollama family needs a
	// host rather than a credential.
	OllamaHost string
}

// Options configures a Factory.
type Options struct {
	// Family selects the provider family for every request.
	Family string

	// Credentials are consulted when constructing live adapters.
	Credentials Credentials

	// Logger defaults to a NoOpLogger if nil.
	Logger logging.Logger
}

// Factory resolves generation configs to core.Provider instances for the
// configured family. Resolution is a pure construction step; the returned
// adapter is bound to the resolved model, temperature and token limit.
type Factory struct {
	opts Options
}

// NewFactory creates a Factory. The family string is validated lazily on
// Resolve so a misconfigured deployment surfaces as a ConfigError per
// request rather than a startup panic.
func NewFactory(optFns ...func(o *Options)) *Factory {
	opts := Options{
		Family: FamilyOpenAI,
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	opts.Logger = logging.OrNoOp(opts.Logger)
	return &Factory{opts: opts}
}

// Resolve returns the adapter for the configured family bound to cfg.
//
// The default family (openai) degrades gracefully: with no API key present
// it returns the deterministic echo fallback. Every other family requires
// its credential and fails with a ConfigError when it is absent — no silent
// fallback. An unrecognized family is a configuration error, not a runtime
// error.
func (f *Factory) Resolve(cfg core.GenerationConfig) (core.Provider, error) {
	switch f.opts.Family {
	case FamilyOpenAI:
		if f.opts.Credentials.OpenAIAPIKey == "" {
			f.opts.Logger.Debug("no openai credential configured, using echo fallback")
			return NewEcho(), nil
		}
		return openai.New(f.opts.Credentials.OpenAIAPIKey, cfg), nil
	case FamilyAnthropic:
		if f.opts.Credentials.AnthropicAPIKey == "" {
			return nil, core.NewConfigError("anthropic provider requires ANTHROPIC_API_KEY")
		}
		return anthropic.New(f.opts.Credentials.AnthropicAPIKey, cfg), nil
	case FamilyGemini:
		if f.opts.Credentials.GeminiAPIKey == "" {
			return nil, core.NewConfigError("gemini provider requires GEMINI_API_KEY")
		}
		return gemini.New(f.opts.Credentials.GeminiAPIKey, cfg)
	case FamilyOllama:
		return ollama.New(f.opts.Credentials.OllamaHost, cfg)
	default:
		return nil, core.NewConfigError("unsupported provider family: %s", f.opts.Family)
	}
}
