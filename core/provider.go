package core

import "context"

// Provider turns an assembled prompt into generated text. Implementations
// wrap a vendor SDK (or the offline echo fallback) bound to a resolved
// GenerationConfig; they return plain text with no structural wrapping.
type Provider interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)

	// Info returns metadata about the provider implementation.
	Info() ProviderInfo
}

// ProviderInfo describes a provider for audit records and logging.
type ProviderInfo struct {
	// Family is the configured provider family ("openai", "anthropic", ...).
	Family string `json:"family"`
	// Model is the concrete model identifier the adapter is bound to.
	Model string `json:"model"`
}

// Path renders the "which path served it" audit label for a provider.
func (i ProviderInfo) Path() string { return i.Family + ":" + i.Model }

// GenerationConfig is a fully resolved model configuration. Temperature is
// expected in [0,2] and MaxTokens must be positive; the transport edge
// validates caller-supplied overrides before they reach the core.
type GenerationConfig struct {
	ModelName   string
	Temperature float64
	MaxTokens   int64
}

// GenerationOverrides carries optional per-request configuration. Nil fields
// (or the empty model name) mean "no override" for that field.
type GenerationOverrides struct {
	ModelName   string
	Temperature *float64
	MaxTokens   *int64
}

// ResolveGenerationConfig merges the three configuration layers, highest
// priority first: explicit request override, then the service default, then
// the environment-supplied default. Each field resolves independently.
//
// Service-layer fields use the zero value to mean "unset": a service
// Temperature of exactly 0 falls through to the environment default. A
// deployment that needs an explicit temperature of 0 expresses it at the
// environment layer or per request, where the pointer form keeps 0 and
// "absent" distinct.
func ResolveGenerationConfig(override GenerationOverrides, service, env GenerationConfig) GenerationConfig {
	resolved := GenerationConfig{
		ModelName:   firstNonEmpty(override.ModelName, service.ModelName, env.ModelName),
		Temperature: service.Temperature,
		MaxTokens:   service.MaxTokens,
	}
	if resolved.Temperature == 0 && env.Temperature != 0 {
		resolved.Temperature = env.Temperature
	}
	if resolved.MaxTokens == 0 {
		resolved.MaxTokens = env.MaxTokens
	}
	if override.Temperature != nil {
		resolved.Temperature = *override.Temperature
	}
	if override.MaxTokens != nil {
		resolved.MaxTokens = *override.MaxTokens
	}
	return resolved
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
