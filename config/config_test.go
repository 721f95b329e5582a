package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearEnv blanks every variable Load reads so ambient CI settings cannot
// leak into the default assertions. Load treats empty as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "LLM_PROVIDER",
		"OPENAI_API_KEY", "ANTHROPIC_API_KEY", "GEMINI_API_KEY", "OLLAMA_HOST",
		"OPENAI_MODEL_NAME", "TEMPERATURE", "MAX_TOKENS",
		"MEMORY_BACKEND", "REDIS_URL",
		"API_KEY", "RATE_LIMIT_PER_MINUTE", "AUDIT_LOG_PATH",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "openai", cfg.ProviderFamily)
	assert.Equal(t, "gpt-4o-mini", cfg.ModelName)
	assert.Equal(t, 0.2, cfg.Temperature)
	assert.Equal(t, int64(512), cfg.MaxTokens)
	assert.Equal(t, BackendMemory, cfg.MemoryBackend)
	assert.Equal(t, 120, cfg.RateLimitPerMinute)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	t.Setenv("OPENAI_MODEL_NAME", "gpt-4o")
	t.Setenv("TEMPERATURE", "0.7")
	t.Setenv("MAX_TOKENS", "1024")
	t.Setenv("MEMORY_BACKEND", "redis")
	t.Setenv("REDIS_URL", "redis://cache:6379/1")
	t.Setenv("API_KEY", "s3cret")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "10")

	cfg := Load()

	assert.Equal(t, "anthropic", cfg.ProviderFamily)
	assert.Equal(t, "sk-ant-test", cfg.AnthropicAPIKey)
	assert.Equal(t, "gpt-4o", cfg.ModelName)
	assert.Equal(t, 0.7, cfg.Temperature)
	assert.Equal(t, int64(1024), cfg.MaxTokens)
	assert.Equal(t, BackendRedis, cfg.MemoryBackend)
	assert.Equal(t, "redis://cache:6379/1", cfg.RedisURL)
	assert.Equal(t, "s3cret", cfg.APIKey)
	assert.Equal(t, 10, cfg.RateLimitPerMinute)
}

func TestLoad_MalformedNumbersFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("TEMPERATURE", "warm")
	t.Setenv("MAX_TOKENS", "lots")

	cfg := Load()

	assert.Equal(t, 0.2, cfg.Temperature)
	assert.Equal(t, int64(512), cfg.MaxTokens)
}
