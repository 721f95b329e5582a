package config

import (
	"os"
	"strconv"
	"time"
)

// Backend selectors for the session store.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config is the environment-supplied service configuration.
type Config struct {
	Port string

	// Provider selection and credentials.
	ProviderFamily  string
	OpenAIAPIKey    string
	AnthropicAPIKey string
	GeminiAPIKey    string
	OllamaHost      string

	// Environment-supplied generation defaults (the lowest config layer).
	ModelName   string
	Temperature float64
	MaxTokens   int64

	// Session store backend: "memory" or "redis".
	MemoryBackend string
	RedisURL      string

	// Shared secret for the credential check. Empty makes the gate fail
	// closed on every request.
	APIKey string

	// Fixed-window rate limit.
	RateLimitPerMinute int
	RateLimitWindow    time.Duration

	// AuditLogPath is an optional JSONL file for exchange records; empty
	// keeps the audit log in memory.
	AuditLogPath string
}

// Load reads all environment variables and builds the config.
func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8080"),

		ProviderFamily:  getEnv("LLM_PROVIDER", "openai"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		OllamaHost:      os.Getenv("OLLAMA_HOST"),

		ModelName:   getEnv("OPENAI_MODEL_NAME", "gpt-4o-mini"),
		Temperature: getFloatEnv("TEMPERATURE", 0.2),
		MaxTokens:   getIntEnv("MAX_TOKENS", 512),

		MemoryBackend: getEnv("MEMORY_BACKEND", BackendMemory),
		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379/0"),

		APIKey: os.Getenv("API_KEY"),

		RateLimitPerMinute: int(getIntEnv("RATE_LIMIT_PER_MINUTE", 120)),
		RateLimitWindow:    time.Minute,

		AuditLogPath: os.Getenv("AUDIT_LOG_PATH"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getFloatEnv(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func getIntEnv(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}
