package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveGenerationConfig_Precedence(t *testing.T) {
	env := GenerationConfig{ModelName: "env-model", Temperature: 0.2, MaxTokens: 512}
	service := GenerationConfig{ModelName: "svc-model", Temperature: 0.5, MaxTokens: 1024}

	temp := 1.3
	maxTokens := int64(64)

	// Every field overridden by the request.
	got := ResolveGenerationConfig(GenerationOverrides{
		ModelName:   "req-model",
		Temperature: &temp,
		MaxTokens:   &maxTokens,
	}, service, env)
	assert.Equal(t, GenerationConfig{ModelName: "req-model", Temperature: 1.3, MaxTokens: 64}, got)

	// No overrides: service defaults win over env defaults.
	got = ResolveGenerationConfig(GenerationOverrides{}, service, env)
	assert.Equal(t, service, got)

	// Fields resolve independently: only the model is overridden.
	got = ResolveGenerationConfig(GenerationOverrides{ModelName: "req-model"}, service, env)
	assert.Equal(t, GenerationConfig{ModelName: "req-model", Temperature: 0.5, MaxTokens: 1024}, got)

	// Unset service fields fall through to env defaults.
	got = ResolveGenerationConfig(GenerationOverrides{}, GenerationConfig{}, env)
	assert.Equal(t, env, got)
}

func TestResolveGenerationConfig_ZeroServiceTemperatureMeansUnset(t *testing.T) {
	env := GenerationConfig{ModelName: "env-model", Temperature: 0.2, MaxTokens: 512}
	service := GenerationConfig{ModelName: "svc-model", Temperature: 0, MaxTokens: 1024}

	// A service temperature of exactly 0 reads as unset and yields the env
	// default; an explicit 0 is expressed per request instead.
	got := ResolveGenerationConfig(GenerationOverrides{}, service, env)
	assert.Equal(t, 0.2, got.Temperature)

	zero := 0.0
	got = ResolveGenerationConfig(GenerationOverrides{Temperature: &zero}, service, env)
	assert.Equal(t, 0.0, got.Temperature, "the request-level pointer form keeps 0 and absent distinct")
}

func TestPrompt_LastHumanInput(t *testing.T) {
	p := Prompt{Input: "now"}
	assert.Equal(t, "now", p.LastHumanInput())

	p = Prompt{History: []Turn{
		HumanTurn("first"),
		AssistantTurn("reply"),
		HumanTurn("second"),
		AssistantTurn("reply two"),
	}}
	assert.Equal(t, "second", p.LastHumanInput())

	assert.Equal(t, "", Prompt{}.LastHumanInput())
}

func TestConfigError(t *testing.T) {
	err := NewConfigError("unsupported provider family: %s", "mistral")
	assert.EqualError(t, err, "configuration error: unsupported provider family: mistral")
	assert.True(t, IsConfigError(err))
	assert.False(t, IsConfigError(ErrUnauthorized))
}
