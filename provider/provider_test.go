package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/chatmesh/core"
)

// Interface compliance (compile-time assertion)
var _ core.Provider = (*Echo)(nil)

func testConfig() core.GenerationConfig {
	return core.GenerationConfig{ModelName: "test-model", Temperature: 0.2, MaxTokens: 64}
}

func TestFactory_DefaultFamilyFallsBackToEcho(t *testing.T) {
	f := NewFactory() // openai family, no credential

	p, err := f.Resolve(testConfig())
	require.NoError(t, err)
	assert.IsType(t, &Echo{}, p)
}

func TestFactory_OpenAIWithCredential(t *testing.T) {
	f := NewFactory(func(o *Options) {
		o.Credentials.OpenAIAPIKey = "sk-test"
	})

	p, err := f.Resolve(testConfig())
	require.NoError(t, err)
	assert.Equal(t, core.ProviderInfo{Family: "openai", Model: "test-model"}, p.Info())
}

func TestFactory_NonDefaultFamiliesRequireCredentials(t *testing.T) {
	for _, family := range []string{FamilyAnthropic, FamilyGemini} {
		f := NewFactory(func(o *Options) { o.Family = family })

		_, err := f.Resolve(testConfig())
		require.Error(t, err, "family %s must not fall back silently", family)
		assert.True(t, core.IsConfigError(err))
	}
}

func TestFactory_AnthropicWithCredential(t *testing.T) {
	f := NewFactory(func(o *Options) {
		o.Family = FamilyAnthropic
		o.Credentials.AnthropicAPIKey = "sk-ant-test"
	})

	p, err := f.Resolve(testConfig())
	require.NoError(t, err)
	assert.Equal(t, core.ProviderInfo{Family: "anthropic", Model: "test-model"}, p.Info())
}

func TestFactory_OllamaWithHost(t *testing.T) {
	f := NewFactory(func(o *Options) {
		o.Family = FamilyOllama
		o.Credentials.OllamaHost = "http://localhost:11434"
	})

	p, err := f.Resolve(testConfig())
	require.NoError(t, err)
	assert.Equal(t, core.ProviderInfo{Family: "ollama", Model: "test-model"}, p.Info())
}

func TestFactory_UnknownFamily(t *testing.T) {
	f := NewFactory(func(o *Options) { o.Family = "mistral" })

	_, err := f.Resolve(testConfig())
	require.Error(t, err)
	assert.True(t, core.IsConfigError(err))
	assert.ErrorContains(t, err, "mistral")
}

func TestEcho_Deterministic(t *testing.T) {
	ctx := context.Background()
	echo := NewEcho()

	reply, err := echo.Complete(ctx, core.Prompt{Input: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "AI:hello", reply)

	// History content is ignored beyond locating the latest human turn.
	reply, err = echo.Complete(ctx, core.Prompt{
		History: []core.Turn{core.HumanTurn("earlier"), core.AssistantTurn("AI:earlier")},
		Input:   "now",
	})
	require.NoError(t, err)
	assert.Equal(t, "AI:now", reply)

	reply, err = echo.Complete(ctx, core.Prompt{
		History: []core.Turn{core.HumanTurn("only history")},
	})
	require.NoError(t, err)
	assert.Equal(t, "AI:only history", reply)
}
