// Package openai adapts the OpenAI Chat Completions API to the generic
// core.Provider interface for plain, non-streaming text completion.
package openai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/hupe1980/chatmesh/core"
)

// Provider wraps the OpenAI Chat Completions API bound to a resolved
// generation config.
type Provider struct {
	client *openai.Client
	cfg    core.GenerationConfig
}

// New creates a Provider using the official client with the given API key.
func New(apiKey string, cfg core.GenerationConfig) *Provider {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return NewFromClient(&client, cfg)
}

// NewFromClient creates a Provider from an existing client.
func NewFromClient(client *openai.Client, cfg core.GenerationConfig) *Provider {
	return &Provider{client: client, cfg: cfg}
}

// Complete implements core.Provider.
func (p *Provider) Complete(ctx context.Context, prompt core.Prompt) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(prompt.History)+2)
	if prompt.System != "" {
		messages = append(messages, openai.SystemMessage(prompt.System))
	}
	for _, turn := range prompt.History {
		switch turn.Role {
		case core.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(turn.Content))
		default:
			messages = append(messages, openai.UserMessage(turn.Content))
		}
	}
	messages = append(messages, openai.UserMessage(prompt.Input))

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages:            messages,
		Model:               p.cfg.ModelName,
		Temperature:         openai.Float(p.cfg.Temperature),
		MaxCompletionTokens: openai.Int(p.cfg.MaxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

// Info implements core.Provider.
func (p *Provider) Info() core.ProviderInfo {
	return core.ProviderInfo{Family: "openai", Model: p.cfg.ModelName}
}
