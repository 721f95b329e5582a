// Package anthropic adapts the Anthropic Messages API to the generic
// core.Provider interface for plain, non-streaming text completion.
package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/hupe1980/chatmesh/core"
)

// Provider wraps the Anthropic Messages API bound to a resolved generation
// config.
type Provider struct {
	client *anthropic.Client
	cfg    core.GenerationConfig
}

// New creates a Provider using the official client with the given API key.
func New(apiKey string, cfg core.GenerationConfig) *Provider {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return NewFromClient(&client, cfg)
}

// NewFromClient creates a Provider from an existing client.
func NewFromClient(client *anthropic.Client, cfg core.GenerationConfig) *Provider {
	return &Provider{client: client, cfg: cfg}
}

// Complete implements core.Provider.
func (p *Provider) Complete(ctx context.Context, prompt core.Prompt) (string, error) {
	messages := make([]anthropic.MessageParam, 0, len(prompt.History)+1)
	for _, turn := range prompt.History {
		switch turn.Role {
		case core.RoleAssistant:
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(turn.Content)))
		default:
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(turn.Content)))
		}
	}
	messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(prompt.Input)))

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(p.cfg.ModelName),
		Messages:    messages,
		MaxTokens:   p.cfg.MaxTokens,
		Temperature: anthropic.Float(p.cfg.Temperature),
	}
	if prompt.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: prompt.System}}
	}

	resp, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic api error: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.AsText().Text)
		}
	}
	return text.String(), nil
}

// Info implements core.Provider.
func (p *Provider) Info() core.ProviderInfo {
	return core.ProviderInfo{Family: "anthropic", Model: p.cfg.ModelName}
}
