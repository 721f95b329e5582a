// Package ollama adapts a local Ollama instance to the generic
// core.Provider interface. Ollama is the one family that needs a host
// instead of a credential; an unreachable host surfaces as a dispatch
// failure at call time rather than a configuration error.
package ollama

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"

	"github.com/hupe1980/chatmesh/core"
)

// Provider wraps the Ollama chat API bound to a resolved generation config.
type Provider struct {
	client *api.Client
	cfg    core.GenerationConfig
}

// New creates a Provider for the given host URL. An empty host falls back
// to the OLLAMA_HOST environment convention of the official client.
func New(host string, cfg core.GenerationConfig) (*Provider, error) {
	var client *api.Client
	if host != "" {
		u, err := url.Parse(host)
		if err != nil {
			return nil, core.NewConfigError("invalid ollama host %q: %v", host, err)
		}
		client = api.NewClient(u, http.DefaultClient)
	} else {
		c, err := api.ClientFromEnvironment()
		if err != nil {
			return nil, core.NewConfigError("ollama client: %v", err)
		}
		client = c
	}
	return NewFromClient(client, cfg), nil
}

// NewFromClient creates a Provider from an existing client.
func NewFromClient(client *api.Client, cfg core.GenerationConfig) *Provider {
	return &Provider{client: client, cfg: cfg}
}

// Complete implements core.Provider.
func (p *Provider) Complete(ctx context.Context, prompt core.Prompt) (string, error) {
	messages := make([]api.Message, 0, len(prompt.History)+2)
	if prompt.System != "" {
		messages = append(messages, api.Message{Role: "system", Content: prompt.System})
	}
	for _, turn := range prompt.History {
		role := "user"
		if turn.Role == core.RoleAssistant {
			role = "assistant"
		}
		messages = append(messages, api.Message{Role: role, Content: turn.Content})
	}
	messages = append(messages, api.Message{Role: "user", Content: prompt.Input})

	stream := false
	req := &api.ChatRequest{
		Model:    p.cfg.ModelName,
		Messages: messages,
		Stream:   &stream,
		Options: map[string]any{
			"temperature": p.cfg.Temperature,
			"num_predict": int(p.cfg.MaxTokens),
		},
	}

	var reply strings.Builder
	err := p.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		reply.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama api error: %w", err)
	}
	return reply.String(), nil
}

// Info implements core.Provider.
func (p *Provider) Info() core.ProviderInfo {
	return core.ProviderInfo{Family: "ollama", Model: p.cfg.ModelName}
}
