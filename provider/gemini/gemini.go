// Package gemini adapts the Google Gemini API to the generic core.Provider
// interface for plain, non-streaming text completion.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/hupe1980/chatmesh/core"
)

// Provider wraps the Gemini API bound to a resolved generation config.
type Provider struct {
	client *genai.Client
	cfg    core.GenerationConfig
}

// New creates a Provider by constructing a Gemini API client with the given
// API key.
func New(apiKey string, cfg core.GenerationConfig) (*Provider, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, core.NewConfigError("gemini client: %v", err)
	}
	return NewFromClient(client, cfg), nil
}

// NewFromClient creates a Provider from an existing client.
func NewFromClient(client *genai.Client, cfg core.GenerationConfig) *Provider {
	return &Provider{client: client, cfg: cfg}
}

// Complete implements core.Provider.
func (p *Provider) Complete(ctx context.Context, prompt core.Prompt) (string, error) {
	contents := make([]*genai.Content, 0, len(prompt.History)+1)
	for _, turn := range prompt.History {
		var role genai.Role = genai.RoleUser
		if turn.Role == core.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Content, role))
	}
	contents = append(contents, genai.NewContentFromText(prompt.Input, genai.RoleUser))

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(p.cfg.Temperature)),
		MaxOutputTokens: int32(p.cfg.MaxTokens),
	}
	if prompt.System != "" {
		config.SystemInstruction = genai.NewContentFromText(prompt.System, genai.RoleUser)
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.cfg.ModelName, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini api error: %w", err)
	}
	return resp.Text(), nil
}

// Info implements core.Provider.
func (p *Provider) Info() core.ProviderInfo {
	return core.ProviderInfo{Family: "gemini", Model: p.cfg.ModelName}
}
