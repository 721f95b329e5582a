package provider

import (
	"context"

	"github.com/hupe1980/chatmesh/core"
)

// EchoModelName identifies the offline fallback in audit records.
const EchoModelName = "echo"

// Echo is the deterministic offline fallback used when the default provider
// family has no live credential. It replies "AI:" + input, ignoring history
// content beyond locating the most recent human turn, which keeps the whole
// system functional offline and in tests.
type Echo struct{}

// NewEcho constructs the echo fallback.
func NewEcho() *Echo { return &Echo{} }

// Complete implements core.Provider.
func (e *Echo) Complete(_ context.Context, prompt core.Prompt) (string, error) {
	return "AI:" + prompt.LastHumanInput(), nil
}

// Info implements core.Provider.
func (e *Echo) Info() core.ProviderInfo {
	return core.ProviderInfo{Family: FamilyOpenAI, Model: EchoModelName}
}
