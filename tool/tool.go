package tool

import (
	"fmt"
	"strings"
	"sync"
)

// CommandMarker designates a tool command: a trimmed message starting with
// the marker immediately followed by a tool name.
const CommandMarker = "/"

// Handler is a pure tool function: it receives the argument string after the
// command and returns the reply text. Handlers never return an error value;
// failures are reported as error-describing reply strings.
type Handler func(arg string) string

// Registry holds named tool handlers. Tools are registered before the
// service begins serving; at request time the registry is a read-only
// lookup. Names are unique and matched exactly, case-sensitively.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Handler
}

// NewRegistry constructs an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Handler)}
}

// Register adds a handler under the given name. Registering a duplicate or
// empty name is an error.
func (r *Registry) Register(name string, h Handler) error {
	if name == "" {
		return fmt.Errorf("tool name must not be empty")
	}
	if h == nil {
		return fmt.Errorf("tool %q: handler must not be nil", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("tool %q already registered", name)
	}
	r.tools[name] = h
	return nil
}

// Get looks up a handler by exact name.
func (r *Registry) Get(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.tools[name]
	return h, ok
}

// Names returns the registered tool names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	return names
}

// Dispatch recognizes the command convention and invokes the matching tool.
// If the trimmed message starts with the marker followed immediately by a
// registered name, the remainder after the first space becomes the argument
// and the tool's return value is the reply. The second return value names
// the tool; ok reports whether a tool served the message.
func (r *Registry) Dispatch(message string) (reply, name string, ok bool) {
	trimmed := strings.TrimSpace(message)
	if !strings.HasPrefix(trimmed, CommandMarker) {
		return "", "", false
	}
	command, arg, _ := strings.Cut(trimmed, " ")
	name = strings.TrimPrefix(command, CommandMarker)
	if name == "" {
		return "", "", false
	}
	h, found := r.Get(name)
	if !found {
		return "", "", false
	}
	return h(arg), name, true
}
