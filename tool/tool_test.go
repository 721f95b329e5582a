package tool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	require.NoError(t, r.Register("echo", func(arg string) string { return "echo:" + arg }))
	require.NoError(t, r.Register("calc", Calculator))
	return r
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("calc", Calculator))

	assert.Error(t, r.Register("calc", Calculator), "duplicate names are rejected")
	assert.Error(t, r.Register("", Calculator))
	assert.Error(t, r.Register("nil", nil))

	_, ok := r.Get("calc")
	assert.True(t, ok)
	_, ok = r.Get("Calc")
	assert.False(t, ok, "lookup is case-sensitive")

	assert.ElementsMatch(t, []string{"calc"}, r.Names())
}

func TestRegistry_Dispatch(t *testing.T) {
	r := newTestRegistry(t)

	reply, name, ok := r.Dispatch("/echo hello world")
	require.True(t, ok)
	assert.Equal(t, "echo", name)
	assert.Equal(t, "echo:hello world", reply)

	reply, name, ok = r.Dispatch("/calc 1+2*3")
	require.True(t, ok)
	assert.Equal(t, "calc", name)
	assert.Equal(t, "7", reply)

	// Surrounding whitespace is trimmed before matching.
	_, _, ok = r.Dispatch("  /echo hi  ")
	assert.True(t, ok)
}

func TestRegistry_DispatchNonCommands(t *testing.T) {
	r := newTestRegistry(t)

	for _, message := range []string{
		"plain conversation",
		"/unknown arg",
		"/",
		"/ echo spaced name",
		"mentioning /echo mid-sentence",
		"",
	} {
		_, _, ok := r.Dispatch(message)
		assert.False(t, ok, "message %q must not dispatch", message)
	}
}

func TestRegistry_DispatchWithoutArgument(t *testing.T) {
	r := newTestRegistry(t)

	reply, _, ok := r.Dispatch("/echo")
	require.True(t, ok)
	assert.Equal(t, "echo:", reply)
}
