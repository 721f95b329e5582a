package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/chatmesh/config"
	"github.com/hupe1980/chatmesh/logging"
	"github.com/hupe1980/chatmesh/session"
	sessionredis "github.com/hupe1980/chatmesh/session/redis"
)

func TestNewSessionStore_DefaultsToInMemory(t *testing.T) {
	store, err := newSessionStore(&config.Config{MemoryBackend: config.BackendMemory}, logging.NoOpLogger{})
	require.NoError(t, err)
	require.NotNil(t, store, "the wiring layer must never hand out a nil store")
	assert.IsType(t, &session.InMemoryStore{}, store)
}

func TestNewSessionStore_SelectsRedis(t *testing.T) {
	store, err := newSessionStore(&config.Config{
		MemoryBackend: config.BackendRedis,
		RedisURL:      "redis://localhost:6379/0",
	}, logging.NoOpLogger{})
	require.NoError(t, err)
	assert.IsType(t, &sessionredis.Store{}, store)
}

func TestNewSessionStore_RejectsMalformedRedisURL(t *testing.T) {
	_, err := newSessionStore(&config.Config{
		MemoryBackend: config.BackendRedis,
		RedisURL:      "://not-a-url",
	}, logging.NoOpLogger{})
	assert.Error(t, err)
}
