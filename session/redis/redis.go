// Package redis provides a durable core.SessionStore backed by a Redis list
// per session. Turns are stored as one JSON record per list element under a
// key derived from the session id.
//
// Appends use RPUSH, which is atomic on the Redis server: concurrent appends
// to the same session id interleave in arrival order but can never lose a
// write, unlike a read-modify-write of the whole list.
package redis

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"github.com/hupe1980/chatmesh/core"
	"github.com/hupe1980/chatmesh/logging"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultKeyPrefix prefixes every session key in Redis.
const DefaultKeyPrefix = "chat:sessions:"

// Client is the subset of redis command methods the store depends on.
// *redis.Client and the other go-redis universal clients satisfy it; tests
// supply a fake.
type Client interface {
	RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Options configures the Redis session store.
type Options struct {
	// KeyPrefix is prepended to the session id to form the Redis key.
	KeyPrefix string

	// Logger defaults to a NoOpLogger if nil.
	Logger logging.Logger
}

// Store is a durable SessionStore. Store failures propagate to the caller;
// there is no fallback to a transient backend.
type Store struct {
	client Client
	opts   Options
}

// New creates a Store on top of an existing Redis client.
func New(client Client, optFns ...func(o *Options)) *Store {
	opts := Options{
		KeyPrefix: DefaultKeyPrefix,
		Logger:    logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	opts.Logger = logging.OrNoOp(opts.Logger)
	return &Store{client: client, opts: opts}
}

// NewFromURL creates a Store by dialing the Redis URL (redis://host:port/db).
func NewFromURL(url string, optFns ...func(o *Options)) (*Store, error) {
	ropts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return New(redis.NewClient(ropts), optFns...), nil
}

func (s *Store) key(sessionID string) string { return s.opts.KeyPrefix + sessionID }

// Turns fetches and decodes the full history for the session. A missing key
// yields an empty slice.
func (s *Store) Turns(ctx context.Context, sessionID string) ([]core.Turn, error) {
	raw, err := s.client.LRange(ctx, s.key(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("session store: fetch %q: %w", sessionID, err)
	}
	turns := make([]core.Turn, 0, len(raw))
	for _, item := range raw {
		var turn core.Turn
		if err := json.UnmarshalFromString(item, &turn); err != nil {
			return nil, fmt.Errorf("session store: decode turn for %q: %w", sessionID, err)
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

// Append encodes the turn and pushes it onto the end of the session list,
// creating the key implicitly on first use.
func (s *Store) Append(ctx context.Context, sessionID string, turn core.Turn) error {
	encoded, err := json.MarshalToString(turn)
	if err != nil {
		return fmt.Errorf("session store: encode turn for %q: %w", sessionID, err)
	}
	if err := s.client.RPush(ctx, s.key(sessionID), encoded).Err(); err != nil {
		return fmt.Errorf("session store: append to %q: %w", sessionID, err)
	}
	return nil
}

// Clear deletes the session key; deleting a missing key is a no-op.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("session store: clear %q: %w", sessionID, err)
	}
	return nil
}
