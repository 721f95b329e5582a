package gate

import (
	"crypto/subtle"
	"sync"
	"time"

	"github.com/hupe1980/chatmesh/core"
	"github.com/hupe1980/chatmesh/logging"
)

// AnonymousKey is the rate-limit bucket key used when no credential is
// presented. All anonymous callers share one bucket; this is a deliberate
// simplification.
const AnonymousKey = "anonymous"

// Options configures a Gate.
type Options struct {
	// Secret is the single shared credential callers must present. An empty
	// secret makes Authenticate fail closed with a ConfigError.
	Secret string

	// Limit is the maximum number of admitted requests per window and key.
	Limit int

	// Window is the fixed counting window length.
	Window time.Duration

	// Clock supplies the current time; overridable in tests.
	Clock func() time.Time

	// Logger defaults to a NoOpLogger if nil.
	Logger logging.Logger
}

// bucket tracks admissions for one credential key within the current window.
type bucket struct {
	windowStart time.Time
	count       int
}

// Gate combines the credential check and the rate limiter. Both checks are
// pure with respect to session and provider state; the only mutation is the
// bucket map, guarded by a single mutex held for in-memory work only.
type Gate struct {
	opts    Options
	mu      sync.Mutex
	buckets map[string]*bucket
}

// New creates a Gate with the given options.
func New(optFns ...func(o *Options)) *Gate {
	opts := Options{
		Limit:  120,
		Window: time.Minute,
		Clock:  time.Now,
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	opts.Logger = logging.OrNoOp(opts.Logger)
	return &Gate{opts: opts, buckets: make(map[string]*bucket)}
}

// Admit runs both checks in order: authentication first, then the rate
// limiter. A caller can be authenticated yet rate-limited.
func (g *Gate) Admit(credential string) error {
	if err := g.Authenticate(credential); err != nil {
		return err
	}
	return g.Allow(credential)
}

// Authenticate compares the presented credential against the configured
// shared secret. With no secret configured it fails closed, signalling a
// configuration error distinct from an authentication failure.
func (g *Gate) Authenticate(credential string) error {
	if g.opts.Secret == "" {
		return core.NewConfigError("shared secret not configured")
	}
	if subtle.ConstantTimeCompare([]byte(credential), []byte(g.opts.Secret)) != 1 {
		g.opts.Logger.Warn("credential rejected")
		return core.ErrUnauthorized
	}
	return nil
}

// Allow applies fixed-window counting for the credential key. A missing
// bucket or an elapsed window starts a fresh window with count = 1; a full
// bucket rejects the triggering request so count never exceeds the limit.
func (g *Gate) Allow(credential string) error {
	key := credential
	if key == "" {
		key = AnonymousKey
	}
	now := g.opts.Clock()

	g.mu.Lock()
	defer g.mu.Unlock()

	b, ok := g.buckets[key]
	if !ok || now.Sub(b.windowStart) > g.opts.Window {
		g.buckets[key] = &bucket{windowStart: now, count: 1}
		return nil
	}
	if b.count >= g.opts.Limit {
		g.opts.Logger.Warn("rate limit exceeded", "window_start", b.windowStart)
		return core.ErrRateLimited
	}
	b.count++
	return nil
}
