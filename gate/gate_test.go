package gate

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/chatmesh/core"
)

func TestGate_Authenticate(t *testing.T) {
	g := New(func(o *Options) { o.Secret = "s3cret" })

	assert.NoError(t, g.Authenticate("s3cret"))
	assert.ErrorIs(t, g.Authenticate("wrong"), core.ErrUnauthorized)
	assert.ErrorIs(t, g.Authenticate(""), core.ErrUnauthorized)
}

func TestGate_AuthenticateFailsClosedWithoutSecret(t *testing.T) {
	g := New()

	err := g.Authenticate("anything")
	require.Error(t, err)
	assert.True(t, core.IsConfigError(err))
	assert.False(t, errors.Is(err, core.ErrUnauthorized))
}

func TestGate_AllowFixedWindow(t *testing.T) {
	now := time.Unix(1000, 0)
	g := New(func(o *Options) {
		o.Secret = "s3cret"
		o.Limit = 3
		o.Window = time.Minute
		o.Clock = func() time.Time { return now }
	})

	for i := 0; i < 3; i++ {
		assert.NoError(t, g.Allow("key"), "request %d should be admitted", i+1)
	}
	assert.ErrorIs(t, g.Allow("key"), core.ErrRateLimited)

	// Another key owns its own bucket.
	assert.NoError(t, g.Allow("other"))

	// After the window elapses the count starts fresh.
	now = now.Add(time.Minute + time.Second)
	assert.NoError(t, g.Allow("key"))
}

func TestGate_AllowCollapsesAnonymousCallers(t *testing.T) {
	g := New(func(o *Options) {
		o.Limit = 1
		o.Window = time.Minute
	})

	assert.NoError(t, g.Allow(""))
	assert.ErrorIs(t, g.Allow(""), core.ErrRateLimited)
}

func TestGate_AdmitOrdering(t *testing.T) {
	g := New(func(o *Options) {
		o.Secret = "s3cret"
		o.Limit = 1
	})

	// An invalid credential is rejected before it consumes quota.
	assert.ErrorIs(t, g.Admit("wrong"), core.ErrUnauthorized)
	assert.NoError(t, g.Admit("s3cret"))
	assert.ErrorIs(t, g.Admit("s3cret"), core.ErrRateLimited)
}

func TestGate_AllowConcurrentIncrements(t *testing.T) {
	const limit = 50
	g := New(func(o *Options) {
		o.Limit = limit
		o.Window = time.Minute
	})

	var wg sync.WaitGroup
	admitted := make(chan struct{}, limit*2)
	for i := 0; i < limit*2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.Allow("key") == nil {
				admitted <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(admitted)

	assert.Equal(t, limit, len(admitted), "no increment may be lost or exceed the limit")
}
