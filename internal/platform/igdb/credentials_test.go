package igdb

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamelib/internal/metrics"
)

type fakeTokenProvider struct {
	mu        sync.Mutex
	exchanges int32
	cred      Credential
	err       error
}

func (p *fakeTokenProvider) Exchange(ctx context.Context) (Credential, error) {
	atomic.AddInt32(&p.exchanges, 1)
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return Credential{}, p.err
	}
	return p.cred, nil
}

func TestCredentialCache_Token(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("refreshes on first use", func(t *testing.T) {
		provider := &fakeTokenProvider{cred: Credential{Token: "tok-1", Expiry: base.Add(time.Hour)}}
		cache := NewCredentialCache(provider, metrics.Nop{})
		cache.now = func() time.Time { return base }

		token, err := cache.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "tok-1", token)
		assert.Equal(t, int32(1), atomic.LoadInt32(&provider.exchanges))
	})

	t.Run("reuses cached token before expiry", func(t *testing.T) {
		provider := &fakeTokenProvider{cred: Credential{Token: "tok-1", Expiry: base.Add(time.Hour)}}
		cache := NewCredentialCache(provider, metrics.Nop{})
		cache.now = func() time.Time { return base }

		_, err := cache.Token(context.Background())
		require.NoError(t, err)

		token, err := cache.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "tok-1", token)
		assert.Equal(t, int32(1), atomic.LoadInt32(&provider.exchanges))
	})

	t.Run("refreshes inside the safety margin", func(t *testing.T) {
		// The token is still valid upstream for 30 more seconds, but
		// that is within the 60 second margin.
		provider := &fakeTokenProvider{cred: Credential{Token: "tok-1", Expiry: base.Add(30 * time.Second)}}
		cache := NewCredentialCache(provider, metrics.Nop{})
		cache.now = func() time.Time { return base }

		_, err := cache.Token(context.Background())
		require.NoError(t, err)

		provider.mu.Lock()
		provider.cred = Credential{Token: "tok-2", Expiry: base.Add(time.Hour)}
		provider.mu.Unlock()

		token, err := cache.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "tok-2", token)
		assert.Equal(t, int32(2), atomic.LoadInt32(&provider.exchanges))
	})

	t.Run("invalidate forces refresh", func(t *testing.T) {
		provider := &fakeTokenProvider{cred: Credential{Token: "tok-1", Expiry: base.Add(time.Hour)}}
		cache := NewCredentialCache(provider, metrics.Nop{})
		cache.now = func() time.Time { return base }

		_, err := cache.Token(context.Background())
		require.NoError(t, err)

		cache.Invalidate()

		provider.mu.Lock()
		provider.cred = Credential{Token: "tok-2", Expiry: base.Add(time.Hour)}
		provider.mu.Unlock()

		token, err := cache.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "tok-2", token)
	})

	t.Run("exchange failure surfaces", func(t *testing.T) {
		exchangeErr := &CredentialError{Cause: errors.New("boom")}
		provider := &fakeTokenProvider{err: exchangeErr}
		cache := NewCredentialCache(provider, metrics.Nop{})

		_, err := cache.Token(context.Background())
		var credErr *CredentialError
		require.ErrorAs(t, err, &credErr)
	})
}

func TestCredentialCache_ConcurrentReaders(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	provider := &fakeTokenProvider{cred: Credential{Token: "tok-1", Expiry: base.Add(time.Hour)}}
	cache := NewCredentialCache(provider, metrics.Nop{})
	cache.now = func() time.Time { return base }

	const callers = 32
	var wg sync.WaitGroup
	tokens := make([]string, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens[i], errs[i] = cache.Token(context.Background())
		}(i)
	}
	wg.Wait()

	// Concurrent callers may each refresh, but every caller must get a
	// valid token and never a stale/mismatched one.
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "tok-1", tokens[i])
	}
}
