// README: Injectable access-token cache with get-or-refresh semantics.
package payments

import (
	"context"
	"sync"
	"time"
)

// RefreshFunc fetches a fresh token and reports the provider's validity window.
type RefreshFunc func(ctx context.Context) (token string, expiresIn time.Duration, err error)

// refreshMargin renews tokens slightly before the provider-reported expiry so
// an in-flight request never carries a token that lapses mid-call.
const refreshMargin = 60 * time.Second

// TokenCache caches a short-lived API token and refreshes it on expiry. It is
// owned and injected by the client that needs it; there is no process-wide
// token state.
type TokenCache struct {
	mu        sync.Mutex
	refresh   RefreshFunc
	token     string
	expiresAt time.Time
	now       func() time.Time
}

func NewTokenCache(refresh RefreshFunc) *TokenCache {
	return &TokenCache{refresh: refresh, now: time.Now}
}

// Get returns the cached token, refreshing it when missing or expired.
func (c *TokenCache) Get(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.expiresAt) {
		return c.token, nil
	}

	token, expiresIn, err := c.refresh(ctx)
	if err != nil {
		return "", err
	}
	c.token = token
	c.expiresAt = c.now().Add(expiresIn - refreshMargin)
	return token, nil
}

// Invalidate drops the cached token so the next Get refreshes, e.g. after the
// provider rejects it.
func (c *TokenCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}
