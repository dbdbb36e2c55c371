package describer

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// Cached remembers successful descriptions of its upstream for a while.
// Failures are not remembered.
type Cached struct {
	upstream Describer
	cache    *ttlcache.Cache[string, string]
}

// NewCached wraps upstream with a cache whose entries expire after expiration.
// Call [Cached.Close] to stop the background cleanup.
func NewCached(upstream Describer, expiration time.Duration) *Cached {
	cache := ttlcache.New(
		ttlcache.WithDisableTouchOnHit[string, string](),
		ttlcache.WithTTL[string, string](expiration),
	)

	go cache.Start()

	return &Cached{upstream: upstream, cache: cache}
}

// Describe returns the cached description of expr, or asks the upstream.
func (c *Cached) Describe(expr string) (string, error) {
	if item := c.cache.Get(expr); item != nil {
		return item.Value(), nil
	}

	desc, err := c.upstream.Describe(expr)
	if err != nil {
		return "", err
	}

	c.cache.Set(expr, desc, ttlcache.DefaultTTL)
	return desc, nil
}

// Len gives the number of cached descriptions.
func (c *Cached) Len() int {
	return c.cache.Len()
}

// Close stops the background cleanup of expired entries.
func (c *Cached) Close() {
	c.cache.Stop()
}
