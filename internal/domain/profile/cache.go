package profile

import (
	"context"
	"strconv"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/pitchside/careersim/internal/domain/model"
	"github.com/pitchside/careersim/pkg/metrics"
)

// Default cache configuration constants.
const (
	defaultTTL             = 5 * time.Minute
	defaultCleanupInterval = 10 * time.Minute
)

// Snapshot supplies the current population and its version. The version
// must change whenever the population materially changes; the cache keys
// entries by it so a bumped version reads through to a fresh profile.
type Snapshot interface {
	// Players returns the population. When excludeFreeAgents is true the
	// No Club pool is filtered out.
	Players(ctx context.Context, excludeFreeAgents bool) []*model.PlayerRecord

	// Version returns a monotonically increasing snapshot version.
	Version(ctx context.Context) uint64
}

// CacheOption applies a configuration option to the Cache.
type CacheOption func(*Cache)

// WithTTL bounds how long a computed profile is served before it is
// recomputed even without an explicit invalidation.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// Cache is a read-through, TTL-bounded holder of computed profiles keyed by
// snapshot version. Reads are safe for concurrent use; rebuilds swap a
// freshly computed Profile rather than mutating one in place.
type Cache struct {
	mu       sync.Mutex
	snapshot Snapshot
	entries  *gocache.Cache
	ttl      time.Duration
}

// NewCache creates a profile cache over the given snapshot source.
func NewCache(snapshot Snapshot, opts ...CacheOption) *Cache {
	c := &Cache{
		snapshot: snapshot,
		ttl:      defaultTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.entries = gocache.New(c.ttl, defaultCleanupInterval)
	return c
}

// Get returns the profile for the current snapshot version, computing and
// caching it on a miss.
func (c *Cache) Get(ctx context.Context) Profile {
	key := strconv.FormatUint(c.snapshot.Version(ctx), 10)
	if cached, ok := c.entries.Get(key); ok {
		if p, ok := cached.(Profile); ok {
			return p
		}
	}

	// Serialize rebuilds; concurrent readers keep hitting the old entry
	// until the new one is stored.
	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.entries.Get(key); ok {
		if p, ok := cached.(Profile); ok {
			return p
		}
	}

	start := time.Now()
	p := Compute(ctx, c.snapshot.Players(ctx, true))
	c.entries.Set(key, p, c.ttl)
	metrics.RecordProfileRebuild(float64(time.Since(start).Milliseconds()))
	return p
}

// Invalidate drops every cached profile. The next Get reads through.
func (c *Cache) Invalidate() {
	c.entries.Flush()
}

// Refresh recomputes the profile for the current snapshot version and
// returns it.
func (c *Cache) Refresh(ctx context.Context) Profile {
	c.Invalidate()
	return c.Get(ctx)
}
