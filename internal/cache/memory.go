package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache implements in-memory caching of prime lists
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves the primes cached for a limit
func (c *MemoryCache) Get(limit int) ([]int, bool) {
	if val, found := c.cache.Get(Key(limit)); found {
		return val.([]int), true
	}
	return nil, false
}

// Set stores the primes computed for a limit
func (c *MemoryCache) Set(limit int, primes []int) {
	c.cache.SetDefault(Key(limit), primes)
}

// Clear removes all values from the cache
func (c *MemoryCache) Clear() {
	c.cache.Flush()
}
