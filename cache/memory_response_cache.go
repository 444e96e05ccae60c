package cache

import (
	"sync"
	"time"

	"dp-server/models"
)

// entry is a cached payload with its expiration.
type entry struct {
	payload   []models.DatePackage
	expiresAt time.Time
}

// MemoryResponseCache is a mutex-guarded in-process ResponseCache with lazy
// expiry: expired entries read as misses and are replaced on the next Put for
// the same key. No background sweep; the cache is a request-scoped
// optimization, not a store.
type MemoryResponseCache struct {
	mu      sync.RWMutex
	entries map[string]entry

	// now is swappable so tests can control expiry.
	now func() time.Time
}

// NewMemoryResponseCache creates an empty in-memory cache.
func NewMemoryResponseCache() *MemoryResponseCache {
	return &MemoryResponseCache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (c *MemoryResponseCache) Get(key string) ([]models.DatePackage, bool) {
	c.mu.RLock()
	e, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}
	return e.payload, true
}

func (c *MemoryResponseCache) Put(key string, payload []models.DatePackage, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{
		payload:   payload,
		expiresAt: c.now().Add(ttl),
	}
}
