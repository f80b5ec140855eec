package application

import (
	"sync"
	"time"
)

// contentEntry is one cached CMS response.
type contentEntry struct {
	value     interface{}
	timestamp time.Time
}

// ContentCache is a simple in-memory TTL cache for CMS responses (gallery
// collections, site settings). It exists to keep page loads off the CMS, not
// for correctness: every entry can be dropped at any time and the caller
// refetches.
type ContentCache struct {
	cache map[string]*contentEntry
	mu    sync.RWMutex
	ttl   time.Duration
}

// NewContentCache creates a cache whose entries expire after ttl.
func NewContentCache(ttl time.Duration) *ContentCache {
	c := &ContentCache{
		cache: make(map[string]*contentEntry),
		ttl:   ttl,
	}

	go c.cleanupLoop()

	return c
}

// Get returns the cached value for key if present and not expired.
func (c *ContentCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.cache[key]
	if !exists {
		return nil, false
	}
	if time.Since(entry.timestamp) > c.ttl {
		return nil, false
	}
	return entry.value, true
}

// Set stores a value under key.
func (c *ContentCache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache[key] = &contentEntry{
		value:     value,
		timestamp: time.Now(),
	}
}

// Invalidate drops a single key.
func (c *ContentCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.cache, key)
}

// cleanupLoop drops expired entries periodically.
func (c *ContentCache) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanup()
	}
}

func (c *ContentCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, entry := range c.cache {
		if now.Sub(entry.timestamp) > c.ttl {
			delete(c.cache, key)
		}
	}
}

// Clear empties the cache.
func (c *ContentCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache = make(map[string]*contentEntry)
}

// Size returns the number of entries, expired or not.
func (c *ContentCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.cache)
}
