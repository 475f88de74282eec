package core

import (
	"sync"
	"time"
)

// InMemoryCache is a TTL + max-size session cache keyed by token hash.
// It sits in front of SessionStorage so repeated auth-guard checks on every
// request don't each cost a database round trip.
type InMemoryCache struct {
	cache   map[string]*cachedEntry
	mu      sync.RWMutex
	ttl     time.Duration
	maxSize int
}

type cachedEntry struct {
	session  *Session
	cachedAt time.Time
}

func NewInMemoryCache(config CacheConfig) *InMemoryCache {
	ttl := config.TTL
	if ttl == 0 {
		ttl = 5 * time.Minute
	}
	maxSize := config.MaxSize
	if maxSize == 0 {
		maxSize = 500
	}

	return &InMemoryCache{
		cache:   make(map[string]*cachedEntry),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

func (c *InMemoryCache) Get(tokenHash string) (*Session, error) {
	c.mu.RLock()
	entry, exists := c.cache[tokenHash]
	c.mu.RUnlock()

	if !exists {
		return nil, ErrCacheNotFound
	}

	if time.Since(entry.cachedAt) > c.ttl {
		if err := c.Delete(tokenHash); err != nil {
			return nil, err
		}
		return nil, ErrCacheNotFound
	}

	return entry.session, nil
}

func (c *InMemoryCache) Set(tokenHash string, session *Session) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Simple eviction if full: drop one arbitrary entry
	if len(c.cache) >= c.maxSize {
		for key := range c.cache {
			delete(c.cache, key)
			break
		}
	}

	c.cache[tokenHash] = &cachedEntry{
		session:  session,
		cachedAt: time.Now(),
	}
	return nil
}

func (c *InMemoryCache) Delete(tokenHash string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.cache, tokenHash)
	return nil
}

func (c *InMemoryCache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]*cachedEntry)
	return nil
}

func (c *InMemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}
