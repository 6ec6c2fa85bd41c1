package cache

import (
	"sync"
	"time"

	"onboarding-hub/app/domain"
)

// cacheEntry represents a cached validated session.
type cacheEntry struct {
	session   domain.SessionContext
	expiresAt time.Time
}

// SessionCache provides thread-safe in-memory caching of validated
// sessions with TTL, so a polling client does not re-open and re-verify
// the same credential on every request.
type SessionCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	ttl     time.Duration
}

// NewSessionCache creates a new session cache with the specified TTL.
func NewSessionCache(ttl time.Duration) *SessionCache {
	c := &SessionCache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
	}
	go c.cleanupLoop()
	return c
}

// Get retrieves a cached session by credential key.
func (c *SessionCache) Get(key string) (*domain.SessionContext, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, found := c.entries[key]
	if !found || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	session := entry.session
	return &session, true
}

// Set stores a validated session in the cache.
func (c *SessionCache) Set(key string, session domain.SessionContext) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &cacheEntry{
		session:   session,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Invalidate removes a cached session, used after the credential has been
// superseded by a sync.
func (c *SessionCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// cleanup removes expired entries.
func (c *SessionCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
}

// cleanupLoop runs periodic cleanup of expired entries.
func (c *SessionCache) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanup()
	}
}
