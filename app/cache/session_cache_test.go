package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboarding-hub/app/domain"
)

func testSession(userID string) domain.SessionContext {
	return domain.SessionContext{
		UserID:   userID,
		TenantID: "5e6ab306-8cbf-43b9-9778-f1abbe7b6ed1",
	}
}

func TestSessionCache_SetAndGet(t *testing.T) {
	c := NewSessionCache(time.Minute)

	c.Set("key-1", testSession("user-1"))

	got, found := c.Get("key-1")
	require.True(t, found)
	assert.Equal(t, "user-1", got.UserID)
}

func TestSessionCache_MissingKey(t *testing.T) {
	c := NewSessionCache(time.Minute)

	_, found := c.Get("unknown")
	assert.False(t, found)
}

func TestSessionCache_ExpiredEntry(t *testing.T) {
	c := NewSessionCache(10 * time.Millisecond)

	c.Set("key-1", testSession("user-1"))
	time.Sleep(20 * time.Millisecond)

	_, found := c.Get("key-1")
	assert.False(t, found)
}

func TestSessionCache_Invalidate(t *testing.T) {
	c := NewSessionCache(time.Minute)

	c.Set("key-1", testSession("user-1"))
	c.Invalidate("key-1")

	_, found := c.Get("key-1")
	assert.False(t, found)
}

func TestSessionCache_GetReturnsCopy(t *testing.T) {
	c := NewSessionCache(time.Minute)

	c.Set("key-1", testSession("user-1"))

	first, found := c.Get("key-1")
	require.True(t, found)
	first.UserID = "mutated"

	second, found := c.Get("key-1")
	require.True(t, found)
	assert.Equal(t, "user-1", second.UserID, "cached value must not be mutable through the returned pointer")
}

func TestSessionCache_Cleanup(t *testing.T) {
	c := NewSessionCache(10 * time.Millisecond)

	c.Set("stale", testSession("user-1"))
	time.Sleep(20 * time.Millisecond)
	c.cleanup()

	c.mu.RLock()
	defer c.mu.RUnlock()
	assert.Empty(t, c.entries)
}

func TestSessionCache_ConcurrentAccess(t *testing.T) {
	c := NewSessionCache(time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i%10)
			c.Set(key, testSession(fmt.Sprintf("user-%d", i)))
			c.Get(key)
			if i%3 == 0 {
				c.Invalidate(key)
			}
		}(i)
	}
	wg.Wait()
}
