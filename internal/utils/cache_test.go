package utils

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetGet(t *testing.T) {
	cache := GetCache()
	cache.Flush()

	cache.Set("index:page:1", "rendered page", time.Minute)
	assert.Equal(t, "rendered page", cache.Get("index:page:1"))
	assert.Nil(t, cache.Get("index:page:2"))
}

func TestCacheEntriesExpireByTTL(t *testing.T) {
	cache := GetCache()
	cache.Flush()

	cache.Set("short", "value", 30*time.Millisecond)
	assert.Equal(t, "value", cache.Get("short"))

	time.Sleep(60 * time.Millisecond)
	assert.Nil(t, cache.Get("short"), "expired entries read as misses")
}

func TestCacheServesStaleUntilExpiryOrFlush(t *testing.T) {
	cache := GetCache()
	cache.Flush()

	// The cached page keeps serving the old content even after the
	// underlying data changed; only a flush (or expiry) reveals the change.
	cache.Set("index:page:1", "feed with post", time.Minute)

	assert.Equal(t, "feed with post", cache.Get("index:page:1"))

	cache.Flush()
	assert.Nil(t, cache.Get("index:page:1"))
}

func TestCacheDeleteSingleEntry(t *testing.T) {
	cache := GetCache()
	cache.Flush()

	cache.Set("a", 1, time.Minute)
	cache.Set("b", 2, time.Minute)

	cache.Delete("a")
	assert.Nil(t, cache.Get("a"))
	assert.Equal(t, 2, cache.Get("b"))
}

func TestCacheFlushClearsEverythingImmediately(t *testing.T) {
	cache := GetCache()
	cache.Flush()

	for i := 0; i < 5; i++ {
		cache.Set(fmt.Sprintf("index:page:%d", i), i, time.Hour)
	}

	cache.Flush()

	for i := 0; i < 5; i++ {
		assert.Nil(t, cache.Get(fmt.Sprintf("index:page:%d", i)))
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	cache := GetCache()
	cache.Flush()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key:%d", n%5)
			cache.Set(key, n, time.Minute)
			cache.Get(key)
			if n%7 == 0 {
				cache.Flush()
			}
		}(i)
	}
	wg.Wait()
}
