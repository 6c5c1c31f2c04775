package infra

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestNewCache(t *testing.T) {
	c := NewCache(100)
	defer c.Close()

	if c.maxEntries != 100 {
		t.Errorf("expected maxEntries=100, got %d", c.maxEntries)
	}
}

func TestNewCache_DefaultMaxEntries(t *testing.T) {
	c := NewCache(0)
	defer c.Close()

	if c.maxEntries != DefaultMaxCacheEntries {
		t.Errorf("expected maxEntries=%d for 0, got %d", DefaultMaxCacheEntries, c.maxEntries)
	}

	c2 := NewCache(-1)
	defer c2.Close()

	if c2.maxEntries != DefaultMaxCacheEntries {
		t.Errorf("expected maxEntries=%d for -1, got %d", DefaultMaxCacheEntries, c2.maxEntries)
	}
}

func TestCache_SetAndGet(t *testing.T) {
	c := NewCache(100)
	defer c.Close()

	c.Set("papi:property:prp_1", "value1", 5*time.Minute)

	got, ok := c.Get("papi:property:prp_1")
	if !ok {
		t.Error("expected to find entry")
	}
	if got != "value1" {
		t.Errorf("expected 'value1', got %v", got)
	}
}

func TestCache_Expiry(t *testing.T) {
	c := NewCache(100)
	defer c.Close()

	c.Set("key", "value", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get("key"); ok {
		t.Error("expected entry to be expired")
	}
	if c.Size() != 0 {
		t.Errorf("expired entry should be removed, size = %d", c.Size())
	}
}

func TestCache_Delete(t *testing.T) {
	c := NewCache(100)
	defer c.Close()

	c.Set("key", "value", time.Minute)
	c.Delete("key")

	if _, ok := c.Get("key"); ok {
		t.Error("expected entry to be deleted")
	}
	if c.Size() != 0 {
		t.Errorf("size = %d, want 0", c.Size())
	}

	// Deleting a missing key must not corrupt the counter
	c.Delete("missing")
	if c.Size() != 0 {
		t.Errorf("size = %d after deleting missing key, want 0", c.Size())
	}
}

func TestCache_DeletePrefix(t *testing.T) {
	c := NewCache(100)
	defer c.Close()

	c.Set("papi:property:prp_1", 1, time.Minute)
	c.Set("papi:rules:prp_1:3", 2, time.Minute)
	c.Set("dns:zone:example.com", 3, time.Minute)

	c.DeletePrefix("papi:")

	if _, ok := c.Get("papi:property:prp_1"); ok {
		t.Error("papi entry should be gone")
	}
	if _, ok := c.Get("papi:rules:prp_1:3"); ok {
		t.Error("papi rules entry should be gone")
	}
	if _, ok := c.Get("dns:zone:example.com"); !ok {
		t.Error("dns entry should survive")
	}
	if c.Size() != 1 {
		t.Errorf("size = %d, want 1", c.Size())
	}
}

func TestCache_Stats(t *testing.T) {
	c := NewCache(100)
	defer c.Close()

	c.Set("a", 1, time.Minute)
	c.Get("a")
	c.Get("a")
	c.Get("missing")

	stats := c.Stats()
	if stats.Hits != 2 {
		t.Errorf("hits = %d, want 2", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("misses = %d, want 1", stats.Misses)
	}
	if stats.Entries != 1 {
		t.Errorf("entries = %d, want 1", stats.Entries)
	}
}

func TestCache_EvictLRU(t *testing.T) {
	c := NewCache(100)
	defer c.Close()

	var evictedTotal int
	var mu sync.Mutex
	c.OnEvict = func(n int) {
		mu.Lock()
		evictedTotal += n
		mu.Unlock()
	}

	for i := 0; i < 10; i++ {
		c.Set(fmt.Sprintf("key%d", i), i, time.Minute)
	}

	// Touch the newest half so the oldest half is LRU
	for i := 5; i < 10; i++ {
		c.Get(fmt.Sprintf("key%d", i))
	}

	c.evictLRU(5)

	if c.Size() != 5 {
		t.Errorf("size = %d after eviction, want 5", c.Size())
	}
	mu.Lock()
	defer mu.Unlock()
	if evictedTotal != 5 {
		t.Errorf("OnEvict total = %d, want 5", evictedTotal)
	}
	if c.Stats().Evictions != 5 {
		t.Errorf("evictions counter = %d, want 5", c.Stats().Evictions)
	}
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c := NewCache(1000)
	defer c.Close()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("key%d", j%50)
				c.Set(key, n, time.Minute)
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()

	if c.Size() > 50 {
		t.Errorf("size = %d, want <= 50", c.Size())
	}
}
