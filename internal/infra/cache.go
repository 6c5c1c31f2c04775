package infra

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Cache size limits to prevent unbounded memory growth
const (
	DefaultMaxCacheEntries = 1000            // Maximum number of cache entries
	DefaultCacheCleanup    = 5 * time.Minute // How often to run cache cleanup
)

// entry holds cached data with expiration and LRU tracking
type entry struct {
	data       interface{}
	expiresAt  time.Time
	accessedAt time.Time // for LRU eviction
	key        string
	mu         sync.Mutex
}

// CacheStats is a point-in-time snapshot of cache counters.
type CacheStats struct {
	Entries   int64 `json:"entries"`
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
}

// Cache provides an LRU cache with TTL support. Control-plane clients key
// entries as "<service>:<resource>:<identifier>" so write operations can
// invalidate whole resource families with DeletePrefix.
type Cache struct {
	entries    sync.Map // key (string) -> *entry
	count      int64    // atomic counter for cache size
	hits       int64
	misses     int64
	evictions  int64
	maxEntries int64
	mu         sync.Mutex // protects eviction operations

	// OnEvict, if set, is called with the number of entries removed by an
	// eviction pass. Feeds the prometheus eviction counter.
	OnEvict func(n int)

	// OnAccess, if set, is called with true on a hit and false on a miss.
	OnAccess func(hit bool)

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewCache creates a new LRU cache with the specified max entries
func NewCache(maxEntries int) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxCacheEntries
	}
	c := &Cache{
		maxEntries: int64(maxEntries),
		stopCh:     make(chan struct{}),
	}
	go c.cleanupLoop()
	return c
}

// Get retrieves a cached value if it exists and hasn't expired
func (c *Cache) Get(key string) (interface{}, bool) {
	if v, ok := c.entries.Load(key); ok {
		e := v.(*entry)
		now := time.Now()
		if now.Before(e.expiresAt) {
			e.mu.Lock()
			e.accessedAt = now
			e.mu.Unlock()
			atomic.AddInt64(&c.hits, 1)
			if c.OnAccess != nil {
				c.OnAccess(true)
			}
			return e.data, true
		}
		// Expired, delete it
		c.entries.Delete(key)
		atomic.AddInt64(&c.count, -1)
	}
	atomic.AddInt64(&c.misses, 1)
	if c.OnAccess != nil {
		c.OnAccess(false)
	}
	return nil, false
}

// Set stores a value in the cache with the specified TTL
func (c *Cache) Set(key string, data interface{}, ttl time.Duration) {
	now := time.Now()

	_, existed := c.entries.Load(key)

	c.entries.Store(key, &entry{
		data:       data,
		expiresAt:  now.Add(ttl),
		accessedAt: now,
		key:        key,
	})

	if !existed {
		newCount := atomic.AddInt64(&c.count, 1)

		// Trigger eviction if over limit (async to not block caller)
		if newCount > c.maxEntries {
			go c.evictLRU(int(newCount - c.maxEntries + c.maxEntries/10))
		}
	}
}

// Delete removes a key from the cache
func (c *Cache) Delete(key string) {
	if _, existed := c.entries.LoadAndDelete(key); existed {
		atomic.AddInt64(&c.count, -1)
	}
}

// DeletePrefix removes all cache entries with keys starting with prefix.
// Write operations call this to drop stale reads, e.g. updating a rule tree
// invalidates every "papi:" entry for that property.
func (c *Cache) DeletePrefix(prefix string) {
	var deleted int64
	c.entries.Range(func(key, value interface{}) bool {
		if k := key.(string); len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			c.entries.Delete(key)
			deleted++
		}
		return true
	})
	if deleted > 0 {
		atomic.AddInt64(&c.count, -deleted)
	}
}

// Size returns the current number of entries in the cache
func (c *Cache) Size() int64 {
	return atomic.LoadInt64(&c.count)
}

// Stats returns a snapshot of cache counters.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Entries:   atomic.LoadInt64(&c.count),
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
	}
}

// Close stops the background cleanup goroutine
func (c *Cache) Close() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}

// cleanupLoop periodically cleans up expired entries
func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(DefaultCacheCleanup)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

// cleanup removes expired entries and evicts LRU entries if over limit
func (c *Cache) cleanup() {
	now := time.Now()
	var expired int64

	c.entries.Range(func(key, value interface{}) bool {
		e := value.(*entry)
		if now.After(e.expiresAt) {
			c.entries.Delete(key)
			expired++
		}
		return true
	})

	if expired > 0 {
		atomic.AddInt64(&c.count, -expired)
	}

	currentCount := atomic.LoadInt64(&c.count)
	if currentCount > c.maxEntries {
		c.evictLRU(int(currentCount - c.maxEntries + c.maxEntries/10)) // evict 10% extra
	}
}

// evictLRU removes the least recently used entries
func (c *Cache) evictLRU(count int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	type entryInfo struct {
		key        string
		accessedAt time.Time
	}
	var all []entryInfo

	c.entries.Range(func(key, value interface{}) bool {
		e := value.(*entry)
		e.mu.Lock()
		accessedAt := e.accessedAt
		e.mu.Unlock()
		all = append(all, entryInfo{
			key:        key.(string),
			accessedAt: accessedAt,
		})
		return true
	})

	// Oldest first
	sort.Slice(all, func(i, j int) bool {
		return all[i].accessedAt.Before(all[j].accessedAt)
	})

	evicted := 0
	for _, e := range all {
		if evicted >= count {
			break
		}
		c.entries.Delete(e.key)
		evicted++
	}

	if evicted > 0 {
		atomic.AddInt64(&c.count, -int64(evicted))
		atomic.AddInt64(&c.evictions, int64(evicted))
		if c.OnEvict != nil {
			c.OnEvict(evicted)
		}
	}
}
