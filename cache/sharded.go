package cache

import (
	"hash/fnv"
	"image"
	"sync"
	"sync/atomic"
)

// Default configuration constants.
const (
	// DefaultShardCount is the number of shards for reduced lock contention.
	// Must be a power of 2 for fast modulo via bitwise AND.
	DefaultShardCount = 16

	// DefaultBudget is the default total budget in bytes.
	DefaultBudget = 32 << 20

	// shardMask is used for fast shard selection (DefaultShardCount - 1).
	shardMask = DefaultShardCount - 1
)

// Hasher is a function that computes a hash for a key.
// Used by Sharded for shard selection.
type Hasher[K any] func(K) uint64

// StringHasher computes FNV-1a hash of a string key.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// Sizer returns the cost of a value in bytes.
type Sizer[V any] func(V) int64

// RGBASize returns the pixel buffer size of img.
func RGBASize(img *image.RGBA) int64 {
	if img == nil {
		return 0
	}
	return int64(len(img.Pix))
}

// Stats holds cache statistics.
type Stats struct {
	Len       int
	Bytes     int64
	Budget    int64
	Hits      uint64
	Misses    uint64
	HitRate   float64
	Evictions uint64
	// Rejected counts values larger than a shard's budget, which are never
	// stored.
	Rejected uint64
}

// Sharded is a thread-safe, sharded LRU cache bounded by total cost.
type Sharded[K comparable, V any] struct {
	shards      [DefaultShardCount]*shard[K, V]
	hasher      Hasher[K]
	sizer       Sizer[V]
	shardBudget int64

	// Statistics (atomic for lock-free reads)
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
	rejected  atomic.Uint64
}

// shard is a single shard of the cache with its own lock.
type shard[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[K, V]
	lru     lruList[K]
	bytes   int64
}

// entry holds a cached value with its LRU node and cost.
type entry[K comparable, V any] struct {
	value V
	cost  int64
	node  *lruNode[K]
}

// NewSharded creates a cache holding at most budget bytes, split evenly
// between the shards. If budget <= 0, DefaultBudget is used.
//
// The hasher selects a shard for each key; sizer reports each value's
// cost. A nil sizer counts every value as one byte.
func NewSharded[K comparable, V any](budget int64, hasher Hasher[K], sizer Sizer[V]) *Sharded[K, V] {
	if budget <= 0 {
		budget = DefaultBudget
	}
	if sizer == nil {
		sizer = func(V) int64 { return 1 }
	}
	c := &Sharded[K, V]{
		hasher:      hasher,
		sizer:       sizer,
		shardBudget: max(budget/DefaultShardCount, 1),
	}
	for i := range c.shards {
		c.shards[i] = &shard[K, V]{entries: make(map[K]*entry[K, V])}
	}
	return c
}

// getShard returns the shard for a given key.
func (c *Sharded[K, V]) getShard(key K) *shard[K, V] {
	return c.shards[c.hasher(key)&shardMask]
}

// Get retrieves a cached value by key and marks it most recently used.
func (c *Sharded[K, V]) Get(key K) (V, bool) {
	s := c.getShard(key)
	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		s.mu.Unlock()
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	s.lru.MoveToFront(e.node)
	value := e.value
	s.mu.Unlock()

	c.hits.Add(1)
	return value, true
}

// Set stores a value, evicting the least recently used entries of its
// shard until it fits. A value costing more than the shard budget is not
// stored.
//
// The value is stored as-is (not copied). Callers should not modify it
// after caching.
func (c *Sharded[K, V]) Set(key K, value V) {
	s := c.getShard(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	c.store(s, key, value)
}

// GetOrCreate returns a cached value or creates and stores it.
//
// The create function is called with the shard lock held, so concurrent
// callers asking for the same key wait for one result instead of
// computing it twice. Errors from create are returned and nothing is
// stored.
func (c *Sharded[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	s := c.getShard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		s.lru.MoveToFront(e.node)
		c.hits.Add(1)
		return e.value, nil
	}
	c.misses.Add(1)

	value, err := create()
	if err != nil {
		return value, err
	}
	c.store(s, key, value)
	return value, nil
}

// store inserts or replaces key. The shard lock must be held.
func (c *Sharded[K, V]) store(s *shard[K, V], key K, value V) {
	cost := c.sizer(value)
	if old, ok := s.entries[key]; ok {
		s.lru.Remove(old.node)
		s.bytes -= old.cost
		delete(s.entries, key)
	}
	if cost > c.shardBudget {
		c.rejected.Add(1)
		return
	}
	for s.bytes+cost > c.shardBudget {
		oldest, ok := s.lru.RemoveOldest()
		if !ok {
			break
		}
		s.bytes -= s.entries[oldest].cost
		delete(s.entries, oldest)
		c.evictions.Add(1)
	}
	s.entries[key] = &entry[K, V]{value: value, cost: cost, node: s.lru.PushFront(key)}
	s.bytes += cost
}

// Delete removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *Sharded[K, V]) Delete(key K) bool {
	s := c.getShard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return false
	}
	s.lru.Remove(e.node)
	s.bytes -= e.cost
	delete(s.entries, key)
	return true
}

// Clear removes all entries from the cache.
func (c *Sharded[K, V]) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.entries = make(map[K]*entry[K, V])
		s.lru.Clear()
		s.bytes = 0
		s.mu.Unlock()
	}
}

// Len returns the total number of entries across all shards.
func (c *Sharded[K, V]) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.Lock()
		total += len(s.entries)
		s.mu.Unlock()
	}
	return total
}

// Bytes returns the total cost of the stored entries.
func (c *Sharded[K, V]) Bytes() int64 {
	var total int64
	for _, s := range c.shards {
		s.mu.Lock()
		total += s.bytes
		s.mu.Unlock()
	}
	return total
}

// Budget returns the total budget across all shards.
func (c *Sharded[K, V]) Budget() int64 {
	return c.shardBudget * DefaultShardCount
}

// ShardBudget returns the budget of a single shard.
func (c *Sharded[K, V]) ShardBudget() int64 {
	return c.shardBudget
}

// Stats returns current cache statistics.
func (c *Sharded[K, V]) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:       c.Len(),
		Bytes:     c.Bytes(),
		Budget:    c.Budget(),
		Hits:      hits,
		Misses:    misses,
		HitRate:   hitRate,
		Evictions: c.evictions.Load(),
		Rejected:  c.rejected.Load(),
	}
}

// ResetStats resets all statistics counters to zero.
func (c *Sharded[K, V]) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
	c.rejected.Store(0)
}
