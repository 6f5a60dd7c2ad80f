// Package cache provides a sharded, byte-budgeted LRU cache.
//
// Sharded splits its entries over 16 shards, each with its own lock and
// LRU list, so concurrent users rarely contend. Every entry has a cost in
// bytes reported by a Sizer; a shard evicts its least recently used
// entries once their total cost would exceed its share of the budget.
//
//	c := cache.NewSharded[string, *image.RGBA](64<<20, cache.StringHasher, cache.RGBASize)
//	c.Set("avatar|r:[8 8 8 8]...", img)
//	img, ok := c.Get("avatar|r:[8 8 8 8]...")
//
// # Thread Safety
//
// Sharded is safe for concurrent use. It must not be copied after
// creation (it contains mutexes).
package cache
