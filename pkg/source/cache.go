package source

import (
	"fmt"
	"sync"
)

// Cached wraps a completer with an LRU term cache so repeated queries for
// the same prefix (backspacing, toggling a highlight) skip the engine.
type Cached struct {
	inner      Completer
	mu         sync.Mutex
	entries    map[string][]Suggestion
	accessTime map[string]int64
	accessSeq  int64
	maxEntries int
	hits       int
	misses     int
}

// NewCached wraps inner with room for maxEntries cached terms.
func NewCached(inner Completer, maxEntries int) *Cached {
	if maxEntries <= 0 {
		maxEntries = 256
	}
	return &Cached{
		inner:      inner,
		entries:    make(map[string][]Suggestion, maxEntries),
		accessTime: make(map[string]int64, maxEntries),
		maxEntries: maxEntries,
	}
}

// Complete serves from cache when possible, falling through to the inner
// completer and recording the result.
func (c *Cached) Complete(prefix string, limit int) []Suggestion {
	key := fmt.Sprintf("%s\x00%d", prefix, limit)

	c.mu.Lock()
	if cached, ok := c.entries[key]; ok {
		c.hits++
		c.markAccessed(key)
		c.mu.Unlock()
		return cached
	}
	c.misses++
	c.mu.Unlock()

	result := c.inner.Complete(prefix, limit)

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.maxEntries {
		c.evictLRU()
	}
	c.entries[key] = result
	c.markAccessed(key)
	return result
}

// Stats reports hit/miss counters and current size.
func (c *Cached) Stats() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return map[string]int{
		"cacheEntries": len(c.entries),
		"cacheHits":    c.hits,
		"cacheMisses":  c.misses,
	}
}

func (c *Cached) markAccessed(key string) {
	c.accessSeq++
	c.accessTime[key] = c.accessSeq
}

func (c *Cached) evictLRU() {
	var oldestKey string
	oldestSeq := int64(1<<63 - 1)
	for key, seq := range c.accessTime {
		if seq < oldestSeq {
			oldestSeq = seq
			oldestKey = key
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
		delete(c.accessTime, oldestKey)
	}
}
