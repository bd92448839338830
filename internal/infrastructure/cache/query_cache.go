package cache

import (
	"strings"
	"sync"
)

// QueryCache is the shared in-memory cache of backend query results, keyed
// by collection and filter parameters. Any caller using the same key shares
// the cached value; mutations invalidate the affected key prefixes so the
// next read refetches.
//
// Snapshot/Restore support optimistic updates: the mutating caller
// snapshots the keys it is about to touch, applies the expected result,
// and restores the snapshot if the backend call fails.
type QueryCache struct {
	mu      sync.RWMutex
	entries map[string]any
}

// Snapshot captures the prior values of a set of keys, including their
// absence
type Snapshot struct {
	values  map[string]any
	present map[string]bool
}

func NewQueryCache() *QueryCache {
	return &QueryCache{
		entries: make(map[string]any),
	}
}

func (c *QueryCache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *QueryCache) Put(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

func (c *QueryCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Invalidate drops every entry whose key starts with one of the given
// prefixes
func (c *QueryCache) Invalidate(prefixes ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				delete(c.entries, key)
				break
			}
		}
	}
}

// Take records the current state of the given keys for a later Restore
func (c *QueryCache) Take(keys ...string) Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := Snapshot{
		values:  make(map[string]any, len(keys)),
		present: make(map[string]bool, len(keys)),
	}
	for _, key := range keys {
		v, ok := c.entries[key]
		snap.present[key] = ok
		if ok {
			snap.values[key] = v
		}
	}
	return snap
}

// Restore puts every snapshotted key back to its recorded state, removing
// keys that were absent when the snapshot was taken
func (c *QueryCache) Restore(snap Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, present := range snap.present {
		if present {
			c.entries[key] = snap.values[key]
		} else {
			delete(c.entries, key)
		}
	}
}

// Key builds a cache key from a collection name and filter parts
func Key(collection string, parts ...string) string {
	if len(parts) == 0 {
		return collection
	}
	return collection + ":" + strings.Join(parts, ":")
}
