package geocode

import "sync"

// outcomeCache memoizes lookup outcomes per exact query text for the process
// lifetime. A stored negative outcome ("no match") is distinct from a query
// that has never been attempted; only the get bool tells them apart.
type outcomeCache struct {
	mu      sync.RWMutex
	entries map[string]Result
}

func newOutcomeCache() *outcomeCache {
	return &outcomeCache{entries: make(map[string]Result)}
}

func (c *outcomeCache) get(query string) (Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.entries[query]
	return r, ok
}

func (c *outcomeCache) put(query string, r Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[query] = r
}

func (c *outcomeCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
