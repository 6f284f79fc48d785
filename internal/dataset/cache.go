package dataset

import "sync"

// Cache memoizes fabricated tables per seed. Repeated lookups for the same
// seed return the same pointer.
type Cache struct {
	mu     sync.Mutex
	tables map[int64]*Tables
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{tables: map[int64]*Tables{}}
}

// Get returns the tables for seed, fabricating them on first use.
func (c *Cache) Get(seed int64) *Tables {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tables == nil {
		c.tables = map[int64]*Tables{}
	}
	if t, ok := c.tables[seed]; ok {
		return t
	}
	t := Fabricate(seed)
	c.tables[seed] = &t
	return &t
}

// Len reports how many seeds have been fabricated.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tables)
}

var defaultCache = NewCache()

// Load returns memoized tables for seed from the process-wide cache.
func Load(seed int64) *Tables {
	return defaultCache.Get(seed)
}
