package cache

import (
	"sync"
	"time"
)

// Item represents a cached item with expiration
type Item struct {
	Value      interface{}
	Expiration int64
}

// Cache is a simple in-memory TTL cache. It memoizes per-poll aggregation
// results; entries are invalidated explicitly when a response is inserted or
// removed, and expired entries are swept by a janitor goroutine.
type Cache struct {
	items map[string]Item
	mu    sync.RWMutex
	stop  chan struct{}
	once  sync.Once
}

// New creates a cache whose janitor sweeps expired items at the given
// interval (a non-positive interval defaults to one minute)
func New(janitorInterval time.Duration) *Cache {
	if janitorInterval <= 0 {
		janitorInterval = time.Minute
	}

	c := &Cache{
		items: make(map[string]Item),
		stop:  make(chan struct{}),
	}

	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.DeleteExpired()
			case <-c.stop:
				return
			}
		}
	}()

	return c
}

// Set adds an item to the cache with the given expiration duration
func (c *Cache) Set(key string, value interface{}, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = Item{
		Value:      value,
		Expiration: time.Now().Add(duration).UnixNano(),
	}
}

// Get retrieves an item from the cache.
// Returns the item and a boolean indicating if the item was found.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, found := c.items[key]
	if !found {
		return nil, false
	}
	if time.Now().UnixNano() > item.Expiration {
		return nil, false
	}
	return item.Value, true
}

// Delete removes an item from the cache
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

// DeleteExpired removes all expired items from the cache
func (c *Cache) DeleteExpired() {
	now := time.Now().UnixNano()

	c.mu.Lock()
	defer c.mu.Unlock()

	for key, item := range c.items {
		if now > item.Expiration {
			delete(c.items, key)
		}
	}
}

// Close stops the janitor goroutine
func (c *Cache) Close() {
	c.once.Do(func() {
		close(c.stop)
	})
}
