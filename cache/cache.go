package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache holds rendered-ready content keyed by string, with per-entry TTL.
type Cache[T any] struct {
	impl *ristretto.Cache[string, T]
	name string
	ttl  time.Duration
}

// Stats is a snapshot of cache counters reported by the health endpoint.
type Stats struct {
	Name    string  `json:"name"`
	Hits    uint64  `json:"hits"`
	Misses  uint64  `json:"misses"`
	Sets    uint64  `json:"sets"`
	HitRate float64 `json:"hit_rate"`
}

// New creates a cache named name whose entries live for ttl. Every entry costs 1,
// so maxItems bounds the number of entries.
func New[T any](name string, maxItems int64, ttl time.Duration) (*Cache[T], error) {
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: maxItems * 10, // ristretto recommends 10x the item count
		MaxCost:     maxItems,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &Cache[T]{impl: impl, name: name, ttl: ttl}, nil
}

func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores value and waits until it is visible to Get.
func (c *Cache[T]) Set(key string, value T) bool {
	ok := c.impl.SetWithTTL(key, value, 1, c.ttl)
	c.impl.Wait()
	return ok
}

// GetOrLoad returns the cached value for key, calling load on a miss. Load
// errors are returned and nothing is cached.
func (c *Cache[T]) GetOrLoad(key string, load func() (T, error)) (T, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := load()
	if err != nil {
		return v, err
	}
	c.Set(key, v)
	return v, nil
}

func (c *Cache[T]) Clear() {
	c.impl.Clear()
}

func (c *Cache[T]) Close() {
	c.impl.Close()
}

func (c *Cache[T]) Stats() Stats {
	m := c.impl.Metrics
	s := Stats{
		Name:   c.name,
		Hits:   m.Hits(),
		Misses: m.Misses(),
		Sets:   m.KeysAdded(),
	}
	if total := s.Hits + s.Misses; total > 0 {
		s.HitRate = float64(s.Hits) / float64(total) * 100
	}
	return s
}
