package catalog

import (
	"context"
	"time"

	"github.com/learnpath/site/cache"
)

const allCoursesKey = "courses"

// Cached wraps a Provider with a ristretto cache. Lookup failures are not
// cached.
type Cached struct {
	next    Provider
	list    *cache.Cache[[]Course]
	courses *cache.Cache[Course]
}

func NewCached(next Provider, ttl time.Duration) (*Cached, error) {
	list, err := cache.New[[]Course]("catalog-list", 16, ttl)
	if err != nil {
		return nil, err
	}
	courses, err := cache.New[Course]("catalog-course", 1024, ttl)
	if err != nil {
		list.Close()
		return nil, err
	}
	return &Cached{next: next, list: list, courses: courses}, nil
}

func (c *Cached) Courses(ctx context.Context) ([]Course, error) {
	return c.list.GetOrLoad(allCoursesKey, func() ([]Course, error) {
		return c.next.Courses(ctx)
	})
}

func (c *Cached) Course(ctx context.Context, id string) (Course, error) {
	return c.courses.GetOrLoad(id, func() (Course, error) {
		return c.next.Course(ctx, id)
	})
}

// Stats reports both underlying caches.
func (c *Cached) Stats() []cache.Stats {
	return []cache.Stats{c.list.Stats(), c.courses.Stats()}
}

func (c *Cached) Close() {
	c.list.Close()
	c.courses.Close()
}
