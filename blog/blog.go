package blog

import (
	"context"
	"sort"
	"time"

	"github.com/learnpath/site/cache"
)

// Post is a blog entry summary as supplied by the content provider.
type Post struct {
	Slug        string
	Title       string
	Author      string
	Category    string
	Excerpt     string
	PublishedAt time.Time
	ReadMinutes int
}

type Provider interface {
	Posts(ctx context.Context) ([]Post, error)
}

// Static serves a fixed post list, newest first.
type Static struct {
	posts []Post
}

// NewStatic serves posts, or the built-in posts when posts is nil.
func NewStatic(posts []Post) *Static {
	if posts == nil {
		posts = builtin
	}
	sorted := make([]Post, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedAt.After(sorted[j].PublishedAt)
	})
	return &Static{posts: sorted}
}

func (s *Static) Posts(ctx context.Context) ([]Post, error) {
	out := make([]Post, len(s.posts))
	copy(out, s.posts)
	return out, nil
}

// Cached wraps a Provider with a ristretto cache.
type Cached struct {
	next  Provider
	posts *cache.Cache[[]Post]
}

func NewCached(next Provider, ttl time.Duration) (*Cached, error) {
	posts, err := cache.New[[]Post]("blog-posts", 16, ttl)
	if err != nil {
		return nil, err
	}
	return &Cached{next: next, posts: posts}, nil
}

func (c *Cached) Posts(ctx context.Context) ([]Post, error) {
	return c.posts.GetOrLoad("posts", func() ([]Post, error) {
		return c.next.Posts(ctx)
	})
}

func (c *Cached) Stats() []cache.Stats {
	return []cache.Stats{c.posts.Stats()}
}

func (c *Cached) Close() {
	c.posts.Close()
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

var builtin = []Post{
	{
		Slug:        "learning-to-code-in-2024",
		Title:       "How to Learn to Code in 2024",
		Author:      "Sarah Johnson",
		Category:    "Development",
		Excerpt:     "A practical roadmap for beginners: what to learn first, how to practice, and how to stay motivated.",
		PublishedAt: day(2024, time.March, 15),
		ReadMinutes: 8,
	},
	{
		Slug:        "data-science-career-guide",
		Title:       "The Complete Guide to a Data Science Career",
		Author:      "Emily Rodriguez",
		Category:    "Data Science",
		Excerpt:     "The skills, tools and portfolio projects that hiring managers look for in junior data scientists.",
		PublishedAt: day(2024, time.March, 10),
		ReadMinutes: 12,
	},
	{
		Slug:        "design-systems-101",
		Title:       "Design Systems 101",
		Author:      "Olivia Brown",
		Category:    "Design",
		Excerpt:     "Why teams invest in shared components and tokens, and how to start one without a big rewrite.",
		PublishedAt: day(2024, time.February, 28),
		ReadMinutes: 6,
	},
	{
		Slug:        "remote-learning-habits",
		Title:       "Seven Habits of Successful Online Learners",
		Author:      "James Wilson",
		Category:    "Learning",
		Excerpt:     "Small routines that make the difference between finishing a course and abandoning it halfway.",
		PublishedAt: day(2024, time.February, 14),
		ReadMinutes: 5,
	},
}
