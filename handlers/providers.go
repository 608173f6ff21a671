package handlers

import (
	"github.com/learnpath/site/blog"
	"github.com/learnpath/site/cache"
	"github.com/learnpath/site/catalog"
)

// Content sources used by the handlers. Init replaces the static defaults.
var (
	courses catalog.Provider = catalog.NewStatic(nil)
	posts   blog.Provider    = blog.NewStatic(nil)
	baseURL                  = "https://learnpath.example"
)

// Options configures the content providers behind the pages.
type Options struct {
	Catalog catalog.Provider
	Blog    blog.Provider
	BaseURL string
}

// Init installs providers. Zero fields keep the current value.
func Init(o Options) {
	if o.Catalog != nil {
		courses = o.Catalog
	}
	if o.Blog != nil {
		posts = o.Blog
	}
	if o.BaseURL != "" {
		baseURL = o.BaseURL
	}
}

type statsReporter interface {
	Stats() []cache.Stats
}

func cacheStats() []cache.Stats {
	var out []cache.Stats
	for _, p := range []any{courses, posts} {
		if r, ok := p.(statsReporter); ok {
			out = append(out, r.Stats()...)
		}
	}
	return out
}
