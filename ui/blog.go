package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/learnpath/site/blog"
)

// BlogPage renders the post index, or an unavailable notice when posts is nil
// because the provider failed.
func BlogPage(path string, posts []blog.Post, failed bool) g.Node {
	var content g.Node
	switch {
	case failed:
		content = Unavailable("Posts unavailable", "We couldn't load the blog right now. Please try again shortly.")
	case len(posts) == 0:
		content = Unavailable("No posts yet", "Check back soon for articles from our instructors.")
	default:
		content = Div(
			Class("grid grid-cols-1 md:grid-cols-2 gap-8"),
			g.Group(g.Map(posts, postCard)),
		)
	}

	return Page(
		"Blog",
		path,
		[]g.Node{
			banner("Learnpath Blog", "Insights, tutorials and career advice from our instructors and community."),
			section(content),
		},
	)
}

func postCard(p blog.Post) g.Node {
	return Article(
		Class("bg-white rounded-xl shadow-lg p-6"),
		Data("post", p.Slug),
		Span(Class("text-xs font-semibold uppercase text-blue-600"), g.Text(p.Category)),
		H2(Class("text-xl font-bold text-gray-900 mt-2 mb-3"), g.Text(p.Title)),
		P(Class("text-gray-600 mb-4"), g.Text(p.Excerpt)),
		Div(
			Class("flex justify-between text-sm text-gray-500"),
			Span(g.Text(p.Author)),
			Span(
				smallIcon(iconClock, "Read time", "mr-1"),
				g.Text(fmt.Sprintf("%s · %d min read", p.PublishedAt.Format("Jan 2, 2006"), p.ReadMinutes)),
			),
		),
	)
}
