package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/learnpath/site/config"
)

// ---- Page Layout ----

func Page(title string, currentPath string, content []g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:       title + " | " + config.SiteName,
		Description: "Learn in-demand skills from industry experts with " + config.SiteName + ".",
		Language:    "en",
		Head: []g.Node{
			Link(Rel("icon"), Type("image/svg+xml"), Href("/static/images/logo.svg")),
			Link(
				Rel("stylesheet"),
				Href(config.TailwindCSSURL),
			),
			Link(
				Rel("stylesheet"),
				Href("/static/css/site.css"),
			),
			Script(
				Type("text/javascript"),
				Src(config.HTMXURL),
				Defer(),
			),
		},
		Body: []g.Node{
			Div(
				Class("min-h-screen flex flex-col bg-gray-50"),
				navigation(currentPath),
				Main(Class("flex-grow pt-16"), g.Group(content)),
				footer(),
			),
		},
	})
}

// banner is the gradient page header used by every content page.
func banner(title, subtitle string) g.Node {
	return Div(
		Class("bg-gradient-to-r from-blue-600 to-indigo-700 py-12"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 text-center"),
			H1(Class("text-4xl font-bold text-white mb-4"), g.Text(title)),
			g.If(subtitle != "", P(Class("text-gray-200 max-w-2xl mx-auto"), g.Text(subtitle))),
		),
	)
}

func section(content ...g.Node) g.Node {
	return Div(
		Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-12"),
		g.Group(content),
	)
}

func sectionHeader(title, subtitle string) g.Node {
	return Div(
		Class("text-center mb-12"),
		H2(Class("text-3xl font-bold mb-4"), g.Text(title)),
		g.If(subtitle != "", P(Class("text-gray-600"), g.Text(subtitle))),
	)
}
