package ui

import (
	"strconv"
	"strings"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/learnpath/site/config"
)

type navLink struct {
	Label string
	Href  string
}

var navLinks = []navLink{
	{"Home", "/"},
	{"Courses", "/courses"},
	{"Career Paths", "/careers"},
	{"Blog", "/blog"},
	{"Pricing", "/pricing"},
}

// isActivePath reports whether href should be highlighted for currentPath.
// "/" only matches itself; other links match their subtree.
func isActivePath(href, currentPath string) bool {
	if href == "/" {
		return currentPath == "/"
	}
	return currentPath == href || strings.HasPrefix(currentPath, href+"/")
}

func navItem(link navLink, currentPath string) g.Node {
	class := "px-3 py-2 rounded-md text-sm font-medium text-gray-700 hover:text-blue-600"
	if isActivePath(link.Href, currentPath) {
		class = "px-3 py-2 rounded-md text-sm font-medium text-blue-600"
	}
	return A(Href(link.Href), Class(class), g.Text(link.Label))
}

func navigation(currentPath string) g.Node {
	items := make([]g.Node, 0, len(navLinks))
	for _, link := range navLinks {
		items = append(items, navItem(link, currentPath))
	}

	return Nav(
		Class("fixed w-full top-0 z-50 bg-white shadow-sm"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 h-16 flex items-center justify-between"),
			A(
				Href("/"),
				Class("flex items-center text-xl font-bold text-blue-600"),
				icon("/static/images/logo.svg", config.SiteName, "mr-2"),
				g.Text(config.SiteName),
			),
			Div(Class("hidden md:flex items-center space-x-4"), g.Group(items)),
			g.If(currentPath != "/auth",
				button("Sign In", withHref("/auth"), withClass("text-sm")),
			),
		),
	)
}

func footerColumn(title string, links ...navLink) g.Node {
	items := make([]g.Node, 0, len(links))
	for _, l := range links {
		items = append(items, Li(A(Href(l.Href), Class("text-gray-400 hover:text-white"), g.Text(l.Label))))
	}
	return Div(
		H3(Class("text-sm font-semibold uppercase tracking-wider mb-4"), g.Text(title)),
		Ul(Class("space-y-2"), g.Group(items)),
	)
}

func footer() g.Node {
	return Footer(
		Class("bg-gray-900 text-white"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-12 grid grid-cols-2 md:grid-cols-4 gap-8"),
			Div(
				P(Class("text-xl font-bold mb-4"), g.Text(config.SiteName)),
				P(Class("text-gray-400 text-sm"), g.Text("Empowering learners worldwide with quality education and practical skills.")),
			),
			footerColumn("Learn", navLink{"Courses", "/courses"}, navLink{"Career Paths", "/careers"}),
			footerColumn("Company", navLink{"Blog", "/blog"}, navLink{"Pricing", "/pricing"}),
			footerColumn("Account", navLink{"Sign In", "/auth"}, navLink{"Sign Up", "/auth?mode=signup"}),
		),
		Div(
			Class("border-t border-gray-800 py-6 text-center text-gray-400 text-sm"),
			g.Text("© "+strconv.Itoa(time.Now().Year())+" "+config.SiteName+". All rights reserved."),
		),
	)
}
