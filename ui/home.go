package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/learnpath/site/catalog"
	"github.com/learnpath/site/config"
)

type stat struct {
	Value string
	Label string
}

var homeStats = []stat{
	{"10k+", "Online Courses"},
	{"500+", "Expert Instructors"},
	{"1M+", "Active Students"},
	{"95%", "Satisfaction Rate"},
}

// HomePage renders the landing page. featured may be empty when the catalog is
// unavailable; the rest of the page still renders.
func HomePage(path string, featured []catalog.Course, featuredErr bool) g.Node {
	var featuredContent g.Node
	switch {
	case featuredErr:
		featuredContent = Unavailable("Courses unavailable", "We couldn't load featured courses right now. Please try again shortly.")
	default:
		featuredContent = courseGrid(featured)
	}

	return Page(
		"Learn without limits",
		path,
		[]g.Node{
			hero(),
			section(
				Div(
					Class("grid grid-cols-2 md:grid-cols-4 gap-8 text-center"),
					g.Group(g.Map(homeStats, func(s stat) g.Node {
						return Div(
							P(Class("text-3xl font-bold text-blue-600"), g.Text(s.Value)),
							P(Class("text-gray-600"), g.Text(s.Label)),
						)
					})),
				),
			),
			section(
				sectionHeader("Featured Courses", "Hand-picked courses to get you started"),
				featuredContent,
				Div(Class("text-center mt-8"), button("Browse all courses", withHref("/courses"))),
			),
			callToAction(),
		},
	)
}

func hero() g.Node {
	return Div(
		Class("bg-gradient-to-r from-blue-600 to-indigo-700 text-white"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-24 text-center"),
			H1(Class("text-5xl font-bold mb-6"), g.Text("Learn Without Limits")),
			P(
				Class("text-xl text-gray-200 max-w-2xl mx-auto mb-8"),
				g.Text("Start, switch, or advance your career with thousands of courses from expert instructors at "+config.SiteName+"."),
			),
			Div(
				Class("space-x-4"),
				buttonStyled("Explore Courses", "px-6 py-3 rounded-lg inline-block bg-white text-blue-600 font-medium hover:bg-gray-100 transition duration-300", withHref("/courses")),
				buttonOutline("View Career Paths", withHref("/careers")),
			),
		),
	)
}

func callToAction() g.Node {
	return Div(
		Class("bg-blue-600"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-16 text-center text-white"),
			H2(Class("text-3xl font-bold mb-4"), g.Text("Ready to start learning?")),
			P(Class("text-gray-200 mb-8"), g.Text("Join over a million learners building skills for the future.")),
			buttonOutline("See plans and pricing", withHref("/pricing")),
		),
	)
}
