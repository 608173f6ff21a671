package ui

import (
	"fmt"
	"net/url"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/learnpath/site/catalog"
	"github.com/learnpath/site/toggle"
)

const courseResultsID = "course-results"

func CoursesPage(path string, category *toggle.Group[string], courses []catalog.Course) g.Node {
	return Page(
		"Courses",
		path,
		[]g.Node{
			banner("Explore Our Courses", "Learn from industry experts and advance your career with our comprehensive course catalog."),
			section(CourseResults(category, courses)),
		},
	)
}

// CoursesUnavailablePage is shown when the catalog provider fails.
func CoursesUnavailablePage(path string) g.Node {
	return Page(
		"Courses",
		path,
		[]g.Node{
			banner("Explore Our Courses", ""),
			section(Unavailable("Courses unavailable", "We couldn't load the course catalog right now. Please try again shortly.")),
		},
	)
}

// CourseResults renders the category filter and the filtered grid. courses is
// the full catalog; filtering follows the active category.
func CourseResults(category *toggle.Group[string], courses []catalog.Course) g.Node {
	options := make([]toggleOption, 0, len(category.Options()))
	for _, c := range category.Options() {
		options = append(options, toggleOption{
			Label:  c,
			Active: category.IsActive(c),
			URL:    "/courses/filter?category=" + url.QueryEscape(c),
		})
	}

	shown := catalog.Filter(courses, category.Active())
	var grid g.Node = courseGrid(shown)
	if len(shown) == 0 {
		grid = Unavailable("No courses yet", "There are no courses in this category yet.")
	}

	return Div(
		ID(courseResultsID),
		Data("category", category.Active()),
		Div(Class("flex justify-center mb-12"), toggleGroup("Course category", "#"+courseResultsID, options)),
		P(Class("text-gray-600 mb-6"), g.Text(fmt.Sprintf("Showing %d of %d courses", len(shown), len(courses)))),
		grid,
	)
}

func courseGrid(courses []catalog.Course) g.Node {
	return Div(
		Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8"),
		g.Group(g.Map(courses, courseCard)),
	)
}

func courseCard(c catalog.Course) g.Node {
	return A(
		Href("/courses/"+url.PathEscape(c.ID)),
		Class("block bg-white rounded-xl shadow-lg overflow-hidden hover:shadow-xl transition duration-300"),
		Data("course", c.ID),
		Div(
			Class("p-6"),
			Div(
				Class("flex justify-between items-center mb-2"),
				Span(Class("text-xs font-semibold uppercase text-blue-600"), g.Text(c.Category)),
				Span(Class("text-xs text-gray-500"), g.Text(c.Level)),
			),
			H3(Class("text-xl font-bold text-gray-900 mb-2"), g.Text(c.Title)),
			P(Class("text-gray-600 text-sm mb-4"), g.Text(c.Summary)),
			P(Class("text-sm text-gray-500 mb-4"), g.Text("by "+c.Instructor)),
			Div(
				Class("flex justify-between items-center"),
				ratingBadge(c.Rating),
				Span(Class("text-sm text-gray-500"), g.Text(formatCount(c.Students)+" students")),
				Span(Class("text-lg font-bold text-gray-900"), g.Text(fmt.Sprintf("$%d", c.Price))),
			),
		),
	)
}
