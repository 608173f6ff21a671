package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/learnpath/site/catalog"
)

func CourseDetailPage(path string, c catalog.Course) g.Node {
	syllabus := make([]g.Node, 0, len(c.Syllabus))
	for i, item := range c.Syllabus {
		syllabus = append(syllabus, Li(
			Class("flex items-center py-3 border-b border-gray-100 last:border-b-0"),
			Span(Class("w-8 text-gray-400"), g.Text(fmt.Sprintf("%02d", i+1))),
			Span(Class("text-gray-800"), g.Text(item)),
		))
	}

	return Page(
		c.Title,
		path,
		[]g.Node{
			banner(c.Title, c.Summary),
			section(
				Div(
					Class("grid grid-cols-1 lg:grid-cols-3 gap-8"),
					Div(
						Class("lg:col-span-2 bg-white rounded-xl shadow-lg p-8"),
						H2(Class("text-2xl font-bold mb-6"), g.Text("What you'll learn")),
						Ol(g.Group(syllabus)),
					),
					Div(
						Class("bg-white rounded-xl shadow-lg p-8 space-y-4 h-fit"),
						P(Class("text-4xl font-bold"), g.Text(fmt.Sprintf("$%d", c.Price))),
						courseFact("Instructor", c.Instructor),
						courseFact("Level", c.Level),
						courseFact("Category", c.Category),
						Div(
							Class("flex justify-between text-sm"),
							Span(Class("text-gray-500"), smallIcon(iconClock, "Duration", "mr-1"), g.Text("Duration")),
							Span(Class("font-medium"), g.Text(c.Duration)),
						),
						courseFact("Lessons", fmt.Sprintf("%d", c.Lessons)),
						courseFact("Students", formatCount(c.Students)),
						Div(Class("flex justify-between text-sm"), Span(Class("text-gray-500"), g.Text("Rating")), ratingBadge(c.Rating)),
						button("Enroll Now", withHref("/pricing"), withClass("w-full text-center py-3")),
					),
				),
			),
		},
	)
}

func courseFact(label, value string) g.Node {
	return Div(
		Class("flex justify-between text-sm"),
		Span(Class("text-gray-500"), g.Text(label)),
		Span(Class("font-medium"), g.Text(value)),
	)
}

// CourseUnavailablePage is rendered for unknown ids and failed lookups alike.
func CourseUnavailablePage(path string) g.Node {
	return Page(
		"Course unavailable",
		path,
		[]g.Node{
			banner("Course unavailable", ""),
			section(
				Unavailable("Course unavailable", "This course doesn't exist or can't be loaded right now."),
				Div(Class("text-center"), button("Browse all courses", withHref("/courses"))),
			),
		},
	)
}
