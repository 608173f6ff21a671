package ui

import (
	"net/url"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/learnpath/site/careers"
	"github.com/learnpath/site/disclosure"
)

const (
	careerListID     = "career-list"
	careerToggleBase = "/careers/paths"
)

// titles maps course ids to display titles; unknown ids fall back to the id.
func CareersPage(path string, paths []careers.Path, open *disclosure.List, titles map[string]string) g.Node {
	return Page(
		"Career Paths",
		path,
		[]g.Node{
			banner("Career Paths", "Follow a guided sequence of courses designed to get you job-ready in a new role."),
			section(
				Div(Class("max-w-3xl mx-auto"), CareerList(paths, open, titles)),
			),
		},
	)
}

// CareerList renders each career path as a disclosure item.
func CareerList(paths []careers.Path, open *disclosure.List, titles map[string]string) g.Node {
	items := make([]disclosureItem, 0, len(paths))
	for _, p := range paths {
		items = append(items, careerItem(p, titles))
	}
	return disclosureList(careerListID, careerToggleBase, items, open)
}

// CareerItem is the fragment for a single career path.
func CareerItem(p careers.Path, expanded bool, titles map[string]string) g.Node {
	return disclosureRow(careerListID, careerToggleBase, careerItem(p, titles), expanded)
}

func careerItem(p careers.Path, titles map[string]string) disclosureItem {
	return disclosureItem{
		ID: p.ID,
		Summary: Div(
			H3(Class("text-xl font-bold"), g.Text(p.Title)),
			P(Class("text-sm text-gray-500 mt-1"), g.Text(p.Duration+" · "+p.Salary)),
		),
		Detail: careerDetail(p, titles),
	}
}

func careerDetail(p careers.Path, titles map[string]string) g.Node {
	skills := make([]g.Node, 0, len(p.Skills))
	for _, s := range p.Skills {
		skills = append(skills, Span(Class("px-3 py-1 bg-blue-50 text-blue-700 rounded-full text-sm"), g.Text(s)))
	}
	courses := make([]g.Node, 0, len(p.CourseIDs))
	for _, id := range p.CourseIDs {
		title, ok := titles[id]
		if !ok {
			title = id
		}
		courses = append(courses, Li(A(Href("/courses/"+url.PathEscape(id)), Class("text-blue-600 hover:underline"), g.Text(title))))
	}
	return Div(
		P(Class("text-gray-600 mb-4"), g.Text(p.Summary)),
		Div(Class("flex flex-wrap gap-2 mb-4"), g.Group(skills)),
		H4(Class("font-semibold mb-2"), g.Text("Courses in this path")),
		Ul(Class("list-disc list-inside"), g.Group(courses)),
	)
}
