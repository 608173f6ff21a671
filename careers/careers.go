package careers

import (
	"slices"

	"github.com/learnpath/site/disclosure"
)

// Path is a career track built from catalog courses.
type Path struct {
	ID        string
	Title     string
	Summary   string
	Salary    string
	Duration  string
	Skills    []string
	CourseIDs []string
}

var paths = []Path{
	{
		ID:        "frontend-developer",
		Title:     "Frontend Developer",
		Summary:   "Build the interfaces people use every day, from layout and styling to interactive web apps.",
		Salary:    "$85,000 - $130,000",
		Duration:  "6 months",
		Skills:    []string{"HTML & CSS", "JavaScript", "Responsive design", "Accessibility"},
		CourseIDs: []string{"web-development-bootcamp", "ui-ux-design"},
	},
	{
		ID:        "backend-engineer",
		Title:     "Backend Engineer",
		Summary:   "Design the services, APIs and data stores that power modern products.",
		Salary:    "$95,000 - $150,000",
		Duration:  "8 months",
		Skills:    []string{"Go", "SQL", "HTTP APIs", "Testing"},
		CourseIDs: []string{"web-development-bootcamp", "go-backend-engineering"},
	},
	{
		ID:        "data-scientist",
		Title:     "Data Scientist",
		Summary:   "Turn raw data into decisions with statistics, visualization and machine learning.",
		Salary:    "$100,000 - $160,000",
		Duration:  "9 months",
		Skills:    []string{"Python", "pandas", "Statistics", "Machine learning"},
		CourseIDs: []string{"data-science-python", "machine-learning-foundations"},
	},
	{
		ID:        "product-designer",
		Title:     "Product Designer",
		Summary:   "Research user needs and shape them into clear, usable products.",
		Salary:    "$80,000 - $125,000",
		Duration:  "5 months",
		Skills:    []string{"User research", "Wireframing", "Prototyping", "Visual design"},
		CourseIDs: []string{"ui-ux-design"},
	},
	{
		ID:        "growth-marketer",
		Title:     "Growth Marketer",
		Summary:   "Plan campaigns, measure results and grow an audience across channels.",
		Salary:    "$65,000 - $110,000",
		Duration:  "4 months",
		Skills:    []string{"SEO", "Social media", "Email", "Analytics"},
		CourseIDs: []string{"digital-marketing"},
	},
}

// Paths returns the career paths in display order. The result is a deep copy.
func Paths() []Path {
	out := make([]Path, len(paths))
	for i, p := range paths {
		out[i] = p.clone()
	}
	return out
}

// Lookup returns a copy of the path with id.
func Lookup(id string) (Path, bool) {
	for _, p := range paths {
		if p.ID == id {
			return p.clone(), true
		}
	}
	return Path{}, false
}

func (p Path) clone() Path {
	p.Skills = slices.Clone(p.Skills)
	p.CourseIDs = slices.Clone(p.CourseIDs)
	return p
}

// NewDisclosure returns a collapsed disclosure list over the paths.
func NewDisclosure(list []Path) *disclosure.List {
	ids := make([]string, len(list))
	for i, p := range list {
		ids[i] = p.ID
	}
	return disclosure.New(ids...)
}
