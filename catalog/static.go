package catalog

import (
	"context"
	"slices"
)

// Static serves a fixed course list.
type Static struct {
	courses []Course
}

// NewStatic serves courses, or the built-in catalog when courses is nil.
func NewStatic(courses []Course) *Static {
	if courses == nil {
		courses = builtin
	}
	return &Static{courses: courses}
}

func (s *Static) Courses(ctx context.Context) ([]Course, error) {
	out := make([]Course, len(s.courses))
	for i, c := range s.courses {
		out[i] = c.clone()
	}
	return out, nil
}

func (s *Static) Course(ctx context.Context, id string) (Course, error) {
	for _, c := range s.courses {
		if c.ID == id {
			return c.clone(), nil
		}
	}
	return Course{}, ErrNotFound
}

func (c Course) clone() Course {
	c.Syllabus = slices.Clone(c.Syllabus)
	return c
}

// Builtin returns a deep copy of the catalog shipped with the site.
func Builtin() []Course {
	out := make([]Course, len(builtin))
	for i, c := range builtin {
		out[i] = c.clone()
	}
	return out
}

var builtin = []Course{
	{
		ID:         "web-development-bootcamp",
		Title:      "Complete Web Development Bootcamp",
		Instructor: "Sarah Johnson",
		Category:   "Development",
		Level:      "Beginner",
		Duration:   "48 hours",
		Lessons:    320,
		Rating:     4.8,
		Students:   125000,
		Price:      89,
		Summary:    "Learn HTML, CSS, JavaScript and modern tooling by building real projects from scratch.",
		Syllabus: []string{
			"HTML and semantic markup",
			"CSS layout with flexbox and grid",
			"JavaScript fundamentals",
			"Working with APIs",
			"Deploying your first site",
		},
	},
	{
		ID:         "go-backend-engineering",
		Title:      "Backend Engineering with Go",
		Instructor: "Michael Chen",
		Category:   "Development",
		Level:      "Intermediate",
		Duration:   "32 hours",
		Lessons:    180,
		Rating:     4.9,
		Students:   42000,
		Price:      99,
		Summary:    "Build fast, reliable HTTP services with Go, from routing to databases to deployment.",
		Syllabus: []string{
			"Go syntax and tooling",
			"HTTP servers and middleware",
			"Working with SQL",
			"Testing and benchmarking",
			"Shipping to production",
		},
	},
	{
		ID:         "data-science-python",
		Title:      "Data Science with Python",
		Instructor: "Emily Rodriguez",
		Category:   "Data Science",
		Level:      "Intermediate",
		Duration:   "40 hours",
		Lessons:    240,
		Rating:     4.7,
		Students:   98000,
		Price:      94,
		Summary:    "Analyze, visualize and model data with pandas, matplotlib and scikit-learn.",
		Syllabus: []string{
			"Python for analysis",
			"Cleaning data with pandas",
			"Visualization",
			"Statistics refresher",
			"Machine learning basics",
		},
	},
	{
		ID:         "machine-learning-foundations",
		Title:      "Machine Learning Foundations",
		Instructor: "David Kim",
		Category:   "Data Science",
		Level:      "Advanced",
		Duration:   "36 hours",
		Lessons:    150,
		Rating:     4.8,
		Students:   61000,
		Price:      119,
		Summary:    "Understand the math and practice behind supervised and unsupervised learning.",
		Syllabus: []string{
			"Linear models",
			"Trees and ensembles",
			"Neural networks",
			"Model evaluation",
		},
	},
	{
		ID:         "ui-ux-design",
		Title:      "UI/UX Design Masterclass",
		Instructor: "Olivia Brown",
		Category:   "Design",
		Level:      "Beginner",
		Duration:   "24 hours",
		Lessons:    130,
		Rating:     4.6,
		Students:   54000,
		Price:      79,
		Summary:    "Design interfaces people love, from research and wireframes to polished prototypes.",
		Syllabus: []string{
			"Design thinking",
			"User research",
			"Wireframing",
			"Visual design",
			"Prototyping and testing",
		},
	},
	{
		ID:         "digital-marketing",
		Title:      "Digital Marketing Strategy",
		Instructor: "James Wilson",
		Category:   "Marketing",
		Level:      "Beginner",
		Duration:   "18 hours",
		Lessons:    95,
		Rating:     4.5,
		Students:   37000,
		Price:      69,
		Summary:    "Plan and run campaigns across search, social and email with measurable results.",
		Syllabus: []string{
			"Marketing fundamentals",
			"Search engine optimization",
			"Social media campaigns",
			"Email marketing",
			"Analytics",
		},
	},
}
