package catalog

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a course id is unknown to the provider.
var ErrNotFound = errors.New("course not found")

// AllCategories is the filter option that shows every course.
const AllCategories = "All"

// Course is a catalog record as supplied by the content provider.
type Course struct {
	ID         string
	Title      string
	Instructor string
	Category   string
	Level      string
	Duration   string
	Lessons    int
	Rating     float64
	Students   int
	Price      int
	Summary    string
	Syllabus   []string
}

// Provider supplies catalog records. Records are assumed ready to render.
type Provider interface {
	Courses(ctx context.Context) ([]Course, error)
	Course(ctx context.Context, id string) (Course, error)
}

// Categories returns AllCategories followed by each distinct category in
// first-seen order.
func Categories(courses []Course) []string {
	out := []string{AllCategories}
	seen := map[string]bool{}
	for _, c := range courses {
		if c.Category == "" || seen[c.Category] {
			continue
		}
		seen[c.Category] = true
		out = append(out, c.Category)
	}
	return out
}

// Filter returns the courses in category, or all of them for AllCategories.
func Filter(courses []Course, category string) []Course {
	if category == AllCategories {
		return courses
	}
	var out []Course
	for _, c := range courses {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out
}
