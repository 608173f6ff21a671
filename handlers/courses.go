package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/learnpath/site/catalog"
	"github.com/learnpath/site/toggle"
	"github.com/learnpath/site/ui"
)

// categorySelection builds the category filter from the catalog and selects
// the requested category when it exists.
func categorySelection(c *fiber.Ctx, list []catalog.Course) *toggle.Group[string] {
	categories := catalog.Categories(list)
	sel := toggle.New(catalog.AllCategories, categories...)
	if want := c.Query("category"); sel.Has(want) {
		sel.Select(want)
	}
	return sel
}

// HandleCourses displays the course catalog
func HandleCourses(c *fiber.Ctx) error {
	list, err := courses.Courses(c.UserContext())
	if err != nil {
		log.Warn().Err(err).Msg("course catalog unavailable")
		return renderStatus(c, fiber.StatusServiceUnavailable, ui.CoursesUnavailablePage(c.Path()))
	}
	return render(c, ui.CoursesPage(c.Path(), categorySelection(c, list), list))
}

// HandleCourseFilter returns the category toggle and course grid fragment
func HandleCourseFilter(c *fiber.Ctx) error {
	list, err := courses.Courses(c.UserContext())
	if err != nil {
		log.Warn().Err(err).Msg("course catalog unavailable")
		return renderStatus(c, fiber.StatusServiceUnavailable,
			ui.Unavailable("Courses unavailable", "We couldn't load the course catalog right now."))
	}
	return render(c, ui.CourseResults(categorySelection(c, list), list))
}

// HandleCourseDetail passes the opaque id to the catalog and renders the
// unavailable state when the lookup fails.
func HandleCourseDetail(c *fiber.Ctx) error {
	id := c.Params("id")
	course, err := courses.Course(c.UserContext(), id)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return renderStatus(c, fiber.StatusNotFound, ui.CourseUnavailablePage(c.Path()))
	case err != nil:
		log.Warn().Err(err).Str("course", id).Msg("course lookup failed")
		return renderStatus(c, fiber.StatusServiceUnavailable, ui.CourseUnavailablePage(c.Path()))
	}
	return render(c, ui.CourseDetailPage(c.Path(), course))
}
