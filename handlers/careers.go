package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/learnpath/site/careers"
	"github.com/learnpath/site/disclosure"
	"github.com/learnpath/site/ui"
)

func careerState(c *fiber.Ctx, paths []careers.Path) *disclosure.List {
	d := careers.NewDisclosure(paths)
	d.Decode(c.Query("open"))
	return d
}

// courseTitles maps catalog ids to titles for career path links. A failing
// catalog leaves the map empty and links fall back to ids.
func courseTitles(c *fiber.Ctx) map[string]string {
	titles := map[string]string{}
	list, err := courses.Courses(c.UserContext())
	if err != nil {
		log.Warn().Err(err).Msg("course titles unavailable")
		return titles
	}
	for _, course := range list {
		titles[course.ID] = course.Title
	}
	return titles
}

func HandleCareers(c *fiber.Ctx) error {
	paths := careers.Paths()
	return render(c, ui.CareersPage(c.Path(), paths, careerState(c, paths), courseTitles(c)))
}

// HandleCareerToggle flips one career path and returns just that path.
func HandleCareerToggle(c *fiber.Ctx) error {
	id := c.Params("id")
	path, ok := careers.Lookup(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "No such career path")
	}
	d := careerState(c, careers.Paths())
	d.Toggle(id)
	return render(c, ui.CareerItem(path, d.IsExpanded(id), courseTitles(c)))
}
