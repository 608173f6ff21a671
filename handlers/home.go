package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/learnpath/site/ui"
)

const featuredCount = 3

func HandleHome(c *fiber.Ctx) error {
	list, err := courses.Courses(c.UserContext())
	if err != nil {
		log.Warn().Err(err).Msg("featured courses unavailable")
		return render(c, ui.HomePage(c.Path(), nil, true))
	}
	if len(list) > featuredCount {
		list = list[:featuredCount]
	}
	return render(c, ui.HomePage(c.Path(), list, false))
}
