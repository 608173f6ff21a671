package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/learnpath/site/ui"
)

func HandleBlog(c *fiber.Ctx) error {
	list, err := posts.Posts(c.UserContext())
	if err != nil {
		log.Warn().Err(err).Msg("blog posts unavailable")
		return renderStatus(c, fiber.StatusServiceUnavailable, ui.BlogPage(c.Path(), nil, true))
	}
	return render(c, ui.BlogPage(c.Path(), list, false))
}
