package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/learnpath/site/ui"
)

// CustomErrorHandler renders every unhandled error as the site error page.
func CustomErrorHandler(ctx *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError
	message := "An unexpected error occurred."

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", ctx.Path()).Int("status", code).Msg("request failed")
	}

	ctx.Status(code)
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ui.ErrorPage(code, message).Render(ctx)
}
