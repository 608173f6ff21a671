package handlers

import (
	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"
)

// render sets the content type to HTML and renders the component.
func render(c *fiber.Ctx, component g.Node) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Response().BodyWriter())
}

// renderStatus renders component with a non-200 status.
func renderStatus(c *fiber.Ctx, status int, component g.Node) error {
	c.Status(status)
	return render(c, component)
}
