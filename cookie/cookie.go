package cookie

import (
	"github.com/gofiber/fiber/v2"

	"github.com/learnpath/site/config"
)

// GetBillingPeriod returns the billing period chosen earlier in this browser
// session, or "" if none.
func GetBillingPeriod(c *fiber.Ctx) string {
	return c.Cookies(config.BillingCookie)
}

// SetBillingPeriod stores period in a session cookie. No MaxAge, so the
// browser drops it when the session ends.
func SetBillingPeriod(c *fiber.Ctx, period string) {
	c.Cookie(&fiber.Cookie{
		Name:        config.BillingCookie,
		Value:       period,
		HTTPOnly:    true,
		Secure:      c.Protocol() == "https",
		Path:        "/",
		SameSite:    "Strict",
		SessionOnly: true,
	})
}
