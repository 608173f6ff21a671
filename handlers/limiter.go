package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/learnpath/site/config"
)

// NewRateLimiter returns the global per-IP rate limiter.
func NewRateLimiter(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: config.ServerRateLimitExp,
	})
}

// NewFragmentRateLimiter limits htmx fragment requests per IP. It is separate
// from the page limiter so toggling keeps working after many page views.
func NewFragmentRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        config.FragmentRateLimitMax,
		Expiration: config.ServerRateLimitExp,
	})
}

// NewAuthRateLimiter is a strict rate limiter for form validation (per IP)
func NewAuthRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).
				SendString("Too many attempts. Please try again later.")
		},
	})
}
