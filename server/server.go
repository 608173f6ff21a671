package server

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/learnpath/site/config"
	h "github.com/learnpath/site/handlers"
	"github.com/learnpath/site/static"
)

// New builds the fiber app with middleware and the routing table.
func New(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: h.CustomErrorHandler,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))

	// Static files and utility are registered ahead of the page limiter
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   http.FS(static.Files),
		MaxAge: 3600,
	}))
	app.Get("/health", h.HandleHealth)

	// Fragments
	fragments := h.NewFragmentRateLimiter()
	app.Get("/courses/filter", fragments, h.HandleCourseFilter)
	app.Get("/careers/paths/:id/toggle", fragments, h.HandleCareerToggle)
	app.Get("/pricing/plans", fragments, h.HandlePricingPlans)
	app.Get("/pricing/faq/:id/toggle", fragments, h.HandleFaqToggle)
	app.Get("/auth/form", fragments, h.HandleAuthForm)

	api := app.Group("/api")
	api.Post("/auth/validate", h.NewAuthRateLimiter(), h.HandleAuthValidate)

	// Pages
	app.Use(h.NewRateLimiter(cfg.RateLimit))
	app.Get("/sitemap.xml", h.HandleSitemap)
	app.Get("/", h.HandleHome)
	app.Get("/courses", h.HandleCourses)
	app.Get("/courses/:id", h.HandleCourseDetail)
	app.Get("/blog", h.HandleBlog)
	app.Get("/careers", h.HandleCareers)
	app.Get("/pricing", h.HandlePricing)
	app.Get("/auth", h.HandleAuth)

	return app
}
