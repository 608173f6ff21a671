package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/learnpath/site/cache"
	"github.com/learnpath/site/db"
)

type healthResponse struct {
	Status   string        `json:"status"`
	Database string        `json:"database,omitempty"`
	Caches   []cache.Stats `json:"caches,omitempty"`
}

// HandleHealth returns the health status of the application
func HandleHealth(c *fiber.Ctx) error {
	health := healthResponse{Status: "ok", Caches: cacheStats()}

	// The catalog database is optional
	if db.Initialized() {
		if err := db.Get().PingContext(c.UserContext()); err != nil {
			health.Status = "unhealthy"
			health.Database = "down"
			c.Status(fiber.StatusServiceUnavailable)
		} else {
			health.Database = "up"
		}
	}

	return c.JSON(health)
}
