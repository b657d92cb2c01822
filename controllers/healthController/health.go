package healthController

import (
	"kinovzor/database"
	"kinovzor/middleware"

	"github.com/gofiber/fiber/v2"
)

// Health reports whether the database pool answers a ping
func Health(c *fiber.Ctx) error {
	if err := database.Ping(c.UserContext()); err != nil {
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Database unavailable", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "OK", nil)
}
