package healthRoutes

import (
	healthController "kinovzor/controllers/healthController"

	"github.com/gofiber/fiber/v2"
)

func SetupHealthRoutes(api fiber.Router) {
	api.Get("/health", healthController.Health)
}
