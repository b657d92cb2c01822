package userRoutes

import (
	userController "kinovzor/controllers/userControllers"
	"kinovzor/validators"
	userValidator "kinovzor/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(api fiber.Router) {
	userGroup := api.Group("/users")

	userGroup.Post("/register", userValidator.Register(), userController.Register)
	userGroup.Post("/login", userValidator.Login(), userController.Login)
	userGroup.Get("/me", validators.UserID(true), userController.Me)
	userGroup.Get("/:id/favorites", validators.ID("id"), userController.Favorites)
}
