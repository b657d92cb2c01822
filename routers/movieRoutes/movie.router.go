package movieRoutes

import (
	movieController "kinovzor/controllers/movieControllers"
	"kinovzor/validators"
	movieValidator "kinovzor/validators/movieValidator"

	"github.com/gofiber/fiber/v2"
)

// SetupMovieRoutes sets up catalogue, review, rating and favorite routes
func SetupMovieRoutes(api fiber.Router) {
	movieGroup := api.Group("/movies")

	// Catalogue
	movieGroup.Get("/", movieValidator.ListMovies(), movieController.ListMovies)
	movieGroup.Post("/", movieValidator.CreateMovie(), movieController.CreateMovie)
	movieGroup.Get("/:id", validators.ID("id"), movieController.GetMovie)

	// Reviews
	movieGroup.Post("/:id/reviews", validators.ID("id"), validators.UserID(false), movieValidator.CreateReview(), movieController.CreateReview)
	movieGroup.Get("/:id/reviews", validators.ID("id"), movieValidator.ListReviews(), movieController.ListReviews)

	// Ratings
	movieGroup.Post("/:id/ratings", validators.ID("id"), validators.UserID(true), movieValidator.RateMovie(), movieController.RateMovie)
	movieGroup.Get("/:id/ratings", validators.ID("id"), movieController.ListRatings)
	movieGroup.Get("/:id/rating-stats", validators.ID("id"), movieController.RatingStats)

	// Favorites
	movieGroup.Post("/:id/favorites", validators.ID("id"), validators.UserID(true), movieController.AddFavorite)
	movieGroup.Get("/:id/favorites", validators.ID("id"), validators.UserID(true), movieController.FavoriteStatus)
	movieGroup.Delete("/:id/favorites", validators.ID("id"), validators.UserID(true), movieController.RemoveFavorite)

	reviewGroup := api.Group("/reviews")

	// Moderation
	reviewGroup.Put("/:id/approve", validators.ID("id"), movieController.ApproveReview)
	reviewGroup.Delete("/:id", validators.ID("id"), movieController.DeleteReview)
}
