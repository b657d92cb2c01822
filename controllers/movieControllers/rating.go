package movieController

import (
	"kinovzor/database"
	"kinovzor/middleware"
	"kinovzor/repository"
	movieValidator "kinovzor/validators/movieValidator"

	"github.com/gofiber/fiber/v2"
)

// RateMovie creates the user's rating or replaces the previous value
func RateMovie(c *fiber.Ctx) error {
	movieId := c.Locals("id").(uint)
	userId := c.Locals("userId").(uint)
	reqData := c.Locals("validatedRequest").(*movieValidator.RateMovieRequest)
	db := database.Database.Db.WithContext(c.UserContext())

	if handled, err := checkMovieAndUser(c, db, movieId, &userId); handled {
		return err
	}

	rating, err := repository.UpsertRating(db, movieId, userId, reqData.Value)
	if err != nil {
		return middleware.ServerErrorResponse(c, "Failed to save rating!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rating saved.", rating)
}

func ListRatings(c *fiber.Ctx) error {
	movieId := c.Locals("id").(uint)
	db := database.Database.Db.WithContext(c.UserContext())

	if handled, err := checkMovieAndUser(c, db, movieId, nil); handled {
		return err
	}

	ratings, err := repository.ListMovieRatings(db, movieId)
	if err != nil {
		return middleware.ServerErrorResponse(c, "Failed to fetch ratings!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ratings fetched!", ratings)
}

// RatingStats reports count and average; average is null for unrated movies
func RatingStats(c *fiber.Ctx) error {
	movieId := c.Locals("id").(uint)
	db := database.Database.Db.WithContext(c.UserContext())

	stats, err := repository.RatingStats(db, movieId)
	if err != nil {
		return middleware.ServerErrorResponse(c, "Failed to compute rating stats!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rating stats fetched!", stats)
}
