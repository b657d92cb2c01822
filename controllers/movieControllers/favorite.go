package movieController

import (
	"errors"
	"kinovzor/database"
	"kinovzor/middleware"
	"kinovzor/repository"

	"github.com/gofiber/fiber/v2"
)

func AddFavorite(c *fiber.Ctx) error {
	movieId := c.Locals("id").(uint)
	userId := c.Locals("userId").(uint)
	db := database.Database.Db.WithContext(c.UserContext())

	if handled, err := checkMovieAndUser(c, db, movieId, &userId); handled {
		return err
	}

	err := repository.AddFavorite(db, movieId, userId)
	if errors.Is(err, repository.ErrAlreadyFavorite) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Already in favorites", nil)
	}
	if err != nil {
		return middleware.ServerErrorResponse(c, "Failed to add favorite!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Added to favorites.", fiber.Map{"status": "added to favorites"})
}

func RemoveFavorite(c *fiber.Ctx) error {
	movieId := c.Locals("id").(uint)
	userId := c.Locals("userId").(uint)
	db := database.Database.Db.WithContext(c.UserContext())

	removed, err := repository.RemoveFavorite(db, movieId, userId)
	if err != nil {
		return middleware.ServerErrorResponse(c, "Failed to remove favorite!", err)
	}
	if !removed {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Not in favorites", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Removed from favorites.", fiber.Map{"status": "removed from favorites"})
}

func FavoriteStatus(c *fiber.Ctx) error {
	movieId := c.Locals("id").(uint)
	userId := c.Locals("userId").(uint)
	db := database.Database.Db.WithContext(c.UserContext())

	isFavorite, err := repository.IsFavorite(db, movieId, userId)
	if err != nil {
		return middleware.ServerErrorResponse(c, "Failed to check favorite!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Favorite status fetched!", fiber.Map{"favorite": isFavorite})
}
