package movieController

import (
	"kinovzor/database"
	"kinovzor/middleware"
	"kinovzor/repository"
	movieValidator "kinovzor/validators/movieValidator"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListMovies returns the catalogue filtered by genre and ordered by the requested sort
func ListMovies(c *fiber.Ctx) error {
	reqData := c.Locals("validatedQuery").(*movieValidator.ListMoviesQuery)
	db := database.Database.Db.WithContext(c.UserContext())

	movies, err := repository.ListMovies(db, repository.MovieFilter{
		Genre: reqData.Genre,
		Sort:  reqData.Sort,
	})
	if err != nil {
		return middleware.ServerErrorResponse(c, "Failed to fetch movies!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Movies fetched!", movies)
}

func GetMovie(c *fiber.Ctx) error {
	movieId := c.Locals("id").(uint)
	db := database.Database.Db.WithContext(c.UserContext())

	movie, found, err := repository.FindMovieByID(db, movieId)
	if err != nil {
		return middleware.ServerErrorResponse(c, "Failed to fetch movie!", err)
	}
	if !found {
		return movieNotFound(c)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Movie fetched!", movie)
}

// CreateMovie adds a movie to the catalogue. Anyone may call it.
func CreateMovie(c *fiber.Ctx) error {
	reqData := c.Locals("validatedRequest").(*movieValidator.CreateMovieRequest)
	db := database.Database.Db.WithContext(c.UserContext())

	movie, err := repository.CreateMovie(db, repository.MovieInput{
		Title:       reqData.Title,
		Description: reqData.Description,
		Genre:       reqData.Genre,
		Year:        reqData.Year,
		PosterURL:   reqData.PosterURL,
	})
	if err != nil {
		return middleware.ServerErrorResponse(c, "Failed to create movie!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Movie created successfully.", movie)
}

func movieNotFound(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Movie not found", nil)
}

func userNotFound(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
}

// checkMovieAndUser answers 404 when either the movie or the acting user is
// missing. It returns handled=true when a response has already been written.
func checkMovieAndUser(c *fiber.Ctx, db *gorm.DB, movieId uint, userId *uint) (handled bool, err error) {
	exists, err := repository.MovieExists(db, movieId)
	if err != nil {
		return true, middleware.ServerErrorResponse(c, "Failed to fetch movie!", err)
	}
	if !exists {
		return true, movieNotFound(c)
	}

	if userId == nil {
		return false, nil
	}
	_, found, err := repository.FindUserByID(db, *userId)
	if err != nil {
		return true, middleware.ServerErrorResponse(c, "Failed to fetch user!", err)
	}
	if !found {
		return true, userNotFound(c)
	}
	return false, nil
}

// optionalUserId returns the acting user when the request carried one.
func optionalUserId(c *fiber.Ctx) *uint {
	if userId, ok := c.Locals("userId").(uint); ok {
		return &userId
	}
	return nil
}
