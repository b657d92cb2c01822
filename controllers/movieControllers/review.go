package movieController

import (
	"kinovzor/database"
	"kinovzor/middleware"
	"kinovzor/repository"
	movieValidator "kinovzor/validators/movieValidator"

	"github.com/gofiber/fiber/v2"
)

// CreateReview stores a review for a movie. It stays hidden until approved.
func CreateReview(c *fiber.Ctx) error {
	movieId := c.Locals("id").(uint)
	userId := optionalUserId(c)
	reqData := c.Locals("validatedRequest").(*movieValidator.CreateReviewRequest)
	db := database.Database.Db.WithContext(c.UserContext())

	if handled, err := checkMovieAndUser(c, db, movieId, userId); handled {
		return err
	}

	review, err := repository.CreateReview(db, repository.ReviewInput{
		MovieID: movieId,
		UserID:  userId,
		Text:    reqData.Text,
		Rating:  reqData.Rating,
	})
	if err != nil {
		return middleware.ServerErrorResponse(c, "Failed to submit review!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review submitted successfully! Pending approval.", review)
}

// ListReviews returns a movie's reviews, newest first
func ListReviews(c *fiber.Ctx) error {
	movieId := c.Locals("id").(uint)
	reqData := c.Locals("validatedQuery").(*movieValidator.ListReviewsQuery)
	db := database.Database.Db.WithContext(c.UserContext())

	reviews, err := repository.ListMovieReviews(db, movieId, *reqData.ApprovedOnly)
	if err != nil {
		return middleware.ServerErrorResponse(c, "Failed to fetch reviews!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched!", reviews)
}

func ApproveReview(c *fiber.Ctx) error {
	reviewId := c.Locals("id").(uint)
	db := database.Database.Db.WithContext(c.UserContext())

	_, found, err := repository.FindReviewByID(db, reviewId)
	if err != nil {
		return middleware.ServerErrorResponse(c, "Failed to fetch review!", err)
	}
	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found", nil)
	}

	if err := repository.ApproveReview(db, reviewId); err != nil {
		return middleware.ServerErrorResponse(c, "Failed to approve review!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review approved.", fiber.Map{"status": "approved"})
}

func DeleteReview(c *fiber.Ctx) error {
	reviewId := c.Locals("id").(uint)
	db := database.Database.Db.WithContext(c.UserContext())

	// the delete itself is a no-op for unknown ids, so check first
	_, found, err := repository.FindReviewByID(db, reviewId)
	if err != nil {
		return middleware.ServerErrorResponse(c, "Failed to fetch review!", err)
	}
	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found", nil)
	}

	if err := repository.DeleteReview(db, reviewId); err != nil {
		return middleware.ServerErrorResponse(c, "Failed to delete review!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review deleted.", fiber.Map{"status": "deleted"})
}
