package movieValidator

import (
	"kinovzor/middleware"
	"kinovzor/validators"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type CreateMovieRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description" validate:"required"`
	Genre       string  `json:"genre" validate:"required,max=100"`
	Year        int     `json:"year" validate:"required,gte=1888,lte=2100"`
	PosterURL   *string `json:"poster_url" validate:"omitempty,url,max=500"`
}

type ListMoviesQuery struct {
	Genre string `query:"genre"`
	Sort  string `query:"sort" validate:"omitempty,oneof=popular title year rating"`
}

type CreateReviewRequest struct {
	Text   string `json:"text" validate:"required,max=5000"`
	Rating *int   `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

type ListReviewsQuery struct {
	ApprovedOnly *bool `query:"approved_only"`
}

type RateMovieRequest struct {
	Value float64 `json:"value" validate:"required,gte=1,lte=5"`
}

// CreateMovie validator middleware
func CreateMovie() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateMovieRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Genre = strings.TrimSpace(reqData.Genre)
		if reqData.PosterURL != nil && strings.TrimSpace(*reqData.PosterURL) == "" {
			reqData.PosterURL = nil
		}

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRequest", reqData)
		return c.Next()
	}
}

// ListMovies validates the genre/sort query
func ListMovies() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ListMoviesQuery)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request query!", nil)
		}

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuery", reqData)
		return c.Next()
	}
}

// CreateReview validator middleware
func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateReviewRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		reqData.Text = strings.TrimSpace(reqData.Text)

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRequest", reqData)
		return c.Next()
	}
}

// ListReviews validates the approved_only flag, which defaults to true
func ListReviews() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ListReviewsQuery)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"approved_only": "approved_only must be a boolean!",
			})
		}
		if reqData.ApprovedOnly == nil {
			approvedOnly := true
			reqData.ApprovedOnly = &approvedOnly
		}

		c.Locals("validatedQuery", reqData)
		return c.Next()
	}
}

// RateMovie validator middleware
func RateMovie() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RateMovieRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRequest", reqData)
		return c.Next()
	}
}
