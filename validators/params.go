package validators

import (
	"kinovzor/middleware"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ID parses a positive integer path parameter and stores it in c.Locals under the same name.
func ID(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params(name), 10, 0)
		if err != nil || id == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				name: name + " must be a positive integer!",
			})
		}

		c.Locals(name, uint(id))
		return c.Next()
	}
}

// UserID reads the acting user from the user_id query parameter into c.Locals("userId").
// When required is false a missing parameter is allowed and nothing is stored.
func UserID(required bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Query("user_id")
		if raw == "" && !required {
			return c.Next()
		}

		id, err := strconv.ParseUint(raw, 10, 0)
		if err != nil || id == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"user_id": "user_id must be a positive integer!",
			})
		}

		c.Locals("userId", uint(id))
		return c.Next()
	}
}
