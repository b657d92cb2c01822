package userController

import (
	"errors"
	"kinovzor/database"
	"kinovzor/middleware"
	"kinovzor/repository"
	userValidator "kinovzor/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func Register(c *fiber.Ctx) error {
	reqData := c.Locals("validatedRequest").(*userValidator.RegisterRequest)
	db := database.Database.Db.WithContext(c.UserContext())

	// Check if email already exists
	_, found, err := repository.FindUserByEmail(db, reqData.Email)
	if err != nil {
		return middleware.ServerErrorResponse(c, "Failed to register user!", err)
	}
	if found {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email already exists", nil)
	}

	user, err := repository.CreateUser(db, reqData.Email, reqData.Password, reqData.Username)
	if errors.Is(err, repository.ErrEmailTaken) {
		// lost a race with a concurrent registration
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email already exists", nil)
	}
	if err != nil {
		return middleware.ServerErrorResponse(c, "Failed to register user!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User registered successfully.", user)
}

// Login checks the stored password as-is; there is no session or token.
func Login(c *fiber.Ctx) error {
	reqData := c.Locals("validatedRequest").(*userValidator.LoginRequest)
	db := database.Database.Db.WithContext(c.UserContext())

	user, found, err := repository.FindUserByEmail(db, reqData.Email)
	if err != nil {
		return middleware.ServerErrorResponse(c, "Failed to login!", err)
	}
	if !found || user.Password != reqData.Password {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", user)
}

func Me(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	db := database.Database.Db.WithContext(c.UserContext())

	user, found, err := repository.FindUserByID(db, userId)
	if err != nil {
		return middleware.ServerErrorResponse(c, "Failed to fetch user!", err)
	}
	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched!", user)
}

// Favorites lists the movies a user has favorited. An unknown user simply has none.
func Favorites(c *fiber.Ctx) error {
	userId := c.Locals("id").(uint)
	db := database.Database.Db.WithContext(c.UserContext())

	movies, err := repository.ListUserFavorites(db, userId)
	if err != nil {
		return middleware.ServerErrorResponse(c, "Failed to fetch favorites!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Favorites fetched!", movies)
}
