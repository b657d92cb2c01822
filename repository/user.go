package repository

import (
	"fmt"

	"kinovzor/models"

	"gorm.io/gorm"
)

// CreateUser inserts a user and returns the stored row.
func CreateUser(db *gorm.DB, email, password, username string) (models.User, error) {
	user := models.User{
		Email:    email,
		Password: password,
		Username: username,
	}
	if err := db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, fmt.Errorf("create user: %w", err)
	}

	created, found, err := FindUserByID(db, user.ID)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, fmt.Errorf("create user: row %d vanished after insert", user.ID)
	}
	return created, nil
}

func FindUserByID(db *gorm.DB, id uint) (models.User, bool, error) {
	return first[models.User](db.Where("id = ?", id))
}

func FindUserByEmail(db *gorm.DB, email string) (models.User, bool, error) {
	return first[models.User](db.Where("email = ?", email))
}
