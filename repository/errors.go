package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email already exists")
	// ErrAlreadyFavorite is returned when the (movie, user) pair is already a favorite.
	ErrAlreadyFavorite = errors.New("already in favorites")
)

// first runs a First query and folds gorm.ErrRecordNotFound into found=false.
func first[T any](query *gorm.DB) (T, bool, error) {
	var record T
	err := query.First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return record, false, nil
	}
	if err != nil {
		return record, false, err
	}
	return record, true, nil
}

// isUniqueViolation recognises duplicate-key errors across the supported drivers.
// gorm translates them only when TranslateError is enabled, so the driver text is
// checked as well.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || // sqlite
		strings.Contains(msg, "duplicate key value") || // postgres
		strings.Contains(msg, "duplicate entry") // mysql
}
