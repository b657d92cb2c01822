package repository

import (
	"fmt"

	"kinovzor/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AddFavorite bookmarks a movie for a user. It returns ErrAlreadyFavorite
// instead of inserting a second row for the same pair.
func AddFavorite(db *gorm.DB, movieID, userID uint) error {
	favorite := models.Favorite{MovieID: movieID, UserID: userID}
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "movie_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(&favorite)
	if result.Error != nil {
		return fmt.Errorf("add favorite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAlreadyFavorite
	}
	return nil
}

// RemoveFavorite deletes the pair and reports whether it existed.
func RemoveFavorite(db *gorm.DB, movieID, userID uint) (bool, error) {
	result := db.Where("movie_id = ? AND user_id = ?", movieID, userID).Delete(&models.Favorite{})
	if result.Error != nil {
		return false, fmt.Errorf("remove favorite: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func IsFavorite(db *gorm.DB, movieID, userID uint) (bool, error) {
	var count int64
	err := db.Model(&models.Favorite{}).
		Where("movie_id = ? AND user_id = ?", movieID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListUserFavorites returns the movies a user has favorited, most recent first.
func ListUserFavorites(db *gorm.DB, userID uint) ([]models.Movie, error) {
	movies := []models.Movie{}
	err := db.Model(&models.Movie{}).
		Select("movies.*").
		Joins("JOIN favorites ON favorites.movie_id = movies.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.id DESC").
		Find(&movies).Error
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return movies, nil
}
