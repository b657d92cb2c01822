package repository

import (
	"fmt"
	"math"

	"kinovzor/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Stats summarises a movie's ratings. Average is nil when there are none.
type Stats struct {
	Count   int64    `json:"count"`
	Average *float64 `json:"average"`
}

type statsRow struct {
	Count   int64
	Average *float64
}

// UpsertRating records a user's rating for a movie, replacing any earlier value.
// The insert and the conflict update are one statement against the
// (movie_id, user_id) unique index, so concurrent calls cannot create duplicates.
func UpsertRating(db *gorm.DB, movieID, userID uint, value float64) (models.Rating, error) {
	var stored models.Rating
	err := db.Transaction(func(tx *gorm.DB) error {
		rating := models.Rating{
			MovieID: movieID,
			UserID:  userID,
			Value:   value,
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "movie_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&rating).Error
		if err != nil {
			return err
		}

		return tx.Where("movie_id = ? AND user_id = ?", movieID, userID).First(&stored).Error
	})
	if err != nil {
		return models.Rating{}, fmt.Errorf("upsert rating: %w", err)
	}
	return stored, nil
}

func ListMovieRatings(db *gorm.DB, movieID uint) ([]models.Rating, error) {
	ratings := []models.Rating{}
	if err := db.Where("movie_id = ?", movieID).Order("id DESC").Find(&ratings).Error; err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	return ratings, nil
}

// RatingStats counts a movie's ratings and averages them to one decimal place.
func RatingStats(db *gorm.DB, movieID uint) (Stats, error) {
	var row statsRow
	err := db.Model(&models.Rating{}).
		Select("COUNT(id) AS count, AVG(value) AS average").
		Where("movie_id = ?", movieID).
		Scan(&row).Error
	if err != nil {
		return Stats{}, fmt.Errorf("rating stats: %w", err)
	}

	stats := Stats{Count: row.Count}
	if row.Count > 0 && row.Average != nil {
		avg := roundOne(*row.Average)
		stats.Average = &avg
	}
	return stats, nil
}

// roundOne rounds half to even, so 1.25 becomes 1.2.
func roundOne(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}
