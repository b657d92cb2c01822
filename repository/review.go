package repository

import (
	"fmt"

	"kinovzor/models"

	"gorm.io/gorm"
)

type ReviewInput struct {
	MovieID uint
	UserID  *uint
	Text    string
	Rating  *int
}

// CreateReview stores a new, unapproved review.
func CreateReview(db *gorm.DB, in ReviewInput) (models.Review, error) {
	review := models.Review{
		MovieID:  in.MovieID,
		UserID:   in.UserID,
		Text:     in.Text,
		Rating:   in.Rating,
		Approved: false,
	}
	if err := db.Create(&review).Error; err != nil {
		return models.Review{}, fmt.Errorf("create review: %w", err)
	}

	created, found, err := FindReviewByID(db, review.ID)
	if err != nil {
		return models.Review{}, err
	}
	if !found {
		return models.Review{}, fmt.Errorf("create review: row %d vanished after insert", review.ID)
	}
	return created, nil
}

func FindReviewByID(db *gorm.DB, id uint) (models.Review, bool, error) {
	return first[models.Review](db.Where("id = ?", id))
}

// ListMovieReviews returns a movie's reviews, newest first.
func ListMovieReviews(db *gorm.DB, movieID uint, approvedOnly bool) ([]models.Review, error) {
	query := db.Where("movie_id = ?", movieID)
	if approvedOnly {
		query = query.Where("approved = ?", true)
	}

	reviews := []models.Review{}
	if err := query.Order("created_at DESC").Order("id DESC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// ApproveReview sets the approval flag. It never clears it, so repeating the
// call is harmless.
func ApproveReview(db *gorm.DB, id uint) error {
	err := db.Model(&models.Review{}).
		Where("id = ?", id).
		Update("approved", true).Error
	if err != nil {
		return fmt.Errorf("approve review %d: %w", id, err)
	}
	return nil
}

// DeleteReview removes the review; a missing id is not an error.
func DeleteReview(db *gorm.DB, id uint) error {
	if err := db.Where("id = ?", id).Delete(&models.Review{}).Error; err != nil {
		return fmt.Errorf("delete review %d: %w", id, err)
	}
	return nil
}
