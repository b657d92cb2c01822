package models

import "time"

// Rating is unique per (movie, user); the composite index backs the upsert.
type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MovieID   uint      `gorm:"not null;uniqueIndex:idx_ratings_movie_user" json:"movie_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_ratings_movie_user;index" json:"user_id"`
	Value     float64   `gorm:"not null;check:chk_ratings_value,value >= 1 AND value <= 5" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Movie *Movie `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE" json:"-"`
	User  *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
