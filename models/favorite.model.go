package models

import "time"

type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MovieID   uint      `gorm:"not null;uniqueIndex:idx_favorites_movie_user" json:"movie_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_favorites_movie_user;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	Movie *Movie `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE" json:"-"`
	User  *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
