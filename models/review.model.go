package models

import "time"

// Review starts unapproved; only an explicit approve flips Approved to true.
// UserID is nil for anonymous reviews and Rating is an optional 1–5 star score.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MovieID   uint      `gorm:"not null;index" json:"movie_id"`
	UserID    *uint     `gorm:"index" json:"user_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Rating    *int      `gorm:"check:chk_reviews_rating,rating >= 1 AND rating <= 5" json:"rating"`
	Approved  bool      `gorm:"not null;default:false" json:"approved"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	Movie *Movie `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE" json:"-"`
	User  *User  `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
}
