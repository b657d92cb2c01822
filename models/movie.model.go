package models

import "time"

type Movie struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Genre       string    `gorm:"type:varchar(100);not null;index" json:"genre"`
	Year        int       `gorm:"not null" json:"year"`
	PosterURL   *string   `gorm:"type:varchar(500)" json:"poster_url"`
	CreatedAt   time.Time `json:"created_at"`
}
