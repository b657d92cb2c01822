package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"` // stored as given, never serialized
	Username  string    `gorm:"type:varchar(100);not null" json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
