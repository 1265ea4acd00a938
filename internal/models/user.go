package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Username string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`

	// Only the bcrypt hash is ever stored, and it never leaves the server.
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	Role        string `gorm:"size:20;default:'customer'" json:"role"`
	ProfileInfo string `gorm:"size:255" json:"profile_info"`
	PhoneNumber string `gorm:"size:20" json:"phone_number"`
	Address     string `gorm:"size:255" json:"address"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
