package models

import "time"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint `json:"customer_id"`
	BarberID   uint `json:"barber_id"`

	Rating     int    `json:"rating"`
	ReviewText string `gorm:"size:1000" json:"review_text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
