package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID    uint    `json:"barber_id"`
	ServiceName string  `gorm:"size:100;not null" json:"service_name"`
	Price       float64 `json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
