package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint `json:"customer_id"`
	BarberID   uint `json:"barber_id"`
	ServiceID  uint `json:"service_id"`

	AppointmentDate string `gorm:"size:10" json:"appointment_date"`
	AppointmentTime string `gorm:"size:5" json:"appointment_time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
