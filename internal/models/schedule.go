package models

import "time"

// BarberSchedule is a barber's availability window for one weekday.
type BarberSchedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID  uint `json:"barber_id"`
	DayOfWeek int  `json:"day_of_week"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
