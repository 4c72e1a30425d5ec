package models

import "time"

// One row per weekday (0=Sunday .. 6=Saturday). A closed weekday keeps its
// row with Closed=true; OpenTime/CloseTime are "HH:MM".
type BusinessHours struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index:idx_salon_weekday,unique" json:"salon_id"`

	Weekday int `gorm:"index:idx_salon_weekday,unique" json:"weekday"`

	OpenTime  string `gorm:"size:5" json:"open_time"`
	CloseTime string `gorm:"size:5" json:"close_time"`
	Closed    bool   `gorm:"default:false" json:"closed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
