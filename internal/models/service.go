package models

import "time"

// Closed category set. Anything that doesn't fit gets CategoryOther;
// unknown tags are rejected at the API boundary.
const (
	CategoryMassage     = "massage"
	CategoryAvslappning = "avslappning"
	CategoryOther       = "other"
)

func IsServiceCategory(c string) bool {
	switch c {
	case CategoryMassage, CategoryAvslappning, CategoryOther:
		return true
	}
	return false
}

type Service struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	DurationMin int    `json:"duration_min"`

	// Price in öre (minor currency unit), frozen onto bookings at commit.
	PriceSek int `json:"price_sek"`

	Category   string `gorm:"size:50" json:"category"`
	IsWellness bool   `gorm:"default:false" json:"is_wellness"`
	SortOrder  int    `gorm:"default:0" json:"sort_order"`
	Active     bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
