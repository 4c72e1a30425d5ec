package dto

import "time"

type BookingListDTO struct {
	ID           uint      `json:"id"`
	Reference    string    `json:"reference"`
	Date         string    `json:"date"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       string    `json:"status"`
	PriceSek     int       `json:"price_sek"`
	BookedOnline bool      `json:"booked_online"`
	CustomerName string    `json:"customer_name"`
	ServiceName  string    `json:"service_name"`
}
