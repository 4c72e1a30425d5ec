package booking

import (
	"context"
	"time"

	"github.com/kroppform/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		salonID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Schedule --------
	GetWeekSchedule(
		ctx context.Context,
		salonID uint,
	) (WeekSchedule, error)

	// -------- Customer (atomic upsert keyed on phone) --------
	ResolveCustomer(
		ctx context.Context,
		salonID uint,
		name string,
		phone string,
		email string,
	) (*models.Customer, error)

	// -------- Booking (atomic check-and-commit) --------

	// CreateBookingIfFree commits b only if no non-cancelled booking on the
	// same salon and date overlaps [StartTime, EndTime). The check and the
	// insert are a single serialization point with respect to concurrent
	// callers; a lost race surfaces as ErrBusiness("slot_taken").
	CreateBookingIfFree(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookedIntervals(
		ctx context.Context,
		salonID uint,
		date string,
	) ([]Interval, error)

	// -------- Booking (state change) --------
	GetBooking(
		ctx context.Context,
		salonID uint,
		bookingID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookingsForPeriod(
		ctx context.Context,
		salonID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)
}
