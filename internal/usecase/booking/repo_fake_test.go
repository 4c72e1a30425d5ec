package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	domain "github.com/kroppform/salon-scheduler/internal/domain/booking"
	"github.com/kroppform/salon-scheduler/internal/httperr"
	"github.com/kroppform/salon-scheduler/internal/models"
)

// fakeRepo is an in-memory Repository. The mutex makes CreateBookingIfFree a
// single serialization point, mirroring the transactional guarantee of the
// real implementation, so concurrent reserve tests exercise the same
// exactly-one-winner contract.
type fakeRepo struct {
	mu sync.Mutex

	salons   map[uint]*models.Salon
	services map[uint]*models.Service
	hours    []models.BusinessHours

	customers []*models.Customer
	bookings  []*models.Booking

	nextCustomerID uint
	nextBookingID  uint

	failCustomer bool
	commitDelay  time.Duration
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		salons:   map[uint]*models.Salon{},
		services: map[uint]*models.Service{},
	}
}

func (r *fakeRepo) addSalon(s models.Salon) {
	r.salons[s.ID] = &s
}

func (r *fakeRepo) addService(s models.Service) {
	r.services[s.ID] = &s
}

func (r *fakeRepo) GetSalonByID(_ context.Context, id uint) (*models.Salon, error) {
	s, ok := r.salons[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return s, nil
}

func (r *fakeRepo) GetService(_ context.Context, salonID, serviceID uint) (*models.Service, error) {
	s, ok := r.services[serviceID]
	if !ok || s.SalonID != salonID {
		return nil, errors.New("record not found")
	}
	return s, nil
}

func (r *fakeRepo) GetWeekSchedule(_ context.Context, _ uint) (domain.WeekSchedule, error) {
	return domain.NewWeekSchedule(r.hours), nil
}

func (r *fakeRepo) ResolveCustomer(_ context.Context, salonID uint, name, phone, email string) (*models.Customer, error) {
	if r.failCustomer {
		return nil, errors.New("customer store unavailable")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.customers {
		if c.SalonID == salonID && c.Phone == phone {
			c.Name = name
			c.Email = email
			return c, nil
		}
	}

	r.nextCustomerID++
	c := &models.Customer{
		ID:      r.nextCustomerID,
		SalonID: salonID,
		Name:    name,
		Phone:   phone,
		Email:   email,
	}
	r.customers = append(r.customers, c)
	return c, nil
}

func (r *fakeRepo) CreateBookingIfFree(ctx context.Context, b *models.Booking) error {
	if r.commitDelay > 0 {
		select {
		case <-time.After(r.commitDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.bookings {
		if existing.SalonID != b.SalonID || existing.Date != b.Date {
			continue
		}
		if existing.Status == string(domain.StatusCancelled) {
			continue
		}
		if existing.StartTime.Before(b.EndTime) && existing.EndTime.After(b.StartTime) {
			return httperr.ErrBusiness("slot_taken")
		}
	}

	r.nextBookingID++
	b.ID = r.nextBookingID
	r.bookings = append(r.bookings, b)
	return nil
}

func (r *fakeRepo) ListBookedIntervals(_ context.Context, salonID uint, date string) ([]domain.Interval, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Interval
	for _, b := range r.bookings {
		if b.SalonID != salonID || b.Date != date {
			continue
		}
		if !domain.Occupies(domain.Status(b.Status)) {
			continue
		}
		start := b.StartTime.Hour()*60 + b.StartTime.Minute()
		end := b.EndTime.Hour()*60 + b.EndTime.Minute()
		out = append(out, domain.Interval{StartMin: start, EndMin: end})
	}
	return out, nil
}

func (r *fakeRepo) GetBooking(_ context.Context, salonID, bookingID uint) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.SalonID == salonID && b.ID == bookingID {
			return b, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) UpdateBooking(_ context.Context, _ *models.Booking) error {
	return nil
}

func (r *fakeRepo) ListBookingsForPeriod(_ context.Context, salonID uint, start, end time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if b.SalonID != salonID {
			continue
		}
		if b.StartTime.Before(start) || !b.StartTime.Before(end) {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}
