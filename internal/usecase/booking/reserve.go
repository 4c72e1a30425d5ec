package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kroppform/salon-scheduler/internal/audit"
	"github.com/kroppform/salon-scheduler/internal/cache"
	domain "github.com/kroppform/salon-scheduler/internal/domain/booking"
	"github.com/kroppform/salon-scheduler/internal/httperr"
	"github.com/kroppform/salon-scheduler/internal/models"
	"github.com/kroppform/salon-scheduler/internal/timezone"
	"github.com/kroppform/salon-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type ReserveInput struct {
	SalonID uint

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	ServiceID uint

	Date  string // YYYY-MM-DD
	Time  string // HH:mm
	Notes string

	// Online reservations come from the public flow; staff-entered ones
	// from the secured API (UserID is then the acting staff member).
	Online bool
	UserID *uint
}

// ======================================================
// USE CASE
// ======================================================

// Reserve is the write path. It never trusts what the availability view
// showed the caller: end time is re-derived from the current service
// definition and the schedule and clock are re-validated before the atomic
// check-and-commit. Exactly one of two racing callers for overlapping
// intervals gets the booking; the other sees slot_taken.
type Reserve struct {
	repo  domain.Repository
	cache *cache.Availability
	audit *audit.Dispatcher

	// Bound on the wait for the commit serialization point.
	commitWait time.Duration
}

func NewReserve(
	repo domain.Repository,
	cache *cache.Availability,
	audit *audit.Dispatcher,
	commitWait time.Duration,
) *Reserve {
	if commitWait <= 0 {
		commitWait = 5 * time.Second
	}
	return &Reserve{
		repo:       repo,
		cache:      cache,
		audit:      audit,
		commitWait: commitWait,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Reserve) Execute(
	ctx context.Context,
	in ReserveInput,
) (*models.Booking, error) {

	if strings.TrimSpace(in.CustomerName) == "" || !validators.IsPhoneValid(in.CustomerPhone) {
		return nil, httperr.ErrBusiness("invalid_contact")
	}

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, httperr.ErrBusiness("salon_not_found")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(salon.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	svc, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if !svc.Active || svc.DurationMin <= 0 {
		return nil, httperr.ErrBusiness("out_of_policy")
	}

	// End is always derived from the current duration, never client input.
	end := start.Add(time.Duration(svc.DurationMin) * time.Minute)

	now := timezone.NowIn(salon.Timezone)
	if start.Before(now) {
		return nil, httperr.ErrBusiness("out_of_policy")
	}

	// Fresh schedule read: hours may have changed since the slot was shown.
	sched, err := uc.repo.GetWeekSchedule(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	startMin := start.Hour()*60 + start.Minute()
	endMin := startMin + svc.DurationMin
	if !sched.Contains(int(start.Weekday()), startMin, endMin) {
		return nil, httperr.ErrBusiness("out_of_policy")
	}

	customer, err := uc.repo.ResolveCustomer(
		ctx,
		in.SalonID,
		strings.TrimSpace(in.CustomerName),
		validators.NormalizePhone(in.CustomerPhone),
		strings.TrimSpace(in.CustomerEmail),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("customer_resolution_failed")
	}

	b := &models.Booking{
		Reference:    uuid.NewString(),
		SalonID:      in.SalonID,
		CustomerID:   customer.ID,
		ServiceID:    svc.ID,
		Date:         start.Format("2006-01-02"),
		StartTime:    start,
		EndTime:      end,
		Status:       string(domain.InitialStatus()),
		PriceSek:     svc.PriceSek,
		Notes:        in.Notes,
		BookedOnline: in.Online,
	}

	commitCtx, cancel := context.WithTimeout(ctx, uc.commitWait)
	defer cancel()

	if err := uc.repo.CreateBookingIfFree(commitCtx, b); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, httperr.ErrBusiness("reservation_timeout")
		}
		return nil, err
	}

	uc.cache.Invalidate(ctx, in.SalonID, b.Date)

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
