package booking

import (
	"context"

	"github.com/kroppform/salon-scheduler/internal/audit"
	"github.com/kroppform/salon-scheduler/internal/cache"
	domain "github.com/kroppform/salon-scheduler/internal/domain/booking"
	"github.com/kroppform/salon-scheduler/internal/httperr"
	"github.com/kroppform/salon-scheduler/internal/models"
	"github.com/kroppform/salon-scheduler/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	cache *cache.Availability
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	cache *cache.Availability,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	salonID uint,
	userID *uint,
	bookingID uint,
) (*models.Booking, error) {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBooking(ctx, salonID, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.NowIn(salon.Timezone)
	if err := domain.Cancel(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	// The cancelled interval is bookable again.
	uc.cache.Invalidate(ctx, salonID, b.Date)

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   userID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
