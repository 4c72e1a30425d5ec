package booking

import (
	"context"

	"github.com/kroppform/salon-scheduler/internal/cache"
	domain "github.com/kroppform/salon-scheduler/internal/domain/booking"
	"github.com/kroppform/salon-scheduler/internal/httperr"
	"github.com/kroppform/salon-scheduler/internal/timezone"
)

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.Availability
}

func NewGetAvailability(repo domain.Repository, cache *cache.Availability) *GetAvailability {
	return &GetAvailability{repo: repo, cache: cache}
}

// Execute composes the read-only view: week schedule -> candidate grid ->
// overlap filter. Advisory only; the commit path re-validates everything.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, httperr.ErrBusiness("salon_not_found")
	}

	svc, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil || !svc.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	now := timezone.NowIn(salon.Timezone)
	dateStr := in.Date.Format("2006-01-02")

	// Past dates have no slots, closed days neither; don't touch the grid.
	if dateStr < now.Format("2006-01-02") {
		return []domain.TimeSlot{}, nil
	}

	sched, err := uc.repo.GetWeekSchedule(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	open, close, ok := sched.Bounds(int(in.Date.Weekday()))
	if !ok {
		return []domain.TimeSlot{}, nil
	}

	if slots, hit := uc.cache.Get(ctx, salon.ID, dateStr, svc.ID); hit {
		return slots, nil
	}

	starts := domain.GenerateStarts(open, close, svc.DurationMin)

	booked, err := uc.repo.ListBookedIntervals(ctx, in.SalonID, dateStr)
	if err != nil {
		return nil, err
	}

	free := domain.FilterAvailable(starts, svc.DurationMin, booked)

	sameDay := dateStr == now.Format("2006-01-02")
	nowMin := now.Hour()*60 + now.Minute()

	slots := make([]domain.TimeSlot, 0, len(free))
	for _, start := range free {
		startMin, ok := domain.ParseHM(start)
		if !ok {
			continue
		}
		if sameDay && startMin <= nowMin {
			continue
		}
		slots = append(slots, domain.TimeSlot{
			Start: start,
			End:   domain.FormatHM(startMin + svc.DurationMin),
		})
	}

	uc.cache.Set(ctx, salon.ID, dateStr, svc.ID, slots)

	return slots, nil
}
