package booking

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/kroppform/salon-scheduler/internal/domain/booking"
	"github.com/kroppform/salon-scheduler/internal/httperr"
	"github.com/kroppform/salon-scheduler/internal/models"
)

const (
	testSalonID   = uint(1)
	testServiceID = uint(10)
	testPhone     = "+46701234567"
)

func reserveFixture() *fakeRepo {
	repo := newFakeRepo()

	repo.addSalon(models.Salon{
		ID:       testSalonID,
		Name:     "Kropp & Form",
		Slug:     "kropp-form",
		Timezone: "UTC",
	})

	repo.addService(models.Service{
		ID:          testServiceID,
		SalonID:     testSalonID,
		Name:        "Klassisk massage",
		DurationMin: 40,
		PriceSek:    79500,
		Active:      true,
	})

	// open every weekday so the target date's weekday never matters
	for wd := 0; wd <= 6; wd++ {
		repo.hours = append(repo.hours, models.BusinessHours{
			SalonID:   testSalonID,
			Weekday:   wd,
			OpenTime:  "09:00",
			CloseTime: "18:00",
		})
	}

	return repo
}

func futureDate() string {
	return time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")
}

func reserveInput() ReserveInput {
	return ReserveInput{
		SalonID:       testSalonID,
		CustomerName:  "Anna Lindqvist",
		CustomerPhone: testPhone,
		CustomerEmail: "anna@example.com",
		ServiceID:     testServiceID,
		Date:          futureDate(),
		Time:          "10:00",
		Online:        true,
	}
}

func TestReserve_Execute(t *testing.T) {
	repo := reserveFixture()
	uc := NewReserve(repo, nil, nil, time.Second)

	b, err := uc.Execute(context.Background(), reserveInput())
	require.NoError(t, err)

	assert.NotEmpty(t, b.Reference)
	assert.Equal(t, string(domain.StatusConfirmed), b.Status)
	assert.Equal(t, 79500, b.PriceSek)
	assert.True(t, b.BookedOnline)
	assert.Equal(t, futureDate(), b.Date)
	assert.Equal(t, 40*time.Minute, b.EndTime.Sub(b.StartTime))

	require.Len(t, repo.customers, 1)
	assert.Equal(t, b.CustomerID, repo.customers[0].ID)
	assert.Equal(t, testPhone, repo.customers[0].Phone)
}

func TestReserve_OverlapRejected(t *testing.T) {
	repo := reserveFixture()
	uc := NewReserve(repo, nil, nil, time.Second)

	_, err := uc.Execute(context.Background(), reserveInput())
	require.NoError(t, err)

	tests := []struct {
		name string
		at   string
	}{
		{name: "same start", at: "10:00"},
		{name: "grid neighbour inside the 40-minute span", at: "10:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := reserveInput()
			in.Time = tt.at

			_, err := uc.Execute(context.Background(), in)
			assert.True(t, httperr.IsBusiness(err, "slot_taken"))
		})
	}

	t.Run("back to back slot commits", func(t *testing.T) {
		in := reserveInput()
		in.Time = "10:40"

		_, err := uc.Execute(context.Background(), in)
		assert.NoError(t, err)
	})
}

func TestReserve_PolicyViolations(t *testing.T) {
	repo := reserveFixture()

	repo.addService(models.Service{
		ID:      11,
		SalonID: testSalonID,
		Name:    "Utgången behandling",
		Active:  false,
	})

	uc := NewReserve(repo, nil, nil, time.Second)

	tests := []struct {
		name     string
		mutate   func(*ReserveInput)
		wantCode string
	}{
		{
			name:     "empty customer name",
			mutate:   func(in *ReserveInput) { in.CustomerName = "  " },
			wantCode: "invalid_contact",
		},
		{
			name:     "phone too short",
			mutate:   func(in *ReserveInput) { in.CustomerPhone = "123" },
			wantCode: "invalid_contact",
		},
		{
			name:     "unknown salon",
			mutate:   func(in *ReserveInput) { in.SalonID = 99 },
			wantCode: "salon_not_found",
		},
		{
			name:     "unknown service",
			mutate:   func(in *ReserveInput) { in.ServiceID = 99 },
			wantCode: "service_not_found",
		},
		{
			name:     "inactive service",
			mutate:   func(in *ReserveInput) { in.ServiceID = 11 },
			wantCode: "out_of_policy",
		},
		{
			name:     "malformed time",
			mutate:   func(in *ReserveInput) { in.Time = "25:99" },
			wantCode: "invalid_date_or_time",
		},
		{
			name:     "malformed date",
			mutate:   func(in *ReserveInput) { in.Date = "not-a-date" },
			wantCode: "invalid_date_or_time",
		},
		{
			name: "start in the past",
			mutate: func(in *ReserveInput) {
				in.Date = time.Now().UTC().AddDate(0, 0, -7).Format("2006-01-02")
			},
			wantCode: "out_of_policy",
		},
		{
			name:     "before opening",
			mutate:   func(in *ReserveInput) { in.Time = "08:00" },
			wantCode: "out_of_policy",
		},
		{
			name: "interval runs past close",
			// 17:30 + 40min ends 18:10, past the 18:00 close
			mutate:   func(in *ReserveInput) { in.Time = "17:30" },
			wantCode: "out_of_policy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := reserveInput()
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			assert.True(t, httperr.IsBusiness(err, tt.wantCode),
				"expected %s, got %v", tt.wantCode, err)
		})
	}

	assert.Empty(t, repo.bookings, "no rejected reservation may persist a booking")
}

func TestReserve_CustomerResolutionFailure(t *testing.T) {
	repo := reserveFixture()
	repo.failCustomer = true

	uc := NewReserve(repo, nil, nil, time.Second)

	_, err := uc.Execute(context.Background(), reserveInput())
	assert.True(t, httperr.IsBusiness(err, "customer_resolution_failed"))
	assert.Empty(t, repo.bookings)
}

func TestReserve_CommitTimeout(t *testing.T) {
	repo := reserveFixture()
	repo.commitDelay = 200 * time.Millisecond

	uc := NewReserve(repo, nil, nil, 20*time.Millisecond)

	_, err := uc.Execute(context.Background(), reserveInput())
	assert.True(t, httperr.IsBusiness(err, "reservation_timeout"))
}

func TestReserve_CustomerUpsertByPhone(t *testing.T) {
	repo := reserveFixture()
	uc := NewReserve(repo, nil, nil, time.Second)

	first := reserveInput()
	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)

	// same phone in a display format, new name, different slot
	second := reserveInput()
	second.Time = "14:00"
	second.CustomerName = "Anna L"
	second.CustomerPhone = "+46 70-123 45 67"

	b, err := uc.Execute(context.Background(), second)
	require.NoError(t, err)

	require.Len(t, repo.customers, 1, "same phone must resolve to one customer")
	assert.Equal(t, repo.customers[0].ID, b.CustomerID)
	assert.Equal(t, "Anna L", repo.customers[0].Name)
}

func TestReserve_ConcurrentSameSlot(t *testing.T) {
	repo := reserveFixture()
	uc := NewReserve(repo, nil, nil, time.Second)

	const callers = 16

	var wg sync.WaitGroup
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			in := reserveInput()
			in.CustomerName = fmt.Sprintf("Kund %d", i)
			in.CustomerPhone = fmt.Sprintf("+4670123%04d", i)

			_, errs[i] = uc.Execute(context.Background(), in)
		}(i)
	}
	wg.Wait()

	won := 0
	for _, err := range errs {
		if err == nil {
			won++
		} else {
			assert.True(t, httperr.IsBusiness(err, "slot_taken"))
		}
	}

	assert.Equal(t, 1, won, "exactly one concurrent caller may win the slot")
	assert.Len(t, repo.bookings, 1)
}

func TestReserve_CancelledSlotReopens(t *testing.T) {
	repo := reserveFixture()
	reserve := NewReserve(repo, nil, nil, time.Second)
	cancel := NewCancelBooking(repo, nil, nil)

	b, err := reserve.Execute(context.Background(), reserveInput())
	require.NoError(t, err)

	_, err = reserve.Execute(context.Background(), reserveInput())
	require.True(t, httperr.IsBusiness(err, "slot_taken"))

	_, err = cancel.Execute(context.Background(), testSalonID, nil, b.ID)
	require.NoError(t, err)

	_, err = reserve.Execute(context.Background(), reserveInput())
	assert.NoError(t, err, "a cancelled interval is bookable again")
}
