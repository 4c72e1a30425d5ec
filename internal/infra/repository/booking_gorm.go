package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/kroppform/salon-scheduler/internal/domain/booking"
	"github.com/kroppform/salon-scheduler/internal/httperr"
	"github.com/kroppform/salon-scheduler/internal/models"
	"github.com/kroppform/salon-scheduler/internal/timezone"
	"github.com/kroppform/salon-scheduler/internal/validators"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *BookingGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	salonID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", serviceID, salonID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *BookingGormRepository) GetWeekSchedule(
	ctx context.Context,
	salonID uint,
) (domain.WeekSchedule, error) {

	var rows []models.BusinessHours
	if err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Order("weekday ASC").
		Find(&rows).Error; err != nil {
		return domain.WeekSchedule{}, err
	}

	return domain.NewWeekSchedule(rows), nil
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

// ResolveCustomer is an atomic upsert keyed on (salon_id, phone): concurrent
// calls with the same phone always land on one row, latest name/email win.
func (r *BookingGormRepository) ResolveCustomer(
	ctx context.Context,
	salonID uint,
	name string,
	phone string,
	email string,
) (*models.Customer, error) {

	customer := models.Customer{
		SalonID: salonID,
		Name:    name,
		Phone:   validators.NormalizePhone(phone),
		Email:   email,
	}

	if err := r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "salon_id"}, {Name: "phone"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"name":       customer.Name,
					"email":      customer.Email,
					"updated_at": time.Now(),
				}),
			},
			clause.Returning{},
		).
		Create(&customer).Error; err != nil {
		return nil, err
	}

	return &customer, nil
}

// --------------------------------------------------
// Booking (atomic check-and-commit)
// --------------------------------------------------

// CreateBookingIfFree runs the conflict check and the insert inside one
// transaction. Existing overlapping rows are locked FOR UPDATE; the
// bookings_no_overlap exclusion constraint backstops the insert-insert race
// two transactions can still hit when neither sees a conflicting row yet.
func (r *BookingGormRepository) CreateBookingIfFree(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"salon_id = ? AND date = ? AND status <> ? AND start_time < ? AND end_time > ?",
				b.SalonID,
				b.Date,
				string(domain.StatusCancelled),
				b.EndTime,
				b.StartTime,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return tx.Create(b).Error
	})

	if httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness("slot_taken")
	}
	return err
}

func (r *BookingGormRepository) ListBookedIntervals(
	ctx context.Context,
	salonID uint,
	date string,
) ([]domain.Interval, error) {

	var rows []models.Booking
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time", "salon_id").
		Where(
			"salon_id = ? AND date = ? AND status <> ?",
			salonID, date, string(domain.StatusCancelled),
		).
		Order("start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	salon, err := r.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}
	loc := timezone.Location(salon.Timezone)

	intervals := make([]domain.Interval, 0, len(rows))
	for _, row := range rows {
		start := row.StartTime.In(loc)
		end := row.EndTime.In(loc)
		intervals = append(intervals, domain.Interval{
			StartMin: start.Hour()*60 + start.Minute(),
			EndMin:   end.Hour()*60 + end.Minute(),
		})
	}

	return intervals, nil
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	salonID uint,
	bookingID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", bookingID, salonID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	salonID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking

	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Where(
			"salon_id = ? AND start_time >= ? AND start_time < ?",
			salonID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&bookings).Error

	if err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
