package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kroppform/salon-scheduler/internal/httperr"
	"github.com/kroppform/salon-scheduler/internal/middleware"
	"github.com/kroppform/salon-scheduler/internal/models"
	ucBooking "github.com/kroppform/salon-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	reserve     *ucBooking.Reserve
	cancel      *ucBooking.CancelBooking
	complete    *ucBooking.CompleteBooking
	noShow      *ucBooking.MarkNoShow
	listByDate  *ucBooking.ListBookingsByDate
	listByMonth *ucBooking.ListBookingsByMonth

	db *gorm.DB
}

func NewBookingHandler(
	reserve *ucBooking.Reserve,
	cancel *ucBooking.CancelBooking,
	complete *ucBooking.CompleteBooking,
	noShow *ucBooking.MarkNoShow,
	listByDate *ucBooking.ListBookingsByDate,
	listByMonth *ucBooking.ListBookingsByMonth,
	db *gorm.DB,
) *BookingHandler {
	return &BookingHandler{
		reserve:     reserve,
		cancel:      cancel,
		complete:    complete,
		noShow:      noShow,
		listByDate:  listByDate,
		listByMonth: listByMonth,
		db:          db,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`
	ServiceID     uint   `json:"service_id" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	Notes         string `json:"notes"`
}

// ======================================================
// CREATE (staff-entered)
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Ogiltiga uppgifter.")
		return
	}

	b, err := h.reserve.Execute(
		c.Request.Context(),
		ucBooking.ReserveInput{
			SalonID:       salonID,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			CustomerEmail: req.CustomerEmail,
			ServiceID:     req.ServiceID,
			Date:          req.Date,
			Time:          req.Time,
			Notes:         req.Notes,
			Online:        false,
			UserID:        &userID,
		},
	)

	if err != nil {
		mapReserveErrors(c, err)
		return
	}

	c.JSON(201, b)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) ListByDate(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Datum krävs.")
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.Internal(c, "salon_not_found", "Salongen hittades inte.")
		return
	}

	date, err := parseDateInSalon(&salon, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Ogiltigt datum.")
		return
	}

	bookings, err := h.listByDate.Execute(c.Request.Context(), salonID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Kunde inte hämta bokningar.")
		return
	}

	c.JSON(200, bookings)
}

func (h *BookingHandler) ListByMonth(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "År och månad krävs.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ogiltigt år.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Ogiltig månad.")
		return
	}

	bookings, err := h.listByMonth.Execute(c.Request.Context(), salonID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Kunde inte hämta bokningar.")
		return
	}

	c.JSON(200, gin.H{
		"year":     year,
		"month":    month,
		"bookings": bookings,
	})
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *BookingHandler) parseBookingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Ogiltigt boknings-id.")
		return 0, false
	}
	return uint(id), true
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := h.parseBookingID(c)
	if !ok {
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), salonID, &userID, id)
	if err != nil {
		mapStateErrors(c, err)
		return
	}

	c.JSON(200, b)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := h.parseBookingID(c)
	if !ok {
		return
	}

	b, err := h.complete.Execute(c.Request.Context(), salonID, &userID, id)
	if err != nil {
		mapStateErrors(c, err)
		return
	}

	c.JSON(200, b)
}

func (h *BookingHandler) NoShow(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := h.parseBookingID(c)
	if !ok {
		return
	}

	b, err := h.noShow.Execute(c.Request.Context(), salonID, &userID, id)
	if err != nil {
		mapStateErrors(c, err)
		return
	}

	c.JSON(200, b)
}

func mapStateErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "booking_not_found"):
		httperr.NotFound(c, "booking_not_found", "Bokningen hittades inte.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "Bokningen kan inte ändras i sitt nuvarande läge.")
	default:
		httperr.Internal(c, "failed_to_update_booking", "Kunde inte uppdatera bokningen.")
	}
}
