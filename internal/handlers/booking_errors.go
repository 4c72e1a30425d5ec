package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/kroppform/salon-scheduler/internal/httperr"
)

// mapReserveErrors translates the reservation failure taxonomy to HTTP.
// slot_taken is an expected outcome, not a server fault: the caller should
// re-fetch availability and let the customer pick again.
func mapReserveErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "slot_taken"):
		httperr.Conflict(c, "slot_taken", "Tiden är tyvärr redan bokad. Välj en annan tid.")

	case httperr.IsBusiness(err, "out_of_policy"):
		httperr.BadRequest(c, "out_of_policy", "Tiden ligger utanför öppettiderna eller har redan passerat.")

	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Behandlingen finns inte eller är inte längre bokningsbar.")

	case httperr.IsBusiness(err, "salon_not_found"):
		httperr.NotFound(c, "salon_not_found", "Salongen hittades inte.")

	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Ogiltigt datum eller tid.")

	case httperr.IsBusiness(err, "invalid_contact"):
		httperr.BadRequest(c, "invalid_contact", "Namn och giltigt telefonnummer krävs.")

	case httperr.IsBusiness(err, "customer_resolution_failed"):
		httperr.Internal(c, "customer_resolution_failed", "Kunde inte skapa kundprofil. Försök igen.")

	case httperr.IsBusiness(err, "reservation_timeout"):
		httperr.Unavailable(c, "reservation_timeout", "Bokningen kunde inte bekräftas i tid. Försök igen.")

	default:
		httperr.Internal(c, "failed_to_create_booking", "Något gick fel. Försök igen.")
	}
}
