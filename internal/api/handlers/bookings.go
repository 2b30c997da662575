package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/service"
)

// HandleBookingCalendar serves one month of the production date picker.
// The month query parameter is YYYY-MM and defaults to the current month;
// months outside the slot fetch window are rejected.
func HandleBookingCalendar(svcs *Services, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now().UTC()

		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		if raw := c.Query("month"); raw != "" {
			parsed, err := time.Parse("2006-01", raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "month must be YYYY-MM"})
				return
			}
			monthStart = parsed
		}

		from, to := service.SlotWindow(now)
		windowStart, _ := time.Parse("2006-01-02", from)
		windowEnd, _ := time.Parse("2006-01-02", to)
		if monthStart.Before(windowStart) || monthStart.After(windowEnd) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "month is outside the booking window"})
			return
		}

		slots, err := svcs.Bookings.Slots(c.Request.Context(), from, to)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		calendar := svcs.Bookings.BuildCalendar(monthStart.Year(), monthStart.Month(), slots)
		respondData(c, http.StatusOK, calendar)
	}
}

// HandleCreateBooking submits a custom-outfit booking.
func HandleCreateBooking(svcs *Services, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input service.BookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondBindError(c, err)
			return
		}

		booking, err := svcs.Bookings.CreateBooking(c.Request.Context(), input)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		respondMessage(c, http.StatusCreated, "Booking received", booking)
	}
}
