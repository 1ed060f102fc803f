package api

import (
	"net/http"
	"strconv"

	reqdto "nexus-booking/internal/handler/dto/request"
	resdto "nexus-booking/internal/handler/dto/response"
	"nexus-booking/internal/handler/httperr"
	"nexus-booking/internal/pkg/apperr"
	"nexus-booking/internal/pkg/timeutil"
	"nexus-booking/internal/usecase/commands"
	"nexus-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Admit a booking if the slot is available and free of conflicts
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingEnvelope
// @Failure 400 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Failure 409 {object} httperr.Envelope
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, apperr.New(apperr.KindValidation, map[string]any{"body": "malformed JSON"}))
		return
	}

	created, err := h.bookingCommands.Create(c.Request.Context(), commands.CreateBookingInput{
		UserID:    req.UserID,
		ServiceID: req.ServiceID,
		StartAt:   req.StartAt,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBooking(created))
}

// @Summary List bookings on a day
// @Description List a service's non-cancelled bookings on a UTC calendar day
// @Tags bookings
// @Produce json
// @Param service_id query int true "Service ID"
// @Param date query string true "Calendar day (YYYY-MM-DD)"
// @Success 200 {object} resdto.BookingListEnvelope
// @Failure 400 {object} httperr.Envelope
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	serviceID, svcErr := strconv.ParseInt(c.Query("service_id"), 10, 64)
	date, dateOK := timeutil.ParseCalendarDate(c.Query("date"))
	if svcErr != nil || serviceID <= 0 || !dateOK {
		httperr.Abort(c, apperr.New(apperr.KindValidation, map[string]any{
			"service_id": svcErr == nil && serviceID > 0,
			"date":       dateOK,
		}))
		return
	}

	rows, err := h.bookingQueries.ListOnDay(c.Request.Context(), serviceID, date)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookings(rows))
}
