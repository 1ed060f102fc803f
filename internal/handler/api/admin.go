package api

import (
	"net/http"
	"strconv"

	reqdto "nexus-booking/internal/handler/dto/request"
	resdto "nexus-booking/internal/handler/dto/response"
	"nexus-booking/internal/handler/httperr"
	"nexus-booking/internal/pkg/apperr"
	"nexus-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the operator surface behind the X-Admin-Secret check.
type AdminHandler struct {
	catalogCommands commands.CatalogCommands
	bookingCommands commands.BookingCommands
}

func NewAdminHandler(catalogCommands commands.CatalogCommands, bookingCommands commands.BookingCommands) *AdminHandler {
	return &AdminHandler{
		catalogCommands: catalogCommands,
		bookingCommands: bookingCommands,
	}
}

// @Summary Create service
// @Description Register a bookable service in the catalog
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Admin-Secret header string true "Admin secret"
// @Param request body reqdto.CreateServiceRequest true "Service request"
// @Success 201 {object} resdto.ServiceEnvelope
// @Failure 400 {object} httperr.Envelope
// @Failure 401 {object} httperr.Envelope
// @Failure 403 {object} httperr.Envelope
// @Router /admin/services [post]
func (h *AdminHandler) CreateService(c *gin.Context) {
	var req reqdto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, apperr.New(apperr.KindValidation, map[string]any{"body": "malformed JSON"}))
		return
	}

	created, err := h.catalogCommands.CreateService(c.Request.Context(), commands.CreateServiceInput{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromService(created))
}

// @Summary Create availability window
// @Description Add a weekly availability window to a service
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Admin-Secret header string true "Admin secret"
// @Param id path int true "Service ID"
// @Param request body reqdto.CreateWindowRequest true "Window request"
// @Success 201 {object} resdto.WindowEnvelope
// @Failure 400 {object} httperr.Envelope
// @Failure 401 {object} httperr.Envelope
// @Failure 403 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /admin/services/{id}/availability [post]
func (h *AdminHandler) CreateWindow(c *gin.Context) {
	serviceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || serviceID <= 0 {
		httperr.Abort(c, apperr.New(apperr.KindValidation, map[string]any{"id": false}))
		return
	}

	var req reqdto.CreateWindowRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.Abort(c, apperr.New(apperr.KindValidation, map[string]any{"body": "malformed JSON"}))
		return
	}

	created, err := h.catalogCommands.CreateWindow(c.Request.Context(), commands.CreateWindowInput{
		ServiceID: serviceID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromWindow(created))
}

// @Summary Cancel booking
// @Description Cancel a booking, freeing its slot for readmission
// @Tags admin
// @Produce json
// @Param X-Admin-Secret header string true "Admin secret"
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingEnvelope
// @Failure 400 {object} httperr.Envelope
// @Failure 401 {object} httperr.Envelope
// @Failure 403 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /admin/bookings/{id}/cancel [post]
func (h *AdminHandler) CancelBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || bookingID <= 0 {
		httperr.Abort(c, apperr.New(apperr.KindValidation, map[string]any{"id": false}))
		return
	}

	cancelled, err := h.bookingCommands.Cancel(c.Request.Context(), bookingID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(cancelled))
}
