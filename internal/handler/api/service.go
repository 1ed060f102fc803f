package api

import (
	"net/http"
	"strconv"

	resdto "nexus-booking/internal/handler/dto/response"
	"nexus-booking/internal/handler/httperr"
	"nexus-booking/internal/pkg/apperr"
	"nexus-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	serviceQueries queries.ServiceQueries
}

func NewServiceHandler(serviceQueries queries.ServiceQueries) *ServiceHandler {
	return &ServiceHandler{serviceQueries: serviceQueries}
}

// @Summary List services
// @Description List active services in the catalog
// @Tags services
// @Produce json
// @Success 200 {object} resdto.ServiceListEnvelope
// @Router /services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	rows, err := h.serviceQueries.ListActive(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromServices(rows))
}

// @Summary Get service
// @Description Get a service by ID
// @Tags services
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} resdto.ServiceEnvelope
// @Failure 400 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /services/{id} [get]
func (h *ServiceHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.Abort(c, apperr.New(apperr.KindValidation, map[string]any{"id": false}))
		return
	}

	svc, err := h.serviceQueries.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromService(svc))
}
