package api

import (
	"net/http"

	reqdto "nexus-booking/internal/handler/dto/request"
	resdto "nexus-booking/internal/handler/dto/response"
	"nexus-booking/internal/handler/httperr"
	"nexus-booking/internal/pkg/apperr"
	"nexus-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userCommands commands.UserCommands
}

func NewUserHandler(userCommands commands.UserCommands) *UserHandler {
	return &UserHandler{userCommands: userCommands}
}

// @Summary Create or fetch user
// @Description Resolve a client identity by seed, creating the user on first sight
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.CreateUserRequest true "User request"
// @Success 200 {object} resdto.UserEnvelope
// @Failure 400 {object} httperr.Envelope
// @Router /users [post]
func (h *UserHandler) CreateOrFetch(c *gin.Context) {
	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, apperr.New(apperr.KindValidation, map[string]any{"body": "malformed JSON"}))
		return
	}

	u, err := h.userCommands.CreateOrFetch(c.Request.Context(), commands.CreateUserInput{
		Alias: req.Alias,
		Seed:  req.Seed,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUser(u))
}
