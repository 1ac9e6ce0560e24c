package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"boighor-backend/internal/domains/user/service"
	"boighor-backend/internal/shared/middleware"
	"boighor-backend/internal/shared/response"
)

type UserHandler struct {
	service service.Service
}

func NewUserHandler(userService service.Service) *UserHandler {
	return &UserHandler{service: userService}
}

// GetCurrentUser handles GET /me (anonymous allowed)
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	data, err := h.service.GetCurrentUserData(c.Request.Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("current user lookup failed")
		response.InternalServerError(c, "something went wrong, please try again")
		return
	}

	response.Success(c, http.StatusOK, data)
}
