package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"boighor-backend/internal/domains/category/model"
	"boighor-backend/internal/domains/category/service"
	"boighor-backend/internal/shared/authz"
	"boighor-backend/internal/shared/middleware"
	"boighor-backend/internal/shared/response"
)

type CategoryHandler struct {
	service service.Service
}

func NewCategoryHandler(categoryService service.Service) *CategoryHandler {
	return &CategoryHandler{service: categoryService}
}

// CreateCategory handles POST /categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req model.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	userID := middleware.UserIDFromContext(c)

	category, err := h.service.CreateCategory(c.Request.Context(), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, category)
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.GetAllCategories(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, categories)
}

func (h *CategoryHandler) handleError(c *gin.Context, err error) {
	var vErr validation.Errors
	switch {
	case errors.Is(err, authz.ErrUnauthenticated):
		response.Unauthorized(c, "you must be logged in")
	case errors.As(err, &vErr):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid category data", vErr)
	default:
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("category operation failed")
		response.InternalServerError(c, "something went wrong, please try again")
	}
}
