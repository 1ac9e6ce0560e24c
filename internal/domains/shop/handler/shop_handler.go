package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"boighor-backend/internal/domains/shop/model"
	"boighor-backend/internal/domains/shop/service"
	"boighor-backend/internal/shared/authz"
	"boighor-backend/internal/shared/middleware"
	"boighor-backend/internal/shared/response"
)

type ShopHandler struct {
	service service.Service
}

func NewShopHandler(shopService service.Service) *ShopHandler {
	return &ShopHandler{service: shopService}
}

// CreateShop handles POST /shops
func (h *ShopHandler) CreateShop(c *gin.Context) {
	var req model.CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	userID := middleware.UserIDFromContext(c)

	slug, err := h.service.CreateShop(c.Request.Context(), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, model.CreateShopResponse{Slug: slug})
}

// CreateOfficialShop handles POST /admin/official-shop
func (h *ShopHandler) CreateOfficialShop(c *gin.Context) {
	adminID := middleware.UserIDFromContext(c)

	slug, err := h.service.CreateOfficialShop(c.Request.Context(), adminID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, model.CreateShopResponse{Slug: slug})
}

// GetShopBySlug handles GET /shops/:slug (anonymous allowed)
func (h *ShopHandler) GetShopBySlug(c *gin.Context) {
	slug := c.Param("slug")
	currentUserID := middleware.UserIDFromContext(c)

	page, err := h.service.GetShopBySlug(c.Request.Context(), slug, currentUserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, page)
}

// GetOfficialCatalog handles GET /home
func (h *ShopHandler) GetOfficialCatalog(c *gin.Context) {
	catalog, err := h.service.GetOfficialCatalog(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, catalog)
}

// ListShops handles GET /shops
func (h *ShopHandler) ListShops(c *gin.Context) {
	shops, err := h.service.GetAllShops(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, shops)
}

func (h *ShopHandler) handleError(c *gin.Context, err error) {
	var vErr validation.Errors
	switch {
	case errors.Is(err, authz.ErrUnauthenticated):
		response.Unauthorized(c, "you must be logged in")
	case errors.Is(err, model.ErrShopNotFound):
		response.NotFound(c, "shop not found")
	case errors.Is(err, model.ErrShopAlreadyExists),
		errors.Is(err, model.ErrSlugTaken),
		errors.Is(err, model.ErrOfficialShopExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, model.ErrInvalidShopName):
		response.BadRequest(c, err.Error())
	case errors.As(err, &vErr):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid shop data", vErr)
	default:
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("shop operation failed")
		response.InternalServerError(c, "something went wrong, please try again")
	}
}
