package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"boighor-backend/internal/domains/book/model"
	"boighor-backend/internal/domains/book/service"
	"boighor-backend/internal/shared/authz"
	"boighor-backend/internal/shared/middleware"
	"boighor-backend/internal/shared/response"
)

type BookHandler struct {
	service service.Service
}

func NewBookHandler(bookService service.Service) *BookHandler {
	return &BookHandler{service: bookService}
}

// AddBook handles POST /books
func (h *BookHandler) AddBook(c *gin.Context) {
	var req model.AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	userID := middleware.UserIDFromContext(c)

	slug, err := h.service.AddBook(c.Request.Context(), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, model.MutationResult{Slug: slug})
}

// UpdateBook handles PUT /books/:id
func (h *BookHandler) UpdateBook(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	userID := middleware.UserIDFromContext(c)

	slug, err := h.service.UpdateBook(c.Request.Context(), userID, bookID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.MutationResult{Slug: slug})
}

// DeleteBook handles DELETE /books/:id?shop_slug=...
// Permanent; the client confirms with the user before calling.
func (h *BookHandler) DeleteBook(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	shopSlug := c.Query("shop_slug")
	if shopSlug == "" {
		response.BadRequest(c, "shop_slug is required")
		return
	}

	userID := middleware.UserIDFromContext(c)

	slug, err := h.service.DeleteBook(c.Request.Context(), userID, bookID, shopSlug)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.MutationResult{Slug: slug})
}

// GetBookForEdit handles GET /books/:id/edit
func (h *BookHandler) GetBookForEdit(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	userID := middleware.UserIDFromContext(c)

	book, err := h.service.GetBookForEdit(c.Request.Context(), userID, bookID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, book)
}

func (h *BookHandler) handleError(c *gin.Context, err error) {
	var vErr validation.Errors
	switch {
	case errors.Is(err, authz.ErrUnauthenticated):
		response.Unauthorized(c, "you must be logged in")
	case errors.Is(err, authz.ErrForbidden):
		response.Forbidden(c, "you do not have permission to modify this shop")
	case errors.Is(err, model.ErrBookNotFound), errors.Is(err, authz.ErrResourceNotFound):
		response.NotFound(c, "book not found")
	case errors.Is(err, model.ErrInvalidPrice):
		response.BadRequest(c, err.Error())
	case errors.As(err, &vErr):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid book data", vErr)
	default:
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("book operation failed")
		response.InternalServerError(c, "something went wrong, please try again")
	}
}
