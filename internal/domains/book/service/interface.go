package service

import (
	"context"

	"github.com/google/uuid"

	"boighor-backend/internal/domains/book/model"
)

type Service interface {
	// AddBook inserts a listing after re-deriving shop ownership from
	// the store. Returns the shop slug for the caller's redirect.
	AddBook(ctx context.Context, userID uuid.UUID, req model.AddBookRequest) (string, error)

	// UpdateBook overwrites every mutable field of the book after an
	// ownership check via the books-to-shops join.
	UpdateBook(ctx context.Context, userID, bookID uuid.UUID, req model.UpdateBookRequest) (string, error)

	// DeleteBook removes the book permanently. Irreversible; the UI is
	// expected to confirm with the user first.
	DeleteBook(ctx context.Context, userID, bookID uuid.UUID, shopSlug string) (string, error)

	// GetBookForEdit loads the book for the edit form, verifying that
	// the caller owns it. Foreign books surface as not found.
	GetBookForEdit(ctx context.Context, userID, bookID uuid.UUID) (*model.Book, error)
}
