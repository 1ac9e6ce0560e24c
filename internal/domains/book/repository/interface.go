package repository

import (
	"context"

	"github.com/google/uuid"

	"boighor-backend/internal/domains/book/model"
)

type Repository interface {
	Insert(ctx context.Context, book *model.Book) error

	// Update overwrites every mutable field of the row.
	Update(ctx context.Context, book *model.Book) error

	// Delete removes the row permanently. No tombstones.
	Delete(ctx context.Context, bookID uuid.UUID) error

	GetByID(ctx context.Context, bookID uuid.UUID) (*model.Book, error)

	// ListByShop returns the shop's books ordered by position (NULLs
	// last), then newest first.
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]model.Book, error)
}
