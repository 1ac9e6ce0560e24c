package repository

import (
	"context"

	"github.com/google/uuid"

	"boighor-backend/internal/domains/category/model"
)

type Repository interface {
	Insert(ctx context.Context, category *model.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	// List returns all categories ordered by name ascending.
	List(ctx context.Context) ([]model.Category, error)
}
