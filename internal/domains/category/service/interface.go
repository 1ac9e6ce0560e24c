package service

import (
	"context"

	"github.com/google/uuid"

	"boighor-backend/internal/domains/category/model"
)

type Service interface {
	// CreateCategory inserts a category for any authenticated user and
	// returns the created row, so form callers can extend their
	// selection list without a refetch.
	CreateCategory(ctx context.Context, userID uuid.UUID, req model.CreateCategoryRequest) (*model.Category, error)

	GetAllCategories(ctx context.Context) ([]model.Category, error)
}
