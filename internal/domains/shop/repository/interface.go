package repository

import (
	"context"

	"github.com/google/uuid"

	"boighor-backend/internal/domains/shop/model"
)

type Repository interface {
	// Insert creates the shop. Uniqueness races resolve at the store:
	// a slug collision maps to ErrSlugTaken, a second non-official shop
	// for the same owner maps to ErrShopAlreadyExists.
	Insert(ctx context.Context, shop *model.Shop) error

	GetBySlug(ctx context.Context, slug string) (*model.Shop, error)

	// GetByOwner returns the owner's non-official shop.
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*model.Shop, error)

	// GetOfficial returns the single shop flagged is_official.
	GetOfficial(ctx context.Context) (*model.Shop, error)

	List(ctx context.Context) ([]model.ShopSummary, error)
}
