package service

import (
	"context"

	"github.com/google/uuid"

	"boighor-backend/internal/domains/shop/model"
)

type Service interface {
	// CreateShop claims the caller's single shop. The store's unique
	// constraints arbitrate races: the loser gets a conflict error,
	// never a suffixed slug.
	CreateShop(ctx context.Context, userID uuid.UUID, req model.CreateShopRequest) (string, error)

	// CreateOfficialShop creates the single admin-curated shop with the
	// fixed "official" slug. Admin gating happens at the route.
	CreateOfficialShop(ctx context.Context, adminID uuid.UUID) (string, error)

	// GetShopBySlug builds the public shop page with books grouped by
	// category name. A missing slug is a soft not-found, rendered as a
	// 404 by the caller.
	GetShopBySlug(ctx context.Context, slug string, currentUserID uuid.UUID) (*model.ShopPage, error)

	// GetOfficialCatalog returns the home page catalog; empty (not an
	// error) while no official shop exists.
	GetOfficialCatalog(ctx context.Context) (*model.OfficialCatalog, error)

	GetAllShops(ctx context.Context) ([]model.ShopSummary, error)

	// GetUserShop returns the caller's shop summary, or nil without
	// error when they have none.
	GetUserShop(ctx context.Context, userID uuid.UUID) (*model.ShopSummary, error)
}
