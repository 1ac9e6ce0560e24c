package model

import (
	"time"

	"github.com/google/uuid"

	bookmodel "boighor-backend/internal/domains/book/model"
	categorymodel "boighor-backend/internal/domains/category/model"
)

// OfficialSlug is the fixed slug of the single admin-curated shop
// surfaced on the home page.
const OfficialSlug = "official"

// UncategorizedBucket is the display bucket for books whose category is
// absent or no longer resolvable.
const UncategorizedBucket = "Uncategorized"

// Shop is a user-owned namespaced catalog of affiliate book listings.
// Slug is globally unique and immutable once claimed; at most one
// non-official shop exists per owner.
type Shop struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	IsOfficial bool      `json:"is_official"`
	CreatedAt  time.Time `json:"created_at"`
}

type ShopSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

func (s *Shop) Summary() ShopSummary {
	return ShopSummary{ID: s.ID, Name: s.Name, Slug: s.Slug}
}

// CategoryGroup is one display bucket of a shop page. Groups are
// ordered alphabetically by category name; books inside keep the
// repository's position-then-recency order.
type CategoryGroup struct {
	Category string           `json:"category"`
	Books    []bookmodel.Book `json:"books"`
}

// ShopPage is the denormalized public shop view.
type ShopPage struct {
	ID              uuid.UUID                `json:"id"`
	Name            string                   `json:"name"`
	Slug            string                   `json:"slug"`
	BooksByCategory []CategoryGroup          `json:"books_by_category"`
	IsOwner         bool                     `json:"is_owner"`
	AllCategories   []categorymodel.Category `json:"all_categories"`
}

// OfficialCatalog backs the home page. Shop is nil when no official
// shop has been created yet; that state renders an admin setup prompt,
// not an error.
type OfficialCatalog struct {
	Shop            *ShopSummary    `json:"shop"`
	BooksByCategory []CategoryGroup `json:"books_by_category"`
}
