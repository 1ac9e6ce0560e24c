package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Book is an affiliate listing owned exclusively by its shop. ShopID is
// fixed at creation and never reassigned.
type Book struct {
	ID               uuid.UUID        `json:"id"`
	ShopID           uuid.UUID        `json:"shop_id"`
	CategoryID       *uuid.UUID       `json:"category_id,omitempty"`
	Title            string           `json:"title"`
	AffiliateURL     string           `json:"affiliate_url"`
	ImageURL         *string          `json:"image_url,omitempty"`
	ShortDescription *string          `json:"short_description,omitempty"`
	Price            *decimal.Decimal `json:"price,omitempty"`
	Position         *int             `json:"position,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
}
