package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// AddBookRequest carries the add-book form. Category is optional: a
// book may arrive with an existing CategoryID, with a NewCategoryName
// to create inline, or with neither (grouped under "Uncategorized" at
// read time). ShopID/ShopSlug address the target; ownership is
// re-derived from the store.
type AddBookRequest struct {
	ShopID           string `json:"shop_id"`
	ShopSlug         string `json:"shop_slug"`
	Title            string `json:"title"`
	CategoryID       string `json:"category_id"`
	NewCategoryName  string `json:"new_category_name"`
	AffiliateURL     string `json:"affiliate_url"`
	ImageURL         string `json:"image_url"`
	ShortDescription string `json:"short_description"`
	Price            string `json:"price"`
}

func (r AddBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ShopID, validation.Required, is.UUIDv4),
		validation.Field(&r.ShopSlug, validation.Required),
		validation.Field(&r.Title, validation.Required, validation.Length(1, 300)),
		validation.Field(&r.CategoryID, is.UUIDv4),
		validation.Field(&r.AffiliateURL, validation.Required, is.URL),
		validation.Field(&r.ImageURL, is.URL),
	)
}

// UpdateBookRequest is a full-field overwrite; absent optional fields
// clear the stored value. No partial-patch semantics.
type UpdateBookRequest struct {
	ShopSlug         string `json:"shop_slug"`
	Title            string `json:"title"`
	CategoryID       string `json:"category_id"`
	AffiliateURL     string `json:"affiliate_url"`
	ImageURL         string `json:"image_url"`
	ShortDescription string `json:"short_description"`
	Price            string `json:"price"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ShopSlug, validation.Required),
		validation.Field(&r.Title, validation.Required, validation.Length(1, 300)),
		validation.Field(&r.CategoryID, is.UUIDv4),
		validation.Field(&r.AffiliateURL, validation.Required, is.URL),
		validation.Field(&r.ImageURL, is.URL),
	)
}

// MutationResult is returned by every book mutation so form callers
// can redirect to the shop page on success.
type MutationResult struct {
	Slug string `json:"slug"`
}
