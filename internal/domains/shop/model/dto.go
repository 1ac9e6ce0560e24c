package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateShopRequest struct {
	Name string `json:"name"`
}

func (r CreateShopRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(3, 100)),
	)
}

// CreateShopResponse carries the new slug so the caller can redirect.
type CreateShopResponse struct {
	Slug string `json:"slug"`
}
