package model

import "errors"

var (
	// Not Found
	ErrShopNotFound = errors.New("shop not found")

	// Conflict
	ErrShopAlreadyExists  = errors.New("you already have a shop")
	ErrSlugTaken          = errors.New("a shop with this name already exists, choose another")
	ErrOfficialShopExists = errors.New("an official shop already exists")

	// Validation
	ErrInvalidShopName = errors.New("shop name must contain usable characters")
)
