package model

import "errors"

var (
	ErrBookNotFound = errors.New("book not found")
	ErrInvalidPrice = errors.New("price must be a non-negative number")
)
