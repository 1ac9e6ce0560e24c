package model

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParsePrice converts a form price field to a stored price. An empty
// field means "no price" (stored NULL, never zero). Prices keep two
// decimal places to match currency display.
func ParsePrice(raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	price, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, ErrInvalidPrice
	}
	if price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	rounded := price.Round(2)
	return &rounded, nil
}

// ParseOptionalUUID maps an empty form field to nil.
func ParseOptionalUUID(raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// OptionalString maps an empty form field to nil.
func OptionalString(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return &raw
}
