package model

import (
	"github.com/google/uuid"

	shopmodel "boighor-backend/internal/domains/shop/model"
)

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// Profile holds the identity-adjacent data this service reads. The
// identity provider owns the user itself; role changes come from an
// external administrative process.
type Profile struct {
	ID          uuid.UUID `json:"id"`
	Role        string    `json:"role"`
	DisplayName string    `json:"display_name"`
}

func (p *Profile) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// CurrentUserData drives the navigation and the admin affordances.
// All pointers are nil for anonymous callers. AdminShop is the
// official shop handle, resolved only for admins.
type CurrentUserData struct {
	UserID    *uuid.UUID             `json:"user_id"`
	Profile   *Profile               `json:"profile"`
	Shop      *shopmodel.ShopSummary `json:"shop"`
	AdminShop *shopmodel.ShopSummary `json:"admin_shop"`
}
