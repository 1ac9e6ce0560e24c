package repository

import (
	"context"

	"github.com/google/uuid"

	"boighor-backend/internal/domains/user/model"
)

type Repository interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error)

	// GetRole satisfies middleware.RoleResolver; admin gating reads the
	// role from the store on every request so external role changes take
	// effect immediately.
	GetRole(ctx context.Context, userID uuid.UUID) (string, error)
}
