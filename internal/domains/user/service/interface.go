package service

import (
	"context"

	"github.com/google/uuid"

	"boighor-backend/internal/domains/user/model"
)

type Service interface {
	// GetCurrentUserData aggregates the caller's profile, shop and, for
	// admins, the official shop handle. Anonymous callers get a struct
	// of nils, never an error.
	GetCurrentUserData(ctx context.Context, userID uuid.UUID) (*model.CurrentUserData, error)
}
