package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"boighor-backend/internal/domains/user/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	err := r.pool.QueryRow(ctx, `
		SELECT id, role, COALESCE(display_name, '')
		FROM profiles
		WHERE id = $1`,
		userID,
	).Scan(&profile.ID, &profile.Role, &profile.DisplayName)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &profile, nil
}

func (r *postgresRepository) GetRole(ctx context.Context, userID uuid.UUID) (string, error) {
	profile, err := r.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	return profile.Role, nil
}
