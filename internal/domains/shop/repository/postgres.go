package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"boighor-backend/internal/domains/shop/model"
)

const uniqueViolation = "23505"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Insert(ctx context.Context, shop *model.Shop) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO shops (id, owner_id, name, slug, is_official)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`,
		shop.ID, shop.OwnerID, shop.Name, shop.Slug, shop.IsOfficial,
	).Scan(&shop.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			switch pgErr.ConstraintName {
			case "shops_one_per_owner":
				return model.ErrShopAlreadyExists
			case "shops_single_official":
				return model.ErrOfficialShopExists
			default: // shops_slug_key
				return model.ErrSlugTaken
			}
		}
		return fmt.Errorf("insert shop: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*model.Shop, error) {
	return r.getOne(ctx, `WHERE slug = $1`, slug)
}

func (r *postgresRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*model.Shop, error) {
	return r.getOne(ctx, `WHERE owner_id = $1 AND NOT is_official`, ownerID)
}

func (r *postgresRepository) GetOfficial(ctx context.Context) (*model.Shop, error) {
	return r.getOne(ctx, `WHERE is_official`)
}

func (r *postgresRepository) getOne(ctx context.Context, where string, args ...interface{}) (*model.Shop, error) {
	var shop model.Shop
	query := `
		SELECT id, owner_id, name, slug, is_official, created_at
		FROM shops ` + where

	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&shop.ID, &shop.OwnerID, &shop.Name, &shop.Slug, &shop.IsOfficial, &shop.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrShopNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get shop: %w", err)
	}
	return &shop, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]model.ShopSummary, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, slug FROM shops`)
	if err != nil {
		return nil, fmt.Errorf("list shops: %w", err)
	}
	defer rows.Close()

	shops := make([]model.ShopSummary, 0)
	for rows.Next() {
		var shop model.ShopSummary
		if err := rows.Scan(&shop.ID, &shop.Name, &shop.Slug); err != nil {
			return nil, fmt.Errorf("scan shop: %w", err)
		}
		shops = append(shops, shop)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return shops, nil
}
