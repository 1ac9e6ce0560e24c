package authz

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresResolver struct {
	pool *pgxpool.Pool
}

func NewPostgresResolver(pool *pgxpool.Pool) ResourceResolver {
	return &postgresResolver{pool: pool}
}

func (r *postgresResolver) ShopOwner(ctx context.Context, shopID uuid.UUID) (uuid.UUID, error) {
	var ownerID uuid.UUID
	err := r.pool.QueryRow(ctx,
		`SELECT owner_id FROM shops WHERE id = $1`,
		shopID,
	).Scan(&ownerID)

	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, ErrResourceNotFound
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("resolve shop owner: %w", err)
	}
	return ownerID, nil
}

func (r *postgresResolver) BookOwner(ctx context.Context, bookID uuid.UUID) (uuid.UUID, uuid.UUID, error) {
	var ownerID, shopID uuid.UUID
	err := r.pool.QueryRow(ctx, `
		SELECT s.owner_id, s.id
		FROM books b
		JOIN shops s ON s.id = b.shop_id
		WHERE b.id = $1`,
		bookID,
	).Scan(&ownerID, &shopID)

	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, uuid.Nil, ErrResourceNotFound
	}
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("resolve book owner: %w", err)
	}
	return ownerID, shopID, nil
}
