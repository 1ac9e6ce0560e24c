package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"boighor-backend/internal/domains/book/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Insert(ctx context.Context, book *model.Book) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO books (id, shop_id, category_id, title, affiliate_url, image_url, short_description, price, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`,
		book.ID, book.ShopID, book.CategoryID, book.Title, book.AffiliateURL,
		book.ImageURL, book.ShortDescription, book.Price, book.Position,
	).Scan(&book.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, book *model.Book) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE books
		SET category_id = $2,
		    title = $3,
		    affiliate_url = $4,
		    image_url = $5,
		    short_description = $6,
		    price = $7
		WHERE id = $1`,
		book.ID, book.CategoryID, book.Title, book.AffiliateURL,
		book.ImageURL, book.ShortDescription, book.Price,
	)
	if err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, bookID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, bookID)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, bookID uuid.UUID) (*model.Book, error) {
	var book model.Book
	err := r.pool.QueryRow(ctx, `
		SELECT id, shop_id, category_id, title, affiliate_url, image_url, short_description, price, position, created_at
		FROM books
		WHERE id = $1`,
		bookID,
	).Scan(
		&book.ID, &book.ShopID, &book.CategoryID, &book.Title, &book.AffiliateURL,
		&book.ImageURL, &book.ShortDescription, &book.Price, &book.Position, &book.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	return &book, nil
}

func (r *postgresRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]model.Book, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, shop_id, category_id, title, affiliate_url, image_url, short_description, price, position, created_at
		FROM books
		WHERE shop_id = $1
		ORDER BY position ASC NULLS LAST, created_at DESC`,
		shopID,
	)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0)
	for rows.Next() {
		var book model.Book
		err := rows.Scan(
			&book.ID, &book.ShopID, &book.CategoryID, &book.Title, &book.AffiliateURL,
			&book.ImageURL, &book.ShortDescription, &book.Price, &book.Position, &book.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return books, nil
}
