package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"advertisement-api/internal/domain"
)

// PostgresAdvertisementRepository implements AdvertisementRepository using PostgreSQL
type PostgresAdvertisementRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAdvertisementRepository creates a new PostgresAdvertisementRepository
func NewPostgresAdvertisementRepository(pool *pgxpool.Pool) *PostgresAdvertisementRepository {
	return &PostgresAdvertisementRepository{pool: pool}
}

// Create creates a new advertisement and fills in the generated ID
func (r *PostgresAdvertisementRepository) Create(ctx context.Context, ad *domain.Advertisement) error {
	query := `
		INSERT INTO advertisements (title, description, price, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query,
		ad.Title,
		ad.Description,
		ad.Price,
		ad.OwnerID,
		ad.CreatedAt,
	).Scan(&ad.ID)
}

// GetByID retrieves an advertisement by ID
func (r *PostgresAdvertisementRepository) GetByID(ctx context.Context, id int64) (*domain.Advertisement, error) {
	query := `
		SELECT id, title, description, price, owner_id, created_at, updated_at
		FROM advertisements
		WHERE id = $1
	`
	ad := &domain.Advertisement{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&ad.ID,
		&ad.Title,
		&ad.Description,
		&ad.Price,
		&ad.OwnerID,
		&ad.CreatedAt,
		&ad.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return ad, nil
}

// List retrieves advertisements, optionally filtered by a case-insensitive
// substring match on title or description
func (r *PostgresAdvertisementRepository) List(ctx context.Context, search string, offset, limit int) ([]*domain.Advertisement, error) {
	query := `
		SELECT id, title, description, price, owner_id, created_at, updated_at
		FROM advertisements
		WHERE ($1::text = '' OR title ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		ORDER BY id
		OFFSET $2 LIMIT $3
	`
	rows, err := r.pool.Query(ctx, query, search, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ads []*domain.Advertisement
	for rows.Next() {
		ad := &domain.Advertisement{}
		err := rows.Scan(
			&ad.ID,
			&ad.Title,
			&ad.Description,
			&ad.Price,
			&ad.OwnerID,
			&ad.CreatedAt,
			&ad.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		ads = append(ads, ad)
	}
	return ads, rows.Err()
}

// Update persists the current state of an advertisement
func (r *PostgresAdvertisementRepository) Update(ctx context.Context, ad *domain.Advertisement) error {
	query := `
		UPDATE advertisements
		SET title = $2, description = $3, price = $4, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query,
		ad.ID,
		ad.Title,
		ad.Description,
		ad.Price,
	)
	return err
}

// Delete removes an advertisement
func (r *PostgresAdvertisementRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM advertisements WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
