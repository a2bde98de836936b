package repository

import (
	"context"
	"fmt"

	"storefront/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// catalogRepository implements the CatalogRepository interface using PostgreSQL.
type catalogRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCatalogRepository creates a new PostgreSQL-backed catalogue repository.
func NewCatalogRepository(pool *pgxpool.Pool, logger zerolog.Logger) CatalogRepository {
	return &catalogRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "catalog").Logger(),
	}
}

// FindAll retrieves the full catalogue.
func (r *catalogRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT id, name, price, image
		FROM products
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Image); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// FindByRef retrieves products matching both id and name of the reference.
// The double-key match tolerates id collisions across differently named records.
func (r *catalogRepository) FindByRef(ctx context.Context, ref model.ProductRef) ([]model.Product, error) {
	query := `
		SELECT id, name, price, image
		FROM products
		WHERE id = $1 AND name = $2
	`

	rows, err := r.pool.Query(ctx, query, ref.ID, ref.Name)
	if err != nil {
		r.logger.Error().Err(err).
			Str("product_id", ref.ID).
			Str("product_name", ref.Name).
			Msg("failed to query products by reference")
		return nil, fmt.Errorf("failed to query products by reference: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Image); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// Insert adds a new product to the catalogue.
func (r *catalogRepository) Insert(ctx context.Context, product model.Product) error {
	query := `
		INSERT INTO products (id, name, price, image)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query, product.ID, product.Name, product.Price, product.Image)
	if err != nil {
		r.logger.Error().Err(err).
			Str("product_id", product.ID).
			Msg("failed to insert product")
		return fmt.Errorf("failed to insert product: %w", err)
	}

	r.logger.Debug().
		Str("product_id", product.ID).
		Str("product_name", product.Name).
		Msg("product inserted")

	return nil
}
