package repository

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// cartRepository implements the CartRepository interface using PostgreSQL.
type cartRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCartRepository creates a new PostgreSQL-backed cart repository.
func NewCartRepository(pool *pgxpool.Pool, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

// ListAll returns the current cart snapshot in insertion order.
func (r *cartRepository) ListAll(ctx context.Context) ([]model.CartEntry, error) {
	query := `
		SELECT cart_id, product_id, product_name, quantity, date
		FROM cart_entries
		ORDER BY seq
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query cart entries")
		return nil, fmt.Errorf("failed to query cart entries: %w", err)
	}
	defer rows.Close()

	return scanCartEntries(rows, r.logger)
}

// Insert appends a new entry to the cart.
func (r *cartRepository) Insert(ctx context.Context, entry model.CartEntry) error {
	query := `
		INSERT INTO cart_entries (cart_id, product_id, product_name, quantity, date)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		entry.CartID,
		entry.ProductReference.ID,
		entry.ProductReference.Name,
		entry.Quantity,
		entry.Date,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			r.logger.Warn().
				Str("cart_id", entry.CartID).
				Msg("cart entry id already in use")
			return model.ErrDuplicateCartEntry
		}
		r.logger.Error().Err(err).
			Str("cart_id", entry.CartID).
			Str("product_id", entry.ProductReference.ID).
			Msg("failed to insert cart entry")
		return fmt.Errorf("failed to insert cart entry: %w", err)
	}

	r.logger.Debug().
		Str("cart_id", entry.CartID).
		Str("product_id", entry.ProductReference.ID).
		Msg("cart entry inserted")

	return nil
}

// FindByRef returns entries matching the product reference, optionally
// restricted to a single cart id.
func (r *cartRepository) FindByRef(ctx context.Context, ref model.ProductRef, cartID string) ([]model.CartEntry, error) {
	query := `
		SELECT cart_id, product_id, product_name, quantity, date
		FROM cart_entries
		WHERE product_id = $1 AND product_name = $2
	`
	args := []any{ref.ID, ref.Name}

	if cartID != "" {
		query += ` AND cart_id = $3`
		args = append(args, cartID)
	}
	query += ` ORDER BY seq`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).
			Str("product_id", ref.ID).
			Str("cart_id", cartID).
			Msg("failed to query cart entries by reference")
		return nil, fmt.Errorf("failed to query cart entries by reference: %w", err)
	}
	defer rows.Close()

	return scanCartEntries(rows, r.logger)
}

// DeleteOne removes the single entry matching both the cart id and the
// product reference. The cart id is the primary key, so at most one row can
// ever match.
func (r *cartRepository) DeleteOne(ctx context.Context, cartID string, ref model.ProductRef) error {
	query := `
		DELETE FROM cart_entries
		WHERE cart_id = $1 AND product_id = $2 AND product_name = $3
	`

	ct, err := r.pool.Exec(ctx, query, cartID, ref.ID, ref.Name)
	if err != nil {
		r.logger.Error().Err(err).
			Str("cart_id", cartID).
			Str("product_id", ref.ID).
			Msg("failed to delete cart entry")
		return fmt.Errorf("failed to delete cart entry: %w", err)
	}

	if ct.RowsAffected() == 0 {
		r.logger.Warn().
			Str("cart_id", cartID).
			Str("product_id", ref.ID).
			Msg("no cart entry matched for deletion")
		return model.ErrCartMismatch
	}

	r.logger.Debug().Str("cart_id", cartID).Msg("cart entry deleted")
	return nil
}

// DeleteAll clears the entire cart.
func (r *cartRepository) DeleteAll(ctx context.Context) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM cart_entries`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to clear cart")
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	r.logger.Debug().Int64("deleted", ct.RowsAffected()).Msg("cart cleared")
	return nil
}

// DeleteByIDs removes the given entries within the provided transaction.
func (r *cartRepository) DeleteByIDs(ctx context.Context, tx pgx.Tx, cartIDs []string) (int64, error) {
	if len(cartIDs) == 0 {
		return 0, nil
	}

	ct, err := tx.Exec(ctx, `DELETE FROM cart_entries WHERE cart_id = ANY($1)`, cartIDs)
	if err != nil {
		r.logger.Error().Err(err).
			Int("count", len(cartIDs)).
			Msg("failed to delete cart entries")
		return 0, fmt.Errorf("failed to delete cart entries: %w", err)
	}

	return ct.RowsAffected(), nil
}

// scanCartEntries drains rows into cart entries.
func scanCartEntries(rows pgx.Rows, logger zerolog.Logger) ([]model.CartEntry, error) {
	var entries []model.CartEntry
	for rows.Next() {
		var e model.CartEntry
		err := rows.Scan(
			&e.CartID,
			&e.ProductReference.ID,
			&e.ProductReference.Name,
			&e.Quantity,
			&e.Date,
		)
		if err != nil {
			logger.Error().Err(err).Msg("failed to scan cart entry row")
			return nil, fmt.Errorf("failed to scan cart entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("error iterating cart entry rows")
		return nil, fmt.Errorf("error iterating cart entries: %w", err)
	}

	return entries, nil
}
