package repository

import (
	"context"
	"fmt"

	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *orderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// CreateOrder inserts the order header within the provided transaction.
func (r *orderRepository) CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	query := `
		INSERT INTO orders (order_id, total_amount, total_items_cart, total_items, order_date)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := tx.Exec(ctx, query,
		order.OrderID,
		order.TotalAmount,
		order.TotalItemsCart,
		order.TotalItems,
		order.OrderDate,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.OrderID).
			Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.OrderID).
		Msg("order created")

	return nil
}

// CreateOrderItems inserts the order's items within the provided transaction.
// Each row carries the full product snapshot taken at placement time.
func (r *orderRepository) CreateOrderItems(ctx context.Context, tx pgx.Tx, orderID string, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO order_items (id, order_id, cart_id, product_id, product_name, price, image, quantity, item_total, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query,
			uuid.New(),
			orderID,
			item.CartID,
			item.ProductDetails.ID,
			item.ProductDetails.Name,
			item.ProductDetails.Price,
			item.ProductDetails.Image,
			item.Quantity,
			item.ItemTotal,
			item.Date,
		)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(items); i++ {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().
				Err(err).
				Str("order_id", orderID).
				Str("cart_id", items[i].CartID).
				Msg("failed to create order item")
			return fmt.Errorf("failed to create order item: %w", err)
		}
	}

	r.logger.Debug().
		Str("order_id", orderID).
		Int("count", len(items)).
		Msg("order items created")

	return nil
}

// GetByID retrieves a placed order with its items, or nil when absent.
func (r *orderRepository) GetByID(ctx context.Context, orderID string) (*model.Order, error) {
	orderQuery := `
		SELECT order_id, total_amount, total_items_cart, total_items, order_date
		FROM orders
		WHERE order_id = $1
	`

	var order model.Order
	err := r.pool.QueryRow(ctx, orderQuery, orderID).Scan(
		&order.OrderID,
		&order.TotalAmount,
		&order.TotalItemsCart,
		&order.TotalItems,
		&order.OrderDate,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("order_id", orderID).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", orderID).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	itemsQuery := `
		SELECT cart_id, product_id, product_name, price, image, quantity, item_total, date
		FROM order_items
		WHERE order_id = $1
		ORDER BY cart_id
	`

	rows, err := r.pool.Query(ctx, itemsQuery, orderID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", orderID).
			Msg("failed to query order items")
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item model.OrderItem
		err := rows.Scan(
			&item.CartID,
			&item.ProductDetails.ID,
			&item.ProductDetails.Name,
			&item.ProductDetails.Price,
			&item.ProductDetails.Image,
			&item.Quantity,
			&item.ItemTotal,
			&item.Date,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order item row")
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		item.ProductReference = model.ProductRef{ID: item.ProductDetails.ID, Name: item.ProductDetails.Name}
		order.Items = append(order.Items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order item rows")
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return &order, nil
}
