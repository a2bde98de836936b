package repository

import (
	"context"

	"storefront/internal/model"

	"github.com/jackc/pgx/v5"
)

// CatalogRepository defines read access to the product catalogue, plus the
// single write used by the product-creation plumbing.
type CatalogRepository interface {
	// FindAll retrieves the full catalogue.
	FindAll(ctx context.Context) ([]model.Product, error)

	// FindByRef retrieves products matching both id and name of the reference.
	FindByRef(ctx context.Context, ref model.ProductRef) ([]model.Product, error)

	// Insert adds a new product to the catalogue.
	Insert(ctx context.Context, product model.Product) error
}

// CartRepository defines data access for cart entries.
type CartRepository interface {
	// ListAll returns the current cart snapshot in insertion order.
	ListAll(ctx context.Context) ([]model.CartEntry, error)

	// Insert appends a new entry. Returns model.ErrDuplicateCartEntry when
	// the cart id is already taken.
	Insert(ctx context.Context, entry model.CartEntry) error

	// FindByRef returns entries matching the product reference. A non-empty
	// cartID additionally restricts the match to that entry.
	FindByRef(ctx context.Context, ref model.ProductRef, cartID string) ([]model.CartEntry, error)

	// DeleteOne removes the single entry matching both the cart id and the
	// product reference. Returns model.ErrCartMismatch when nothing matched.
	DeleteOne(ctx context.Context, cartID string, ref model.ProductRef) error

	// DeleteAll clears the entire cart.
	DeleteAll(ctx context.Context) error

	// DeleteByIDs removes the given entries within the provided transaction.
	// Used by checkout to clear exactly the snapshot it read.
	DeleteByIDs(ctx context.Context, tx pgx.Tx, cartIDs []string) (int64, error)
}

// OrderRepository defines data access for the append-only order log.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts the order header within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts the order's items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, orderID string, items []model.OrderItem) error

	// GetByID retrieves a placed order with its items, or nil when absent.
	GetByID(ctx context.Context, orderID string) (*model.Order, error)
}
