package service

import (
	"context"
	"io"

	"storefront/internal/model"
)

// CatalogService defines operations for the product catalogue.
type CatalogService interface {
	// List retrieves the full catalogue.
	List(ctx context.Context) ([]model.Product, error)

	// Create adds a new product, storing its uploaded image when present.
	Create(ctx context.Context, req *CreateProductRequest) (*model.Product, error)
}

// CartService defines the cart operations and their add/remove policy.
type CartService interface {
	// Add validates the request against the catalogue and appends a cart
	// entry. Returns the matched catalogue records as confirmation so the
	// client can refresh stale price or image data.
	Add(ctx context.Context, req *model.AddToCartRequest) ([]model.Product, error)

	// Remove deletes the single entry matching both the product reference
	// and the cart entry id.
	Remove(ctx context.Context, req *model.RemoveFromCartRequest) error

	// RemoveAll clears the cart unconditionally.
	RemoveAll(ctx context.Context) error

	// List returns the current cart snapshot.
	List(ctx context.Context) ([]model.CartEntry, error)
}

// OrderService defines order placement.
type OrderService interface {
	// PlaceOrder aggregates the current cart against the catalogue into a
	// persisted, immutable order and clears the consumed entries.
	PlaceOrder(ctx context.Context) (*model.Order, error)
}

// CreateProductRequest carries the fields of a product-creation request.
// ImageData is the uploaded file when one was sent; ImageURL is the
// alternative external location.
type CreateProductRequest struct {
	ID        string
	Name      string
	Price     float64
	ImageName string
	ImageData io.Reader
	ImageURL  string
}
