package model

import "time"

// CartEntry is one line item in the cart. CartID is caller-generated and
// unique within the store; multiple entries may reference the same product.
// Quantity is optional on the wire and stored only when supplied.
type CartEntry struct {
	CartID           string     `json:"cartId" db:"cart_id"`
	ProductReference ProductRef `json:"productReference"`
	Quantity         *int       `json:"quantity,omitempty" db:"quantity"`
	Date             time.Time  `json:"date" db:"date"`
}

// Units returns the number of units this entry contributes to an order.
// An absent quantity counts as a single unit.
func (e CartEntry) Units() int {
	if e.Quantity == nil {
		return 1
	}
	return *e.Quantity
}

// AddToCartRequest is the request payload for adding a product to the cart.
// Field casing matches the storefront UI.
type AddToCartRequest struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	InCartID    string `json:"inCartId"`
	Quantity    *int   `json:"quantity,omitempty"`
}

// RemoveFromCartRequest is the request payload for removing a single entry.
type RemoveFromCartRequest struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	InCartID    string `json:"inCartId"`
}

// Ref returns the product reference named by the request.
func (r AddToCartRequest) Ref() ProductRef {
	return ProductRef{ID: r.ProductID, Name: r.ProductName}
}

// Ref returns the product reference named by the request.
func (r RemoveFromCartRequest) Ref() ProductRef {
	return ProductRef{ID: r.ProductID, Name: r.ProductName}
}
