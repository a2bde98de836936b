package model

import "time"

// OrderItem is a cart entry enriched with the product record and the line
// total at the moment the order was placed. It is a snapshot: later catalogue
// price changes never affect a placed order.
type OrderItem struct {
	CartID           string     `json:"cartId" db:"cart_id"`
	ProductReference ProductRef `json:"productReference"`
	ProductDetails   Product    `json:"productDetails"`
	Quantity         *int       `json:"quantity,omitempty" db:"quantity"`
	ItemTotal        float64    `json:"itemTotal" db:"item_total"`
	Date             time.Time  `json:"date" db:"date"`
}

// Order is an immutable, priced snapshot of the cart at checkout time.
// TotalItems is the unit count summed over matched entries; TotalItemsCart is
// the line-item count.
type Order struct {
	OrderID        string      `json:"orderId" db:"order_id"`
	Items          []OrderItem `json:"items"`
	TotalAmount    float64     `json:"totalAmount" db:"total_amount"`
	TotalItemsCart int         `json:"totalItemsCart" db:"total_items_cart"`
	TotalItems     int         `json:"totalItems" db:"total_items"`
	OrderDate      time.Time   `json:"orderDate" db:"order_date"`
}
