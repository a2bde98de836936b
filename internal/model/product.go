package model

// Product represents a purchasable product in the catalogue. The catalogue
// is read-only from the cart and order engine's point of view; Image is the
// stored upload path or an external URL and may be absent.
type Product struct {
	ID    string  `json:"id" db:"id"`
	Name  string  `json:"name" db:"name"`
	Price float64 `json:"price" db:"price"`
	Image *string `json:"image,omitempty" db:"image"`
}

// ProductRef is a lightweight reference to a catalogue product, used as the
// join key from cart entries. A ref is valid only while a catalogue lookup by
// both id and name still returns at least one record.
type ProductRef struct {
	ID   string `json:"id" db:"product_id"`
	Name string `json:"name" db:"product_name"`
}
