package domain

import "time"

// Todo is a list entry, optionally linked to a product.
type Todo struct {
	ID           string    `json:"id"`
	Text         string    `json:"text"`
	Completed    bool      `json:"completed"`
	ProductID    string    `json:"productId,omitempty"`
	ProductName  string    `json:"productName,omitempty"`
	ProductPrice float64   `json:"productPrice,omitempty"`
	ProductImage string    `json:"productImage,omitempty"`
	Quantity     int       `json:"quantity"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
