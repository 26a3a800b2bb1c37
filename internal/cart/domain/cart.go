package domain

import "time"

// Item is a single cart entry. A user's cart holds at most one entry per
// productId; adding the same product again sums quantities.
type Item struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	Image     string    `json:"image,omitempty"`
	AddedAt   time.Time `json:"addedAt"`
}
