package domain

import "time"

type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
}

// Order is an immutable snapshot taken at creation. Status is an opaque
// string with no transition logic.
type Order struct {
	ID              string      `json:"id"`
	Items           []OrderItem `json:"items"`
	Total           float64     `json:"total"`
	ShippingAddress string      `json:"shippingAddress,omitempty"`
	PaymentMethod   string      `json:"paymentMethod,omitempty"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

const StatusPending = "pending"
