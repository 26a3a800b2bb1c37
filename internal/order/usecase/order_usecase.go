package usecase

import (
	"time"

	cartusecase "storefront-backend/internal/cart/usecase"
	orderdomain "storefront-backend/internal/order/domain"
	"storefront-backend/internal/order/repository"
	"storefront-backend/pkg/apperr"

	"github.com/google/uuid"
)

// CreateOrderRequest carries an explicit item list, or none to order the
// current cart contents.
type CreateOrderRequest struct {
	Items           []orderdomain.OrderItem `json:"items"`
	ShippingAddress string                  `json:"shippingAddress"`
	PaymentMethod   string                  `json:"paymentMethod"`
}

// OrderUsecase defines order operations for a single user
type OrderUsecase interface {
	GetOrders(userID string) ([]orderdomain.Order, error)
	GetOrderByID(userID, orderID string) (*orderdomain.Order, error)
	CreateOrder(userID string, req *CreateOrderRequest) (*orderdomain.Order, error)
	// ImportOrders appends migrated guest orders to the history
	ImportOrders(userID string, orders []orderdomain.Order) (int, error)
}

type orderUsecase struct {
	orderRepo repository.OrderRepository
	cart      cartusecase.CartUsecase
}

func NewOrderUsecase(orderRepo repository.OrderRepository, cart cartusecase.CartUsecase) OrderUsecase {
	return &orderUsecase{orderRepo: orderRepo, cart: cart}
}

func (u *orderUsecase) GetOrders(userID string) ([]orderdomain.Order, error) {
	return u.orderRepo.FindByUser(userID)
}

func (u *orderUsecase) GetOrderByID(userID, orderID string) (*orderdomain.Order, error) {
	order, err := u.orderRepo.FindByID(userID, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperr.NotFound("NotFound", "order not found")
	}
	return order, nil
}

func total(items []orderdomain.OrderItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

func (u *orderUsecase) CreateOrder(userID string, req *CreateOrderRequest) (*orderdomain.Order, error) {
	items := req.Items
	fromCart := false

	if len(items) == 0 {
		cartItems, err := u.cart.GetCart(userID)
		if err != nil {
			return nil, err
		}
		for _, ci := range cartItems {
			items = append(items, orderdomain.OrderItem{
				ProductID: ci.ProductID,
				Name:      ci.Name,
				Price:     ci.Price,
				Quantity:  ci.Quantity,
				Image:     ci.Image,
			})
		}
		fromCart = true
	}

	if len(items) == 0 {
		return nil, apperr.Validation("items", "order must contain at least one item")
	}

	now := time.Now()
	order := &orderdomain.Order{
		ID:              uuid.New().String(),
		Items:           items,
		Total:           total(items),
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		Status:          orderdomain.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := u.orderRepo.Append(userID, order); err != nil {
		return nil, err
	}

	if fromCart {
		if err := u.cart.Clear(userID); err != nil {
			return nil, err
		}
	}

	return order, nil
}

func (u *orderUsecase) ImportOrders(userID string, orders []orderdomain.Order) (int, error) {
	count := 0
	for _, o := range orders {
		if len(o.Items) == 0 {
			continue
		}
		if o.ID == "" {
			o.ID = uuid.New().String()
		}
		if o.Status == "" {
			o.Status = orderdomain.StatusPending
		}
		if o.Total == 0 {
			o.Total = total(o.Items)
		}
		now := time.Now()
		if o.CreatedAt.IsZero() {
			o.CreatedAt = now
		}
		if o.UpdatedAt.IsZero() {
			o.UpdatedAt = now
		}
		if err := u.orderRepo.Append(userID, &o); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
