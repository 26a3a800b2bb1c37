package repository

import (
	orderdomain "storefront-backend/internal/order/domain"
	"storefront-backend/pkg/apperr"
	"storefront-backend/pkg/jsonstore"
)

const ordersDoc = "orders"

// OrderRepository stores each user's order history as an append-only sequence
type OrderRepository interface {
	FindByUser(userID string) ([]orderdomain.Order, error)
	FindByID(userID, orderID string) (*orderdomain.Order, error)
	Append(userID string, order *orderdomain.Order) error
}

type orderRepository struct {
	store jsonstore.Store
}

func NewOrderRepository(store jsonstore.Store) OrderRepository {
	return &orderRepository{store: store}
}

func (r *orderRepository) load() (map[string][]orderdomain.Order, error) {
	orders := make(map[string][]orderdomain.Order)
	if err := r.store.Load(ordersDoc, &orders); err != nil {
		return nil, apperr.Storage(err)
	}
	return orders, nil
}

func (r *orderRepository) FindByUser(userID string) ([]orderdomain.Order, error) {
	orders, err := r.load()
	if err != nil {
		return nil, err
	}
	history := orders[userID]
	if history == nil {
		history = []orderdomain.Order{}
	}
	return history, nil
}

func (r *orderRepository) FindByID(userID, orderID string) (*orderdomain.Order, error) {
	history, err := r.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	for i := range history {
		if history[i].ID == orderID {
			return &history[i], nil
		}
	}
	return nil, nil
}

func (r *orderRepository) Append(userID string, order *orderdomain.Order) error {
	defer r.store.Lock(ordersDoc)()

	orders, err := r.load()
	if err != nil {
		return err
	}

	orders[userID] = append(orders[userID], *order)
	if err := r.store.Save(ordersDoc, orders); err != nil {
		return apperr.Storage(err)
	}
	return nil
}
