package repository

import (
	cartdomain "storefront-backend/internal/cart/domain"
	"storefront-backend/pkg/apperr"
	"storefront-backend/pkg/jsonstore"
)

const cartsDoc = "carts"

// CartRepository stores one ordered item sequence per user
type CartRepository interface {
	Get(userID string) ([]cartdomain.Item, error)
	// Mutate applies fn to the user's cart under the document lock and
	// persists the result. fn returns the new item sequence.
	Mutate(userID string, fn func(items []cartdomain.Item) ([]cartdomain.Item, error)) ([]cartdomain.Item, error)
}

type cartRepository struct {
	store jsonstore.Store
}

func NewCartRepository(store jsonstore.Store) CartRepository {
	return &cartRepository{store: store}
}

func (r *cartRepository) load() (map[string][]cartdomain.Item, error) {
	carts := make(map[string][]cartdomain.Item)
	if err := r.store.Load(cartsDoc, &carts); err != nil {
		return nil, apperr.Storage(err)
	}
	return carts, nil
}

func (r *cartRepository) Get(userID string) ([]cartdomain.Item, error) {
	carts, err := r.load()
	if err != nil {
		return nil, err
	}
	items := carts[userID]
	if items == nil {
		items = []cartdomain.Item{}
	}
	return items, nil
}

func (r *cartRepository) Mutate(userID string, fn func(items []cartdomain.Item) ([]cartdomain.Item, error)) ([]cartdomain.Item, error) {
	defer r.store.Lock(cartsDoc)()

	carts, err := r.load()
	if err != nil {
		return nil, err
	}

	items := carts[userID]
	if items == nil {
		items = []cartdomain.Item{}
	}

	items, err = fn(items)
	if err != nil {
		return nil, err
	}

	carts[userID] = items
	if err := r.store.Save(cartsDoc, carts); err != nil {
		return nil, apperr.Storage(err)
	}
	return items, nil
}
