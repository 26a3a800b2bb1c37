package usecase

import (
	"time"

	cartdomain "storefront-backend/internal/cart/domain"
	"storefront-backend/internal/cart/repository"
	"storefront-backend/pkg/apperr"

	"github.com/google/uuid"
)

// AddItemRequest carries the product being added to the cart
type AddItemRequest struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

// CartUsecase defines cart operations for a single user
type CartUsecase interface {
	GetCart(userID string) ([]cartdomain.Item, error)
	AddItem(userID string, req *AddItemRequest) ([]cartdomain.Item, error)
	UpdateQuantity(userID, productID string, quantity int) ([]cartdomain.Item, error)
	RemoveItem(userID, productID string) ([]cartdomain.Item, error)
	Clear(userID string) error
	// MergeItems folds guest items into the cart with AddItem semantics
	MergeItems(userID string, items []cartdomain.Item) ([]cartdomain.Item, error)
}

type cartUsecase struct {
	cartRepo repository.CartRepository
}

func NewCartUsecase(cartRepo repository.CartRepository) CartUsecase {
	return &cartUsecase{cartRepo: cartRepo}
}

func (u *cartUsecase) GetCart(userID string) ([]cartdomain.Item, error) {
	return u.cartRepo.Get(userID)
}

// mergeItem adds an item to the sequence, summing quantities when the
// productId is already present.
func mergeItem(items []cartdomain.Item, item cartdomain.Item) []cartdomain.Item {
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity += item.Quantity
			return items
		}
	}
	return append(items, item)
}

func (u *cartUsecase) AddItem(userID string, req *AddItemRequest) ([]cartdomain.Item, error) {
	if req.ProductID == "" {
		return nil, apperr.Validation("productId", "productId is required")
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	return u.cartRepo.Mutate(userID, func(items []cartdomain.Item) ([]cartdomain.Item, error) {
		return mergeItem(items, cartdomain.Item{
			ID:        uuid.New().String(),
			ProductID: req.ProductID,
			Name:      req.Name,
			Price:     req.Price,
			Quantity:  req.Quantity,
			Image:     req.Image,
			AddedAt:   time.Now(),
		}), nil
	})
}

func (u *cartUsecase) UpdateQuantity(userID, productID string, quantity int) ([]cartdomain.Item, error) {
	return u.cartRepo.Mutate(userID, func(items []cartdomain.Item) ([]cartdomain.Item, error) {
		for i := range items {
			if items[i].ProductID == productID {
				if quantity <= 0 {
					// Quantity driven to zero removes the entry
					return append(items[:i], items[i+1:]...), nil
				}
				items[i].Quantity = quantity
				return items, nil
			}
		}
		return nil, apperr.CartItemNotFound()
	})
}

func (u *cartUsecase) RemoveItem(userID, productID string) ([]cartdomain.Item, error) {
	return u.cartRepo.Mutate(userID, func(items []cartdomain.Item) ([]cartdomain.Item, error) {
		for i := range items {
			if items[i].ProductID == productID {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, apperr.CartItemNotFound()
	})
}

func (u *cartUsecase) Clear(userID string) error {
	_, err := u.cartRepo.Mutate(userID, func([]cartdomain.Item) ([]cartdomain.Item, error) {
		return []cartdomain.Item{}, nil
	})
	return err
}

func (u *cartUsecase) MergeItems(userID string, guest []cartdomain.Item) ([]cartdomain.Item, error) {
	return u.cartRepo.Mutate(userID, func(items []cartdomain.Item) ([]cartdomain.Item, error) {
		for _, g := range guest {
			if g.ProductID == "" {
				continue
			}
			if g.Quantity <= 0 {
				g.Quantity = 1
			}
			if g.ID == "" {
				g.ID = uuid.New().String()
			}
			if g.AddedAt.IsZero() {
				g.AddedAt = time.Now()
			}
			items = mergeItem(items, g)
		}
		return items, nil
	})
}
