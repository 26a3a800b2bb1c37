package usecase

import (
	"errors"
	"testing"

	cartdomain "storefront-backend/internal/cart/domain"
	"storefront-backend/internal/cart/repository"
	"storefront-backend/pkg/apperr"
	"storefront-backend/pkg/jsonstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUsecase() CartUsecase {
	return NewCartUsecase(repository.NewCartRepository(jsonstore.NewMemStore()))
}

func TestGetCart_EmptyForNewUser(t *testing.T) {
	t.Parallel()
	uc := newTestUsecase()

	items, err := uc.GetCart("u1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAddItem_MergesByProductID(t *testing.T) {
	t.Parallel()
	uc := newTestUsecase()

	_, err := uc.AddItem("u1", &AddItemRequest{ProductID: "p1", Name: "Mug", Price: 9.5, Quantity: 2})
	require.NoError(t, err)

	items, err := uc.AddItem("u1", &AddItemRequest{ProductID: "p1", Name: "Mug", Price: 9.5, Quantity: 2})
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)
}

func TestAddItem_DefaultQuantity(t *testing.T) {
	t.Parallel()
	uc := newTestUsecase()

	items, err := uc.AddItem("u1", &AddItemRequest{ProductID: "p1"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
	assert.NotEmpty(t, items[0].ID)
}

func TestAddItem_MissingProductID(t *testing.T) {
	t.Parallel()
	uc := newTestUsecase()

	_, err := uc.AddItem("u1", &AddItemRequest{Quantity: 1})
	require.Error(t, err)

	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "ValidationError", appErr.Code)
}

func TestUpdateQuantity_ZeroRemovesItem(t *testing.T) {
	t.Parallel()
	uc := newTestUsecase()

	_, err := uc.AddItem("u1", &AddItemRequest{ProductID: "p1", Quantity: 3})
	require.NoError(t, err)

	items, err := uc.UpdateQuantity("u1", "p1", 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUpdateQuantity_NotFound(t *testing.T) {
	t.Parallel()
	uc := newTestUsecase()

	_, err := uc.UpdateQuantity("u1", "missing", 2)
	require.Error(t, err)

	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CartItemNotFound", appErr.Code)
}

func TestRemoveItem(t *testing.T) {
	t.Parallel()
	uc := newTestUsecase()

	_, err := uc.AddItem("u1", &AddItemRequest{ProductID: "p1", Quantity: 1})
	require.NoError(t, err)
	_, err = uc.AddItem("u1", &AddItemRequest{ProductID: "p2", Quantity: 1})
	require.NoError(t, err)

	items, err := uc.RemoveItem("u1", "p1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ProductID)
}

func TestCarts_IsolatedPerUser(t *testing.T) {
	t.Parallel()
	uc := newTestUsecase()

	_, err := uc.AddItem("u1", &AddItemRequest{ProductID: "p1", Quantity: 1})
	require.NoError(t, err)

	items, err := uc.GetCart("u2")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMergeItems_AppliesAddSemantics(t *testing.T) {
	t.Parallel()
	uc := newTestUsecase()

	_, err := uc.AddItem("u1", &AddItemRequest{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)

	items, err := uc.MergeItems("u1", []cartdomain.Item{
		{ProductID: "p1", Quantity: 3},
		{ProductID: "p2", Quantity: 1},
		{ProductID: ""}, // skipped
	})
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, "p2", items[1].ProductID)
	assert.NotEmpty(t, items[1].ID)
}
