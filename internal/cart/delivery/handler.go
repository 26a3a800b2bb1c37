package delivery

import (
	"net/http"

	authdelivery "storefront-backend/internal/auth/delivery"
	"storefront-backend/internal/cart/usecase"
	"storefront-backend/pkg/apperr"
	"storefront-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// CartHandler handles cart-related HTTP requests
type CartHandler struct {
	cartUsecase usecase.CartUsecase
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartUsecase usecase.CartUsecase) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase}
}

// GetCart returns the authenticated user's cart
// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	items, err := h.cartUsecase.GetCart(userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"cart": items})
}

// AddItem adds a product to the cart, merging by productId
// POST /cart
func (h *CartHandler) AddItem(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	var req usecase.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("body", "invalid request body"))
		return
	}

	items, err := h.cartUsecase.AddItem(userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, gin.H{"cart": items})
}

// UpdateItem sets an item's quantity; zero removes it
// PUT /cart/:productId
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)
	productID := c.Param("productId")

	var req struct {
		Quantity *int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		response.Error(c, apperr.Validation("quantity", "quantity is required"))
		return
	}

	items, err := h.cartUsecase.UpdateQuantity(userID, productID, *req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"cart": items})
}

// ClearCart empties the cart
// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	if err := h.cartUsecase.Clear(userID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"cart": []any{}})
}

// RemoveItem deletes an item from the cart
// DELETE /cart/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)
	productID := c.Param("productId")

	items, err := h.cartUsecase.RemoveItem(userID, productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"cart": items})
}
