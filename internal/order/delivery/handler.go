package delivery

import (
	"net/http"

	authdelivery "storefront-backend/internal/auth/delivery"
	"storefront-backend/internal/order/usecase"
	"storefront-backend/pkg/apperr"
	"storefront-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderUsecase usecase.OrderUsecase
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderUsecase usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase}
}

// GetOrders returns the user's order history
// GET /orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	orders, err := h.orderUsecase.GetOrders(userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"orders": orders})
}

// GetOrderByID returns a single order
// GET /orders/:id
func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)
	orderID := c.Param("id")

	order, err := h.orderUsecase.GetOrderByID(userID, orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"order": order})
}

// CreateOrder places an order from the request items or the current cart
// POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	// Body is optional: an empty body orders the current cart contents
	var req usecase.CreateOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperr.Validation("body", "invalid request body"))
			return
		}
	}

	order, err := h.orderUsecase.CreateOrder(userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, gin.H{"order": order})
}
