package api

import (
	"net/http"

	authDelivery "storefront-backend/internal/auth/delivery"
	cartDelivery "storefront-backend/internal/cart/delivery"
	orderDelivery "storefront-backend/internal/order/delivery"
	todoDelivery "storefront-backend/internal/todo/delivery"
	userDelivery "storefront-backend/internal/user/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	authHandler := authDelivery.NewAuthHandler(h.authUsecase)
	userHandler := userDelivery.NewUserHandler(h.userUsecase)
	cartHandler := cartDelivery.NewCartHandler(h.cartUsecase)
	orderHandler := orderDelivery.NewOrderHandler(h.orderUsecase)
	todoHandler := todoDelivery.NewTodoHandler(h.todoUsecase)

	requireAuth := authDelivery.AuthMiddleware(h.authUsecase)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	// Auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// User routes (protected)
	users := r.Group("/users")
	users.Use(requireAuth)
	{
		users.GET("/me", userHandler.Me)
		users.PUT("/me", userHandler.UpdateMe)
		users.POST("/migrate", userHandler.Migrate)
	}

	// Cart routes (protected)
	cart := r.Group("/cart")
	cart.Use(requireAuth)
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("", cartHandler.AddItem)
		cart.DELETE("", cartHandler.ClearCart)
		cart.PUT("/:productId", cartHandler.UpdateItem)
		cart.DELETE("/:productId", cartHandler.RemoveItem)
	}

	// Order routes (protected)
	orders := r.Group("/orders")
	orders.Use(requireAuth)
	{
		orders.GET("", orderHandler.GetOrders)
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:id", orderHandler.GetOrderByID)
	}

	// Todo routes (protected)
	todos := r.Group("/todos")
	todos.Use(requireAuth)
	{
		todos.GET("", todoHandler.GetTodos)
		todos.POST("", todoHandler.CreateTodo)
		todos.POST("/bulk", todoHandler.BulkSync)
		todos.PUT("/:id", todoHandler.UpdateTodo)
		todos.DELETE("/:id", todoHandler.DeleteTodo)
	}
}
