package main

import (
	"log"

	api "storefront-backend/cmd/api"
	authRepo "storefront-backend/internal/auth/repository"
	authUsecase "storefront-backend/internal/auth/usecase"
	cartRepo "storefront-backend/internal/cart/repository"
	cartUsecase "storefront-backend/internal/cart/usecase"
	orderRepo "storefront-backend/internal/order/repository"
	orderUsecase "storefront-backend/internal/order/usecase"
	todoRepo "storefront-backend/internal/todo/repository"
	todoUsecase "storefront-backend/internal/todo/usecase"
	userUsecase "storefront-backend/internal/user/usecase"
	"storefront-backend/pkg/config"
	"storefront-backend/pkg/jsonstore"
	"storefront-backend/pkg/password"
	"storefront-backend/pkg/token"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize the file-backed record store
	store, err := jsonstore.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Fatal("Failed to initialize data store:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(store)
	cartRepository := cartRepo.NewCartRepository(store)
	orderRepository := orderRepo.NewOrderRepository(store)
	todoRepository := todoRepo.NewTodoRepository(store)

	// Initialize shared services
	hasher := password.NewHasher(cfg.BcryptCost)
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Initialize use cases (dependency injection)
	authUc := authUsecase.NewAuthUsecase(userRepository, hasher, tokens)
	cartUc := cartUsecase.NewCartUsecase(cartRepository)
	orderUc := orderUsecase.NewOrderUsecase(orderRepository, cartUc)
	todoUc := todoUsecase.NewTodoUsecase(todoRepository)
	userUc := userUsecase.NewUserUsecase(userRepository, cartUc, orderUc, todoUc)

	// Initialize HTTP handler
	handler := api.NewHandler(authUc, userUc, cartUc, orderUc, todoUc, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
