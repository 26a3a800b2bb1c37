package api

import (
	authUsecase "storefront-backend/internal/auth/usecase"
	cartUsecasePkg "storefront-backend/internal/cart/usecase"
	orderUsecasePkg "storefront-backend/internal/order/usecase"
	todoUsecasePkg "storefront-backend/internal/todo/usecase"
	userUsecasePkg "storefront-backend/internal/user/usecase"
	"storefront-backend/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase  authUsecase.AuthUsecase
	userUsecase  userUsecasePkg.UserUsecase
	cartUsecase  cartUsecasePkg.CartUsecase
	orderUsecase orderUsecasePkg.OrderUsecase
	todoUsecase  todoUsecasePkg.TodoUsecase
	config       *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, userUc userUsecasePkg.UserUsecase, cartUc cartUsecasePkg.CartUsecase, orderUc orderUsecasePkg.OrderUsecase, todoUc todoUsecasePkg.TodoUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:  authUc,
		userUsecase:  userUc,
		cartUsecase:  cartUc,
		orderUsecase: orderUc,
		todoUsecase:  todoUc,
		config:       cfg,
	}
}

func (h *Handler) Engine() *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if len(h.config.AllowedOrigins) == 1 && h.config.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = h.config.AllowedOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	SetupRoutes(r, h)
	return r
}

func (h *Handler) Start(addr string) error {
	return h.Engine().Run(addr)
}
