package delivery

import (
	"net/http"

	authdto "storefront-backend/internal/auth/dto"
	"storefront-backend/internal/auth/usecase"
	"storefront-backend/pkg/apperr"
	"storefront-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Register creates a new account
// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("body", "invalid request body"))
		return
	}

	user, err := h.authUsecase.Register(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, gin.H{"user": user})
}

// Login verifies credentials and returns a session token
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("body", "invalid request body"))
		return
	}

	result, err := h.authUsecase.Login(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"token": result.Token, "user": result.User})
}
