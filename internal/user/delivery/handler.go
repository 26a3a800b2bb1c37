package delivery

import (
	"net/http"

	authdelivery "storefront-backend/internal/auth/delivery"
	"storefront-backend/internal/user/usecase"
	"storefront-backend/pkg/apperr"
	"storefront-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler handles profile and migration HTTP requests
type UserHandler struct {
	userUsecase usecase.UserUsecase
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// Me returns the authenticated user
// GET /users/me
func (h *UserHandler) Me(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	user, err := h.userUsecase.GetProfile(userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"user": user})
}

// UpdateMe merges profile fields
// PUT /users/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	var req usecase.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("body", "invalid request body"))
		return
	}

	user, err := h.userUsecase.UpdateProfile(userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"user": user})
}

// Migrate folds guest-side state into the account
// POST /users/migrate
func (h *UserHandler) Migrate(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	var req usecase.MigrateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("body", "invalid request body"))
		return
	}

	result, err := h.userUsecase.Migrate(userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, result)
}
