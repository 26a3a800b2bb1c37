package usecase

import (
	authdomain "storefront-backend/internal/auth/domain"
	authdto "storefront-backend/internal/auth/dto"
	"storefront-backend/pkg/token"
)

// AuthUsecase defines the authentication operations
type AuthUsecase interface {
	// Register validates and creates a new user, returning it sanitized
	Register(req *authdto.RegisterRequest) (*authdomain.User, error)

	// Login verifies credentials and issues a session token
	Login(req *authdto.LoginRequest) (*authdto.LoginResponse, error)

	// ValidateToken verifies a session token and returns its claims
	ValidateToken(tokenString string) (*token.Claims, error)
}
