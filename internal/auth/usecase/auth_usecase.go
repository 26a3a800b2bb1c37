package usecase

import (
	"errors"
	"regexp"
	"time"

	authdomain "storefront-backend/internal/auth/domain"
	authdto "storefront-backend/internal/auth/dto"
	"storefront-backend/internal/auth/repository"
	"storefront-backend/pkg/apperr"
	"storefront-backend/pkg/password"
	"storefront-backend/pkg/token"

	"github.com/google/uuid"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	hasher   *password.Hasher
	tokens   *token.Manager
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, hasher *password.Hasher, tokens *token.Manager) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdomain.User, error) {
	// Validation order matters: first failure wins
	if len(req.Username) < 3 {
		return nil, apperr.Validation("username", "username must be at least 3 characters")
	}
	if !emailPattern.MatchString(req.Email) {
		return nil, apperr.Validation("email", "email is not valid")
	}
	if len(req.Password) < 6 {
		return nil, apperr.Validation("password", "password must be at least 6 characters")
	}

	existing, err := u.userRepo.FindByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.UsernameTaken()
	}

	existing, err = u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.EmailTaken()
	}

	hash, err := u.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	now := time.Now()
	user := &authdomain.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.LoginResponse, error) {
	user, err := u.userRepo.FindByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	// Unknown username and wrong password fail identically
	if user == nil {
		return nil, apperr.InvalidCredentials()
	}

	ok, err := u.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !ok {
		return nil, apperr.InvalidCredentials()
	}

	signed, err := u.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &authdto.LoginResponse{Token: signed, User: user}, nil
}

func (u *authUsecase) ValidateToken(tokenString string) (*token.Claims, error) {
	claims, err := u.tokens.Verify(tokenString)
	if err != nil {
		if errors.Is(err, token.ErrExpired) {
			return nil, apperr.TokenExpired()
		}
		return nil, apperr.InvalidToken()
	}
	return claims, nil
}
