package usecase

import (
	authdomain "storefront-backend/internal/auth/domain"
	authrepo "storefront-backend/internal/auth/repository"
	cartdomain "storefront-backend/internal/cart/domain"
	cartusecase "storefront-backend/internal/cart/usecase"
	orderdomain "storefront-backend/internal/order/domain"
	orderusecase "storefront-backend/internal/order/usecase"
	tododomain "storefront-backend/internal/todo/domain"
	todousecase "storefront-backend/internal/todo/usecase"
	"storefront-backend/pkg/apperr"
)

// UpdateProfileRequest carries the profile fields; nil means unchanged
type UpdateProfileRequest struct {
	DisplayName   *string `json:"displayName"`
	Phone         *string `json:"phone"`
	PaymentMethod *string `json:"paymentMethod"`
}

// MigrateRequest is guest-side state captured before login
type MigrateRequest struct {
	Cart   []cartdomain.Item   `json:"cart"`
	Orders []orderdomain.Order `json:"orders"`
	Todos  []tododomain.Todo   `json:"todos"`
}

// MigrateResult reports what was merged
type MigrateResult struct {
	Migrated  bool `json:"migrated"`
	CartItems int  `json:"cartItems"`
	Orders    int  `json:"orders"`
	Todos     int  `json:"todos"`
}

// UserUsecase defines profile and migration operations
type UserUsecase interface {
	GetProfile(userID string) (*authdomain.User, error)
	UpdateProfile(userID string, req *UpdateProfileRequest) (*authdomain.User, error)
	Migrate(userID string, req *MigrateRequest) (*MigrateResult, error)
}

type userUsecase struct {
	userRepo authrepo.UserRepository
	cart     cartusecase.CartUsecase
	orders   orderusecase.OrderUsecase
	todos    todousecase.TodoUsecase
}

func NewUserUsecase(userRepo authrepo.UserRepository, cart cartusecase.CartUsecase, orders orderusecase.OrderUsecase, todos todousecase.TodoUsecase) UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
		cart:     cart,
		orders:   orders,
		todos:    todos,
	}
}

func (u *userUsecase) GetProfile(userID string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.UserNotFound()
	}
	return user, nil
}

func (u *userUsecase) UpdateProfile(userID string, req *UpdateProfileRequest) (*authdomain.User, error) {
	user, err := u.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		user.Profile.DisplayName = *req.DisplayName
	}
	if req.Phone != nil {
		user.Profile.Phone = *req.Phone
	}
	if req.PaymentMethod != nil {
		user.Profile.PaymentMethod = *req.PaymentMethod
	}

	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Migrate folds guest-side cart/orders/todos into the user's server state.
// Cart entries merge by productId; orders and todos are appended.
func (u *userUsecase) Migrate(userID string, req *MigrateRequest) (*MigrateResult, error) {
	if _, err := u.GetProfile(userID); err != nil {
		return nil, err
	}

	result := &MigrateResult{Migrated: true}

	if len(req.Cart) > 0 {
		if _, err := u.cart.MergeItems(userID, req.Cart); err != nil {
			return nil, err
		}
		result.CartItems = len(req.Cart)
	}

	if len(req.Orders) > 0 {
		n, err := u.orders.ImportOrders(userID, req.Orders)
		if err != nil {
			return nil, err
		}
		result.Orders = n
	}

	if len(req.Todos) > 0 {
		n, err := u.todos.ImportTodos(userID, req.Todos)
		if err != nil {
			return nil, err
		}
		result.Todos = n
	}

	return result, nil
}
