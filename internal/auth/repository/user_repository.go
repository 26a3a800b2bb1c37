package repository

import (
	"net/http"
	"time"

	authdomain "storefront-backend/internal/auth/domain"
	"storefront-backend/pkg/apperr"
	"storefront-backend/pkg/jsonstore"
)

const usersDoc = "users"

// storedUser is the on-disk shape. The API shape strips the password hash, so
// persistence needs its own struct that keeps it.
type storedUser struct {
	ID           string             `json:"id"`
	Username     string             `json:"username"`
	Email        string             `json:"email"`
	PasswordHash string             `json:"passwordHash"`
	Profile      authdomain.Profile `json:"profile"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

func toStored(u *authdomain.User) storedUser {
	return storedUser{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Profile:      u.Profile,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func toDomain(s storedUser) *authdomain.User {
	return &authdomain.User{
		ID:           s.ID,
		Username:     s.Username,
		Email:        s.Email,
		PasswordHash: s.PasswordHash,
		Profile:      s.Profile,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// userRepository implements UserRepository over a single "users" document
// mapping user id to record. Lookups are linear scans; record counts are
// expected to stay small.
type userRepository struct {
	store jsonstore.Store
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(store jsonstore.Store) UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) load() (map[string]storedUser, error) {
	users := make(map[string]storedUser)
	if err := r.store.Load(usersDoc, &users); err != nil {
		return nil, apperr.Storage(err)
	}
	return users, nil
}

func (r *userRepository) Create(user *authdomain.User) error {
	defer r.store.Lock(usersDoc)()

	users, err := r.load()
	if err != nil {
		return err
	}
	if _, exists := users[user.ID]; exists {
		return apperr.New("Conflict", http.StatusConflict, "user id already exists")
	}

	users[user.ID] = toStored(user)
	if err := r.store.Save(usersDoc, users); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

func (r *userRepository) FindByID(id string) (*authdomain.User, error) {
	users, err := r.load()
	if err != nil {
		return nil, err
	}
	if s, ok := users[id]; ok {
		return toDomain(s), nil
	}
	return nil, nil
}

func (r *userRepository) FindByUsername(username string) (*authdomain.User, error) {
	return r.findBy(func(s storedUser) bool { return s.Username == username })
}

func (r *userRepository) FindByEmail(email string) (*authdomain.User, error) {
	return r.findBy(func(s storedUser) bool { return s.Email == email })
}

func (r *userRepository) findBy(match func(storedUser) bool) (*authdomain.User, error) {
	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, s := range users {
		if match(s) {
			return toDomain(s), nil
		}
	}
	return nil, nil
}

func (r *userRepository) Update(user *authdomain.User) error {
	defer r.store.Lock(usersDoc)()

	users, err := r.load()
	if err != nil {
		return err
	}
	if _, ok := users[user.ID]; !ok {
		return apperr.UserNotFound()
	}

	user.UpdatedAt = time.Now()
	users[user.ID] = toStored(user)
	if err := r.store.Save(usersDoc, users); err != nil {
		return apperr.Storage(err)
	}
	return nil
}
