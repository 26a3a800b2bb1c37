package repository

import authdomain "storefront-backend/internal/auth/domain"

// UserRepository is the user directory: id is the primary key, username and
// email are secondary uniqueness lookups. Find methods return (nil, nil) when
// no user matches.
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByID(id string) (*authdomain.User, error)
	FindByUsername(username string) (*authdomain.User, error)
	FindByEmail(email string) (*authdomain.User, error)
	Update(user *authdomain.User) error
}
