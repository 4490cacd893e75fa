package repository

import (
	"context"

	"cinerate/internal/domain"
)

// UserUpdate carries the mutable subset of a User for partial updates.
// Nil fields are left untouched.
type UserUpdate struct {
	ProfilePicture *string
}

// UserRepository defines persistence operations for User entities.
// Create assigns a fresh id; uniqueness of username/email is the caller's
// responsibility, checked before Create.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (string, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
}
