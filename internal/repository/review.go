package repository

import (
	"context"

	"cinerate/internal/domain"
)

// ReviewUpdate carries the mutable subset of a Review for partial
// updates. Nil fields are left untouched.
type ReviewUpdate struct {
	Rating     *int
	ReviewText *string
}

// ReviewRepository defines persistence operations for Review entities.
// Update refreshes the review's UpdatedAt timestamp. Delete reports
// false, not an error, for an absent id.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Review, error)
	ListByMovie(ctx context.Context, movieID string) ([]domain.Review, error)
	GetByUserAndMovie(ctx context.Context, userID, movieID string) (*domain.Review, error)
	Update(ctx context.Context, id string, update ReviewUpdate) (*domain.Review, error)
	Delete(ctx context.Context, id string) (bool, error)
}
