package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"cinerate/internal/domain"
	"cinerate/internal/repository"
)

type ReviewRepository struct {
	mu      sync.RWMutex
	reviews map[string]domain.Review
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{reviews: make(map[string]domain.Review)}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	review.ID = uuid.NewString()
	review.CreatedAt = now
	review.UpdatedAt = now
	r.reviews[review.ID] = *review
	return review.ID, nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	review, ok := r.reviews[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &review, nil
}

func (r *ReviewRepository) ListByUser(ctx context.Context, userID string) ([]domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Review
	for _, review := range r.reviews {
		if review.UserID == userID {
			out = append(out, review)
		}
	}
	return out, nil
}

func (r *ReviewRepository) ListByMovie(ctx context.Context, movieID string) ([]domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Review
	for _, review := range r.reviews {
		if review.MovieID == movieID {
			out = append(out, review)
		}
	}
	return out, nil
}

func (r *ReviewRepository) GetByUserAndMovie(ctx context.Context, userID, movieID string) (*domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, review := range r.reviews {
		if review.UserID == userID && review.MovieID == movieID {
			rv := review
			return &rv, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *ReviewRepository) Update(ctx context.Context, id string, update repository.ReviewUpdate) (*domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	review, ok := r.reviews[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if update.Rating != nil {
		review.Rating = *update.Rating
	}
	if update.ReviewText != nil {
		review.ReviewText = *update.ReviewText
	}
	review.UpdatedAt = time.Now().UTC()
	r.reviews[id] = review
	return &review, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reviews[id]; !ok {
		return false, nil
	}
	delete(r.reviews, id)
	return true, nil
}
