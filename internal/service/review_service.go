package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"cinerate/internal/domain"
	"cinerate/internal/repository"
)

var (
	// ErrDuplicateReview is returned when a user already reviewed the movie.
	ErrDuplicateReview = errors.New("movie already reviewed by this user")
	// ErrInvalidRating is returned for ratings outside the canonical scale.
	ErrInvalidRating = fmt.Errorf("rating must be between %d and %d", domain.RatingMin, domain.RatingMax)
	// ErrReviewNotFound is returned when the targeted review does not exist.
	ErrReviewNotFound = errors.New("review not found")
	// ErrMovieNotFound is returned when the targeted movie does not exist.
	ErrMovieNotFound = errors.New("movie not found")
	// ErrUserNotFound is returned when the review's author does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrForbidden is returned when a caller mutates someone else's review.
	ErrForbidden = errors.New("review belongs to another user")
)

// ReviewPublisher receives newly created reviews for live fan-out. The
// author is a sanitized copy, safe to put on the wire.
type ReviewPublisher interface {
	ReviewCreated(movieID string, review domain.Review, author domain.User)
}

// ReviewService enforces the review lifecycle invariants: one review per
// user per movie, owner-only mutation, and an aggregate recompute after
// every change.
type ReviewService interface {
	Submit(ctx context.Context, userID, movieID string, rating int, text string) (*domain.Review, error)
	Edit(ctx context.Context, reviewID, callerID string, update repository.ReviewUpdate) (*domain.Review, error)
	Remove(ctx context.Context, reviewID, callerID string) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Review, error)
	ListByMovie(ctx context.Context, movieID string) ([]domain.Review, error)
	GetUserReviewForMovie(ctx context.Context, userID, movieID string) (*domain.Review, error)
}

type reviewService struct {
	reviews    repository.ReviewRepository
	movies     repository.MovieRepository
	users      repository.UserRepository
	aggregator *Aggregator
	publisher  ReviewPublisher

	// Serializes check-then-act sequences (duplicate check before insert,
	// ownership check before mutate) across concurrent requests.
	mu sync.Mutex
}

// NewReviewService builds the review lifecycle service. publisher may be
// nil when no live relay is attached.
func NewReviewService(
	reviews repository.ReviewRepository,
	movies repository.MovieRepository,
	users repository.UserRepository,
	aggregator *Aggregator,
	publisher ReviewPublisher,
) ReviewService {
	return &reviewService{
		reviews:    reviews,
		movies:     movies,
		users:      users,
		aggregator: aggregator,
		publisher:  publisher,
	}
}

func (s *reviewService) Submit(ctx context.Context, userID, movieID string, rating int, text string) (*domain.Review, error) {
	if !domain.ValidRating(rating) {
		return nil, ErrInvalidRating
	}

	author, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.movies.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.reviews.GetByUserAndMovie(ctx, userID, movieID); err == nil {
		return nil, ErrDuplicateReview
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	review := &domain.Review{
		UserID:     userID,
		MovieID:    movieID,
		Rating:     rating,
		ReviewText: text,
	}
	if _, err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	if err := s.aggregator.RecomputeMovie(ctx, movieID); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		public := *author
		public.PasswordHash = ""
		s.publisher.ReviewCreated(movieID, *review, public)
	}
	return review, nil
}

func (s *reviewService) Edit(ctx context.Context, reviewID, callerID string, update repository.ReviewUpdate) (*domain.Review, error) {
	if update.Rating != nil && !domain.ValidRating(*update.Rating) {
		return nil, ErrInvalidRating
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if review.UserID != callerID {
		return nil, ErrForbidden
	}

	updated, err := s.reviews.Update(ctx, reviewID, update)
	if err != nil {
		return nil, err
	}
	if err := s.aggregator.RecomputeMovie(ctx, review.MovieID); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *reviewService) Remove(ctx context.Context, reviewID, callerID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if review.UserID != callerID {
		return false, ErrForbidden
	}

	deleted, err := s.reviews.Delete(ctx, reviewID)
	if err != nil {
		return false, err
	}
	if deleted {
		if err := s.aggregator.RecomputeMovie(ctx, review.MovieID); err != nil {
			return false, err
		}
	}
	return deleted, nil
}

func (s *reviewService) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return review, nil
}

func (s *reviewService) ListByUser(ctx context.Context, userID string) ([]domain.Review, error) {
	return s.reviews.ListByUser(ctx, userID)
}

func (s *reviewService) ListByMovie(ctx context.Context, movieID string) ([]domain.Review, error) {
	return s.reviews.ListByMovie(ctx, movieID)
}

func (s *reviewService) GetUserReviewForMovie(ctx context.Context, userID, movieID string) (*domain.Review, error) {
	review, err := s.reviews.GetByUserAndMovie(ctx, userID, movieID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return review, nil
}
