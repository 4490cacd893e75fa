package service

import (
	"context"
	"errors"
	"fmt"

	"cinerate/internal/domain"
	"cinerate/internal/repository"
)

// Aggregator keeps a movie's derived average rating and review count in
// step with its review set. It recomputes from scratch rather than
// applying deltas, so a repeat call with no intervening review change is
// a no-op and a failed recompute is always safe to retry.
type Aggregator struct {
	movies  repository.MovieRepository
	reviews repository.ReviewRepository
}

func NewAggregator(movies repository.MovieRepository, reviews repository.ReviewRepository) *Aggregator {
	return &Aggregator{movies: movies, reviews: reviews}
}

// RecomputeMovie refreshes the movie's derived fields. A missing movie is
// a silent no-op: the recompute runs as a side effect inside review
// mutations and must not fail an otherwise successful operation.
func (a *Aggregator) RecomputeMovie(ctx context.Context, movieID string) error {
	reviews, err := a.reviews.ListByMovie(ctx, movieID)
	if err != nil {
		return fmt.Errorf("list reviews for aggregate: %w", err)
	}

	ratings := make([]int, len(reviews))
	for i, review := range reviews {
		ratings[i] = review.Rating
	}

	err = a.movies.UpdateAggregate(ctx, movieID, domain.AverageRating(ratings), len(reviews))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("write movie aggregate: %w", err)
	}
	return nil
}
