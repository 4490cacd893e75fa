package repository

import (
	"context"

	"cinerate/internal/domain"
)

// MovieRepository defines persistence operations for Movie entities.
//
// ListByGenre matches case-insensitively against any tag in a movie's
// genre list. Search is a case-insensitive substring match over title,
// description, genre tags and cast names. UpdateAggregate is the only
// write path for the two derived fields and is reserved for the rating
// aggregator.
type MovieRepository interface {
	Create(ctx context.Context, movie *domain.Movie) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Movie, error)
	ListAll(ctx context.Context) ([]domain.Movie, error)
	ListByGenre(ctx context.Context, genre string) ([]domain.Movie, error)
	Search(ctx context.Context, query string) ([]domain.Movie, error)
	Count(ctx context.Context) (int, error)
	UpdateAggregate(ctx context.Context, movieID string, averageRating, reviewCount int) error
}
