package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"cinerate/internal/domain"
	"cinerate/internal/repository"
)

type MovieRepository struct {
	mu     sync.RWMutex
	movies map[string]domain.Movie
}

func NewMovieRepository() *MovieRepository {
	return &MovieRepository{movies: make(map[string]domain.Movie)}
}

func (r *MovieRepository) Create(ctx context.Context, movie *domain.Movie) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	movie.ID = uuid.NewString()
	r.movies[movie.ID] = cloneMovie(*movie)
	return movie.ID, nil
}

func (r *MovieRepository) GetByID(ctx context.Context, id string) (*domain.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movie, ok := r.movies[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	m := cloneMovie(movie)
	return &m, nil
}

func (r *MovieRepository) ListAll(ctx context.Context) ([]domain.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Movie, 0, len(r.movies))
	for _, movie := range r.movies {
		out = append(out, cloneMovie(movie))
	}
	return out, nil
}

func (r *MovieRepository) ListByGenre(ctx context.Context, genre string) ([]domain.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Movie
	for _, movie := range r.movies {
		for _, tag := range movie.Genres {
			if strings.EqualFold(tag, genre) {
				out = append(out, cloneMovie(movie))
				break
			}
		}
	}
	return out, nil
}

func (r *MovieRepository) Search(ctx context.Context, query string) ([]domain.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	var out []domain.Movie
	for _, movie := range r.movies {
		if movieMatches(movie, q) {
			out = append(out, cloneMovie(movie))
		}
	}
	return out, nil
}

func (r *MovieRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.movies), nil
}

func (r *MovieRepository) UpdateAggregate(ctx context.Context, movieID string, averageRating, reviewCount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	movie, ok := r.movies[movieID]
	if !ok {
		return repository.ErrNotFound
	}
	movie.AverageRating = averageRating
	movie.ReviewCount = reviewCount
	r.movies[movieID] = movie
	return nil
}

func movieMatches(movie domain.Movie, q string) bool {
	if strings.Contains(strings.ToLower(movie.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(movie.Description), q) {
		return true
	}
	for _, genre := range movie.Genres {
		if strings.Contains(strings.ToLower(genre), q) {
			return true
		}
	}
	for _, name := range movie.Cast {
		if strings.Contains(strings.ToLower(name), q) {
			return true
		}
	}
	return false
}

// cloneMovie copies the slices so callers cannot alias store state.
func cloneMovie(m domain.Movie) domain.Movie {
	m.Genres = append([]string(nil), m.Genres...)
	m.Cast = append([]string(nil), m.Cast...)
	return m
}
