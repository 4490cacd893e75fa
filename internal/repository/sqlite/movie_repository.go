package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"cinerate/internal/domain"
	"cinerate/internal/repository"
)

const createMoviesTable = `
CREATE TABLE IF NOT EXISTS movies (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	poster_path TEXT NOT NULL,
	trailer_url TEXT NOT NULL DEFAULT '',
	year INTEGER NOT NULL,
	duration INTEGER NOT NULL DEFAULT 0,
	genres TEXT NOT NULL,
	"cast" TEXT NOT NULL,
	director TEXT NOT NULL DEFAULT '',
	average_rating INTEGER NOT NULL DEFAULT 0,
	review_count INTEGER NOT NULL DEFAULT 0
);
`

// MovieRepository persists movies with genre and cast lists encoded as
// JSON text columns. Genre and search filtering happen in Go over the
// full table, mirroring the memory store's linear-scan contract.
type MovieRepository struct {
	db *sql.DB
}

func NewMovieRepository(db *sql.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createMoviesTable); err != nil {
		return fmt.Errorf("create movies table: %w", err)
	}
	return nil
}

func (r *MovieRepository) Create(ctx context.Context, movie *domain.Movie) (string, error) {
	movie.ID = uuid.NewString()

	genres, err := json.Marshal(movie.Genres)
	if err != nil {
		return "", fmt.Errorf("encode genres: %w", err)
	}
	cast, err := json.Marshal(movie.Cast)
	if err != nil {
		return "", fmt.Errorf("encode cast: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO movies (id, title, description, poster_path, trailer_url, year, duration, genres, "cast", director, average_rating, review_count)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		movie.ID,
		movie.Title,
		movie.Description,
		movie.PosterPath,
		movie.TrailerURL,
		movie.Year,
		movie.Duration,
		string(genres),
		string(cast),
		movie.Director,
		movie.AverageRating,
		movie.ReviewCount,
	)
	if err != nil {
		return "", fmt.Errorf("insert movie: %w", err)
	}
	return movie.ID, nil
}

func (r *MovieRepository) GetByID(ctx context.Context, id string) (*domain.Movie, error) {
	row := r.db.QueryRowContext(ctx, selectMovie+`WHERE id = ?`, id)
	movie, err := scanMovie(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return movie, nil
}

func (r *MovieRepository) ListAll(ctx context.Context) ([]domain.Movie, error) {
	return r.list(ctx, nil)
}

func (r *MovieRepository) ListByGenre(ctx context.Context, genre string) ([]domain.Movie, error) {
	return r.list(ctx, func(m domain.Movie) bool {
		for _, tag := range m.Genres {
			if strings.EqualFold(tag, genre) {
				return true
			}
		}
		return false
	})
}

func (r *MovieRepository) Search(ctx context.Context, query string) ([]domain.Movie, error) {
	q := strings.ToLower(query)
	return r.list(ctx, func(m domain.Movie) bool {
		if strings.Contains(strings.ToLower(m.Title), q) || strings.Contains(strings.ToLower(m.Description), q) {
			return true
		}
		for _, tag := range m.Genres {
			if strings.Contains(strings.ToLower(tag), q) {
				return true
			}
		}
		for _, name := range m.Cast {
			if strings.Contains(strings.ToLower(name), q) {
				return true
			}
		}
		return false
	})
}

func (r *MovieRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM movies`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return n, nil
}

func (r *MovieRepository) UpdateAggregate(ctx context.Context, movieID string, averageRating, reviewCount int) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE movies SET average_rating = ?, review_count = ? WHERE id = ?`,
		averageRating, reviewCount, movieID,
	)
	if err != nil {
		return fmt.Errorf("update movie aggregate: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("movie aggregate rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *MovieRepository) list(ctx context.Context, keep func(domain.Movie) bool) ([]domain.Movie, error) {
	rows, err := r.db.QueryContext(ctx, selectMovie)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()

	var out []domain.Movie
	for rows.Next() {
		movie, err := scanMovie(rows.Scan)
		if err != nil {
			return nil, err
		}
		if keep == nil || keep(*movie) {
			out = append(out, *movie)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}
	return out, nil
}

const selectMovie = `
SELECT id, title, description, poster_path, trailer_url, year, duration, genres, "cast", director, average_rating, review_count
FROM movies
`

func scanMovie(scan func(dest ...any) error) (*domain.Movie, error) {
	var (
		movie  domain.Movie
		genres string
		cast   string
	)
	if err := scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.PosterPath,
		&movie.TrailerURL,
		&movie.Year,
		&movie.Duration,
		&genres,
		&cast,
		&movie.Director,
		&movie.AverageRating,
		&movie.ReviewCount,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan movie: %w", err)
	}
	if err := json.Unmarshal([]byte(genres), &movie.Genres); err != nil {
		return nil, fmt.Errorf("decode genres: %w", err)
	}
	if err := json.Unmarshal([]byte(cast), &movie.Cast); err != nil {
		return nil, fmt.Errorf("decode cast: %w", err)
	}
	return &movie, nil
}
