package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cinerate/internal/domain"
	"cinerate/internal/repository"
)

const createReviewsTable = `
CREATE TABLE IF NOT EXISTS reviews (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL REFERENCES users(id),
	movie_id TEXT NOT NULL REFERENCES movies(id),
	rating INTEGER NOT NULL,
	review_text TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type ReviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createReviewsTable); err != nil {
		return fmt.Errorf("create reviews table: %w", err)
	}
	return nil
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (string, error) {
	now := time.Now().UTC()
	review.ID = uuid.NewString()
	review.CreatedAt = now
	review.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
INSERT INTO reviews (id, user_id, movie_id, rating, review_text, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		review.ID,
		review.UserID,
		review.MovieID,
		review.Rating,
		review.ReviewText,
		review.CreatedAt,
		review.UpdatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("insert review: %w", err)
	}
	return review.ID, nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	return scanReview(r.db.QueryRowContext(ctx, selectReview+`WHERE id = ?`, id))
}

func (r *ReviewRepository) ListByUser(ctx context.Context, userID string) ([]domain.Review, error) {
	return r.list(ctx, selectReview+`WHERE user_id = ?`, userID)
}

func (r *ReviewRepository) ListByMovie(ctx context.Context, movieID string) ([]domain.Review, error) {
	return r.list(ctx, selectReview+`WHERE movie_id = ?`, movieID)
}

func (r *ReviewRepository) GetByUserAndMovie(ctx context.Context, userID, movieID string) (*domain.Review, error) {
	return scanReview(r.db.QueryRowContext(ctx, selectReview+`WHERE user_id = ? AND movie_id = ?`, userID, movieID))
}

func (r *ReviewRepository) Update(ctx context.Context, id string, update repository.ReviewUpdate) (*domain.Review, error) {
	review, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Rating != nil {
		review.Rating = *update.Rating
	}
	if update.ReviewText != nil {
		review.ReviewText = *update.ReviewText
	}
	review.UpdatedAt = time.Now().UTC()

	if _, err := r.db.ExecContext(ctx, `
UPDATE reviews SET rating = ?, review_text = ?, updated_at = ? WHERE id = ?`,
		review.Rating, review.ReviewText, review.UpdatedAt, id,
	); err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}
	return review, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete review: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete review rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *ReviewRepository) list(ctx context.Context, query string, args ...any) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.MovieID,
			&review.Rating,
			&review.ReviewText,
			&review.CreatedAt,
			&review.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		out = append(out, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}
	return out, nil
}

const selectReview = `
SELECT id, user_id, movie_id, rating, review_text, created_at, updated_at
FROM reviews
`

func scanReview(row *sql.Row) (*domain.Review, error) {
	var review domain.Review
	if err := row.Scan(
		&review.ID,
		&review.UserID,
		&review.MovieID,
		&review.Rating,
		&review.ReviewText,
		&review.CreatedAt,
		&review.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan review: %w", err)
	}
	return &review, nil
}
