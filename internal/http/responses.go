package http

import (
	"time"

	"cinerate/internal/domain"
)

// Response bodies use the wire field names the original web client
// expects.

type UserResponse struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type MovieResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	PosterPath    string   `json:"posterPath"`
	TrailerURL    string   `json:"trailerUrl,omitempty"`
	Year          int      `json:"year"`
	Duration      int      `json:"duration,omitempty"`
	Genres        []string `json:"genres"`
	Cast          []string `json:"cast"`
	Director      string   `json:"director,omitempty"`
	AverageRating int      `json:"averageRating"`
	ReviewCount   int      `json:"reviewCount"`
}

type ReviewResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	MovieID    string    `json:"movieId"`
	Rating     int       `json:"rating"`
	ReviewText string    `json:"reviewText,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		ProfilePicture: user.ProfilePicture,
		CreatedAt:      user.CreatedAt,
	}
}

func movieToResponse(movie domain.Movie) MovieResponse {
	return MovieResponse{
		ID:            movie.ID,
		Title:         movie.Title,
		Description:   movie.Description,
		PosterPath:    movie.PosterPath,
		TrailerURL:    movie.TrailerURL,
		Year:          movie.Year,
		Duration:      movie.Duration,
		Genres:        movie.Genres,
		Cast:          movie.Cast,
		Director:      movie.Director,
		AverageRating: movie.AverageRating,
		ReviewCount:   movie.ReviewCount,
	}
}

func reviewToResponse(review domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:         review.ID,
		UserID:     review.UserID,
		MovieID:    review.MovieID,
		Rating:     review.Rating,
		ReviewText: review.ReviewText,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}
}

func reviewsToResponse(reviews []domain.Review) []ReviewResponse {
	resp := make([]ReviewResponse, len(reviews))
	for i := range reviews {
		resp[i] = reviewToResponse(reviews[i])
	}
	return resp
}
