package domain

import "time"

// Review is one user's rating (and optional text) for one movie. At most
// one review exists per (UserID, MovieID) pair; the review service
// enforces that before insert.
type Review struct {
	ID         string
	UserID     string
	MovieID    string
	Rating     int
	ReviewText string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
