package domain

import (
	"fmt"
	"math"
)

// Ratings are stored on a single canonical scale: integers 1 through 10.
// Two other representations existed historically and still appear at the
// edges of the system; they are converted here and nowhere else:
//
//   - the half-star picker shown to users, 0.5 through 5.0 in half steps
//   - the legacy catalog import format, a "vote average x10" integer 0-100
//
// A movie's stored average rating lives on the same 1-10 scale (0 while
// the movie has no reviews).
const (
	RatingMin = 1
	RatingMax = 10
)

// ValidRating reports whether r is on the canonical scale.
func ValidRating(r int) bool {
	return r >= RatingMin && r <= RatingMax
}

// RatingFromHalfStars converts a half-star picker value (0.5-5.0 in half
// steps) to the canonical scale.
func RatingFromHalfStars(stars float64) (int, error) {
	scaled := stars * 2
	rounded := math.Round(scaled)
	if math.Abs(scaled-rounded) > 1e-9 {
		return 0, fmt.Errorf("rating %v is not a half-star value", stars)
	}
	r := int(rounded)
	if !ValidRating(r) {
		return 0, fmt.Errorf("rating %v is outside 0.5-5.0", stars)
	}
	return r, nil
}

// RatingToHalfStars converts a canonical rating back to the half-star
// picker scale. Round trip with RatingFromHalfStars is exact.
func RatingToHalfStars(r int) float64 {
	return float64(r) / 2
}

// RatingFromVoteAverage converts a legacy import value (vote average
// multiplied by ten, 0-100) to the canonical scale, clamping off-range
// input rather than rejecting it since legacy data is not trustworthy.
func RatingFromVoteAverage(v int) int {
	r := int(math.Round(float64(v) / 10))
	if r < RatingMin {
		return RatingMin
	}
	if r > RatingMax {
		return RatingMax
	}
	return r
}

// AverageRating returns the canonical integer average of the given
// ratings, rounding halves away from zero. An empty set averages to 0.
func AverageRating(ratings []int) int {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return int(math.Round(float64(sum) / float64(len(ratings))))
}
