package domain

import "testing"

func TestValidRating(t *testing.T) {
	cases := []struct {
		rating int
		want   bool
	}{
		{0, false},
		{1, true},
		{5, true},
		{10, true},
		{11, false},
		{-3, false},
	}
	for _, tc := range cases {
		if got := ValidRating(tc.rating); got != tc.want {
			t.Errorf("ValidRating(%d) = %v, want %v", tc.rating, got, tc.want)
		}
	}
}

func TestRatingFromHalfStars(t *testing.T) {
	cases := []struct {
		name    string
		stars   float64
		want    int
		wantErr bool
	}{
		{"minimum half star", 0.5, 1, false},
		{"one star", 1.0, 2, false},
		{"two and a half", 2.5, 5, false},
		{"maximum", 5.0, 10, false},
		{"zero", 0, 0, true},
		{"above scale", 5.5, 0, true},
		{"quarter star", 1.25, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := RatingFromHalfStars(tc.stars)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("RatingFromHalfStars(%v) = %d, want error", tc.stars, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("RatingFromHalfStars(%v): %v", tc.stars, err)
			}
			if got != tc.want {
				t.Fatalf("RatingFromHalfStars(%v) = %d, want %d", tc.stars, got, tc.want)
			}
		})
	}
}

func TestRatingHalfStarsRoundTrip(t *testing.T) {
	for r := RatingMin; r <= RatingMax; r++ {
		back, err := RatingFromHalfStars(RatingToHalfStars(r))
		if err != nil {
			t.Fatalf("round trip %d: %v", r, err)
		}
		if back != r {
			t.Fatalf("round trip %d came back as %d", r, back)
		}
	}
}

func TestRatingFromVoteAverage(t *testing.T) {
	cases := []struct {
		vote int
		want int
	}{
		{84, 8},
		{85, 9}, // halves round away from zero
		{0, 1},  // clamped to the scale floor
		{100, 10},
		{250, 10}, // garbage legacy data clamps
	}
	for _, tc := range cases {
		if got := RatingFromVoteAverage(tc.vote); got != tc.want {
			t.Errorf("RatingFromVoteAverage(%d) = %d, want %d", tc.vote, got, tc.want)
		}
	}
}

func TestAverageRating(t *testing.T) {
	cases := []struct {
		name    string
		ratings []int
		want    int
	}{
		{"empty set", nil, 0},
		{"single", []int{8}, 8},
		{"even split", []int{8, 4}, 6},
		{"half rounds up", []int{8, 7}, 8},
		{"three reviews", []int{10, 1, 1}, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AverageRating(tc.ratings); got != tc.want {
				t.Fatalf("AverageRating(%v) = %d, want %d", tc.ratings, got, tc.want)
			}
		})
	}
}
