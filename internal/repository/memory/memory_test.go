package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"cinerate/internal/domain"
	"cinerate/internal/repository"
)

func TestUserRepositoryLookups(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	id, err := repo.Create(ctx, &domain.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if id == "" {
		t.Fatal("create user returned empty id")
	}

	byID, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byID.Username != "alice" {
		t.Fatalf("get by id returned %q", byID.Username)
	}

	if _, err := repo.GetByUsername(ctx, "alice"); err != nil {
		t.Fatalf("get by username: %v", err)
	}
	if _, err := repo.GetByEmail(ctx, "alice@example.com"); err != nil {
		t.Fatalf("get by email: %v", err)
	}

	// Username matching is case-sensitive.
	if _, err := repo.GetByUsername(ctx, "Alice"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("get by Alice = %v, want ErrNotFound", err)
	}
	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("get missing id = %v, want ErrNotFound", err)
	}
}

func TestUserRepositoryUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	id, _ := repo.Create(ctx, &domain.User{Username: "bob", Email: "bob@example.com"})

	url := "https://cdn.example.com/bob.png"
	updated, err := repo.Update(ctx, id, repository.UserUpdate{ProfilePicture: &url})
	if err != nil {
		t.Fatalf("update user: %v", err)
	}
	if updated.ProfilePicture != url {
		t.Fatalf("profile picture = %q, want %q", updated.ProfilePicture, url)
	}
	if updated.Username != "bob" {
		t.Fatal("update touched unrelated fields")
	}

	if _, err := repo.Update(ctx, "missing", repository.UserUpdate{}); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("update missing = %v, want ErrNotFound", err)
	}
}

func seedTestMovies(t *testing.T, repo *MovieRepository) map[string]string {
	t.Helper()
	ctx := context.Background()

	ids := make(map[string]string)
	for _, m := range []domain.Movie{
		{
			Title:       "Heat of the Night",
			Description: "A detective thriller",
			Genres:      []string{"Crime", "Drama"},
			Cast:        []string{"Sidney Poitier"},
			Year:        1967,
		},
		{
			Title:       "Space Odyssey",
			Description: "A voyage beyond the stars",
			Genres:      []string{"Sci-Fi"},
			Cast:        []string{"Keir Dullea", "Gary Lockwood"},
			Year:        1968,
		},
	} {
		movie := m
		id, err := repo.Create(ctx, &movie)
		if err != nil {
			t.Fatalf("create movie %q: %v", m.Title, err)
		}
		ids[m.Title] = id
	}
	return ids
}

func TestMovieRepositoryGenreFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewMovieRepository()
	seedTestMovies(t, repo)

	cases := []struct {
		genre string
		want  int
	}{
		{"crime", 1},  // case-insensitive
		{"Sci-Fi", 1},
		{"DRAMA", 1},
		{"Western", 0},
		{"Sci", 0}, // exact tag match, not substring
	}
	for _, tc := range cases {
		got, err := repo.ListByGenre(ctx, tc.genre)
		if err != nil {
			t.Fatalf("list by genre %q: %v", tc.genre, err)
		}
		if len(got) != tc.want {
			t.Errorf("genre %q matched %d movies, want %d", tc.genre, len(got), tc.want)
		}
	}
}

func TestMovieRepositorySearch(t *testing.T) {
	ctx := context.Background()
	repo := NewMovieRepository()
	seedTestMovies(t, repo)

	cases := []struct {
		query string
		want  int
	}{
		{"heat", 1},     // title
		{"voyage", 1},   // description
		{"sci", 1},      // genre substring
		{"lockwood", 1}, // cast
		{"o", 2},        // matches across both
		{"zzz", 0},
	}
	for _, tc := range cases {
		got, err := repo.Search(ctx, tc.query)
		if err != nil {
			t.Fatalf("search %q: %v", tc.query, err)
		}
		if len(got) != tc.want {
			t.Errorf("search %q matched %d movies, want %d", tc.query, len(got), tc.want)
		}
	}
}

func TestMovieRepositoryUpdateAggregate(t *testing.T) {
	ctx := context.Background()
	repo := NewMovieRepository()
	ids := seedTestMovies(t, repo)

	id := ids["Heat of the Night"]
	if err := repo.UpdateAggregate(ctx, id, 7, 3); err != nil {
		t.Fatalf("update aggregate: %v", err)
	}

	movie, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get movie: %v", err)
	}
	if movie.AverageRating != 7 || movie.ReviewCount != 3 {
		t.Fatalf("aggregate = (%d, %d), want (7, 3)", movie.AverageRating, movie.ReviewCount)
	}

	if err := repo.UpdateAggregate(ctx, "missing", 1, 1); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("update missing aggregate = %v, want ErrNotFound", err)
	}
}

func TestReviewRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewReviewRepository()

	review := &domain.Review{UserID: "u1", MovieID: "m1", Rating: 8, ReviewText: "great"}
	id, err := repo.Create(ctx, review)
	if err != nil {
		t.Fatalf("create review: %v", err)
	}
	if review.CreatedAt.IsZero() || review.UpdatedAt.IsZero() {
		t.Fatal("create did not stamp timestamps")
	}

	if _, err := repo.Create(ctx, &domain.Review{UserID: "u2", MovieID: "m1", Rating: 4}); err != nil {
		t.Fatalf("create second review: %v", err)
	}
	if _, err := repo.Create(ctx, &domain.Review{UserID: "u1", MovieID: "m2", Rating: 6}); err != nil {
		t.Fatalf("create third review: %v", err)
	}

	byMovie, err := repo.ListByMovie(ctx, "m1")
	if err != nil {
		t.Fatalf("list by movie: %v", err)
	}
	if len(byMovie) != 2 {
		t.Fatalf("movie m1 has %d reviews, want 2", len(byMovie))
	}

	byUser, err := repo.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	if len(byUser) != 2 {
		t.Fatalf("user u1 has %d reviews, want 2", len(byUser))
	}

	pair, err := repo.GetByUserAndMovie(ctx, "u1", "m1")
	if err != nil {
		t.Fatalf("get by user and movie: %v", err)
	}
	if pair.ID != id {
		t.Fatalf("pair lookup returned %q, want %q", pair.ID, id)
	}
	if _, err := repo.GetByUserAndMovie(ctx, "u2", "m2"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("absent pair = %v, want ErrNotFound", err)
	}

	time.Sleep(10 * time.Millisecond)
	newRating := 9
	updated, err := repo.Update(ctx, id, repository.ReviewUpdate{Rating: &newRating})
	if err != nil {
		t.Fatalf("update review: %v", err)
	}
	if updated.Rating != 9 {
		t.Fatalf("rating = %d, want 9", updated.Rating)
	}
	if updated.ReviewText != "great" {
		t.Fatal("update cleared text it should not touch")
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Fatal("update did not refresh UpdatedAt")
	}

	deleted, err := repo.Delete(ctx, id)
	if err != nil || !deleted {
		t.Fatalf("delete = (%v, %v), want (true, nil)", deleted, err)
	}
	deleted, err = repo.Delete(ctx, id)
	if err != nil || deleted {
		t.Fatalf("second delete = (%v, %v), want (false, nil)", deleted, err)
	}
}
