package domain

// Movie is a catalog entry. Movies are seeded at startup and immutable
// afterwards except for the two derived fields, which are owned by the
// rating aggregator and must never be written by anything else.
type Movie struct {
	ID          string
	Title       string
	Description string
	PosterPath  string
	TrailerURL  string
	Year        int
	Duration    int // minutes, 0 when unknown
	Genres      []string
	Cast        []string
	Director    string

	// Derived from the movie's review set.
	AverageRating int
	ReviewCount   int
}
