package repository

import "cinerate/internal/domain"

// SeedCatalog returns the startup movie catalog. Derived rating fields
// start at zero; the aggregator owns them from the first review on.
// Poster paths are TMDB image keys, resolved by the client.
func SeedCatalog() []domain.Movie {
	return []domain.Movie{
		{
			Title:       "Avengers: Endgame",
			Description: "After the devastating events of Avengers: Infinity War, the universe is in ruins due to the efforts of the Mad Titan, Thanos. With the help of remaining allies, the Avengers must assemble once more in order to undo Thanos' actions and restore order to the universe once and for all, no matter what consequences may be in store.",
			PosterPath:  "/jRXYjXNq0Cs2TcJjLkki24MLp7u.jpg",
			TrailerURL:  "https://www.youtube.com/embed/TcMBFSGVi1c",
			Year:        2019,
			Duration:    181,
			Genres:      []string{"Action", "Adventure", "Sci-Fi"},
			Cast:        []string{"Robert Downey Jr.", "Chris Evans", "Mark Ruffalo", "Chris Hemsworth", "Scarlett Johansson"},
			Director:    "Anthony Russo, Joe Russo",
		},
		{
			Title:       "Joker",
			Description: "During the 1980s, a failed stand-up comedian is driven insane and turns to a life of crime and chaos in Gotham City while becoming an infamous psychopathic crime figure.",
			PosterPath:  "/udDclJoHjfjb8Ekgsd4FDteOkCU.jpg",
			TrailerURL:  "https://www.youtube.com/embed/zAGVQLHvwOY",
			Year:        2019,
			Duration:    122,
			Genres:      []string{"Crime", "Drama", "Thriller"},
			Cast:        []string{"Joaquin Phoenix", "Robert De Niro", "Zazie Beetz", "Frances Conroy"},
			Director:    "Todd Phillips",
		},
		{
			Title:       "Avatar",
			Description: "In the 22nd century, a paraplegic Marine is dispatched to the moon Pandora on a unique mission, but becomes torn between following orders and protecting an alien civilization.",
			PosterPath:  "/jRXYjXNq0Cs2TcJjLkki24MLp7u.jpg",
			TrailerURL:  "https://www.youtube.com/embed/5PSNL1qE6VY",
			Year:        2009,
			Duration:    162,
			Genres:      []string{"Sci-Fi", "Adventure", "Action"},
			Cast:        []string{"Sam Worthington", "Zoe Saldana", "Sigourney Weaver", "Stephen Lang"},
			Director:    "James Cameron",
		},
		{
			Title:       "Fight Club",
			Description: "A ticking-time-bomb insomniac and a slippery soap salesman channel primal male aggression into a shocking new form of therapy. Their concept catches on, with underground 'fight clubs' forming in every town, until an eccentric gets in the way and ignites an out-of-control spiral toward oblivion.",
			PosterPath:  "/a26cQPRhJPX6GbWfQbvZdrrp9j9.jpg",
			TrailerURL:  "https://www.youtube.com/embed/qtRKdVHc-cE",
			Year:        1999,
			Duration:    139,
			Genres:      []string{"Drama", "Thriller"},
			Cast:        []string{"Brad Pitt", "Edward Norton", "Helena Bonham Carter", "Meat Loaf"},
			Director:    "David Fincher",
		},
		{
			Title:       "F1",
			Description: "Racing legend Sonny Hayes is coaxed out of retirement to lead a struggling Formula 1 team—and mentor a young hotshot driver—while chasing one more chance at glory.",
			PosterPath:  "/9PXZIUsSDh4alB80jheWX4fhZmy.jpg",
			TrailerURL:  "https://www.youtube.com/embed/dQw4w9WgXcQ",
			Year:        2025,
			Duration:    140,
			Genres:      []string{"Drama", "Sport"},
			Cast:        []string{"Brad Pitt", "Damson Idris", "Kerry Condon", "Tobias Menzies"},
			Director:    "Joseph Kosinski",
		},
		{
			Title:       "M3GAN 2.0",
			Description: "After the underlying tech for M3GAN is stolen and misused by a powerful defense contractor to create a military-grade weapon known as Amelia, M3GAN's creator Gemma realizes that the only option is to resurrect M3GAN and give her a few upgrades, making her faster, stronger, and more lethal.",
			PosterPath:  "/oekamLQrwlJjRNmfaBE4llIvkir.jpg",
			TrailerURL:  "https://www.youtube.com/embed/IYLHdEzsk1s",
			Year:        2025,
			Duration:    102,
			Genres:      []string{"Horror", "Sci-Fi", "Thriller"},
			Cast:        []string{"Allison Williams", "Violet McGraw", "Amie Donald", "Jenna Davis"},
			Director:    "Gerard Johnstone",
		},
	}
}
