package model

// Movie is one entry of the movie-rating tracker.  Rating, Ranking and
// Review are nullable: a freshly imported movie has none of the three
// until the user rates it.
//
// Ranking is derived, not authoritative.  The listing endpoint recomputes
// it on every view by ordering all rows by rating (highest first, unrated
// last) and assigning consecutive ranks from 1, then persists the result.
type Movie struct {
	ID          int64    // movies.id
	Title       string   // movies.title, unique
	Year        int      // movies.year, release year
	Description string   // movies.description
	Rating      *float64 // movies.rating, nullable, 0..10 decimal
	Ranking     *int64   // movies.ranking, nullable, recomputed on listing
	Review      *string  // movies.review, nullable
	ImgURL      string   // movies.img_url, poster image
}
