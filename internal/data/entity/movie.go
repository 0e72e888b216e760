package entity

// Movie is a catalog record. Rating is curated and unrelated to user reviews.
type Movie struct {
	ID          int64
	TMDBID      int64
	Title       string
	Image       string
	Description string
	Year        int
	Genres      []string
	Directors   []string
	Rating      int
	Runtime     string
}

// Matches reports whether id names this movie in either id space.
func (m Movie) Matches(id int64) bool {
	return m.ID == id || (m.TMDBID != 0 && m.TMDBID == id)
}
