package response

import (
	"movie-review/internal/data/entity"
)

type MovieResponse struct {
	ID          int64    `json:"id"`
	TMDBID      int64    `json:"tmdbId,omitempty"`
	Title       string   `json:"title"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Year        int      `json:"year"`
	Genre       []string `json:"genre"`
	Director    []string `json:"director"`
	Rating      int      `json:"rating"`
	Runtime     string   `json:"runtime"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		TMDBID:      movie.TMDBID,
		Title:       movie.Title,
		Image:       movie.Image,
		Description: movie.Description,
		Year:        movie.Year,
		Genre:       nonNil(movie.Genres),
		Director:    nonNil(movie.Directors),
		Rating:      movie.Rating,
		Runtime:     movie.Runtime,
	}
}

func MoviesToResponse(movies []entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i := range movies {
		out[i] = MovieToResponse(&movies[i])
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
