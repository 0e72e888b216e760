package wire

import (
	"movie-review/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/movies - List movies (public, anyone can view)
	r.Get("/movies", movieHandler.GetMovies)

	// GET /api/movies/{id} - Movie details, by catalog id or TMDB id
	r.Get("/movies/{id}", movieHandler.GetMovieByID)
}
