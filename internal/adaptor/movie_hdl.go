package adaptor

import (
	"net/http"

	"movie-review/internal/usecase"
	"movie-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/movies (public)
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.service.GetMovies(r.Context()))
}

// GetMovieByID handles GET /api/movies/{id} (public)
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	movie, err := h.service.GetMovieByID(r.Context(), movieID)
	if err != nil {
		handleServiceError(h.log, w, err, "get movie")
		return
	}

	utils.WriteJSON(w, http.StatusOK, movie)
}
