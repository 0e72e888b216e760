package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"movie-review/internal/data/catalog"
	"movie-review/internal/dto/response"

	"go.uber.org/zap"
)

type MovieService interface {
	// GetMovies never fails; on provider errors it serves the built-in list.
	GetMovies(ctx context.Context) []response.MovieResponse
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
}

type movieService struct {
	movies catalog.Provider
	log    *zap.Logger
}

func NewMovieService(movies catalog.Provider, log *zap.Logger) MovieService {
	return &movieService{
		movies: movies,
		log:    log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context) []response.MovieResponse {
	movies, err := s.movies.ListAll(ctx)
	if err != nil {
		s.log.Error("Failed to list movies, serving built-in catalog", zap.Error(err))
		movies = catalog.Builtin()
	}

	return response.MoviesToResponse(movies)
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(movieID), 10, 64)
	if err != nil {
		// Catalog ids are numeric; anything else cannot match.
		return nil, fmt.Errorf("movie %q %w", movieID, ErrNotFound)
	}

	movie, ok, err := s.movies.GetByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("movie %d %w", id, ErrNotFound)
	}

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}
