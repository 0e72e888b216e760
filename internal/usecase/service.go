package usecase

import (
	"movie-review/internal/data/catalog"
	"movie-review/internal/data/repository"
	"movie-review/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth   AuthService
	Movie  MovieService
	Review ReviewService
}

func NewService(repo *repository.Repository, movies catalog.Provider, config *utils.Config, log *zap.Logger) *Service {
	tokens := utils.NewTokenManager(config.JWT)

	return &Service{
		Auth:   NewAuthService(repo.User, tokens, log),
		Movie:  NewMovieService(movies, log),
		Review: NewReviewService(repo, log),
	}
}
