package adaptor

import (
	"errors"
	"net/http"

	"movie-review/internal/usecase"
	"movie-review/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth   *AuthHandler
	Movie  *MovieHandler
	Review *ReviewHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(service.Auth, log),
		Movie:  NewMovieHandler(service.Movie, log),
		Review: NewReviewHandler(service.Review, log),
	}
}

// handleServiceError maps service errors to HTTP responses. Client errors
// echo the error text; anything unclassified becomes a generic 500 and the
// details stay in the log.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials")
		utils.ResponseBadRequest(w, usecase.ErrInvalidCredentials.Error(), nil)

	case errors.Is(err, usecase.ErrUnauthenticated),
		errors.Is(err, usecase.ErrInvalidToken):
		log.Warn(operation+" failed - unauthenticated", zap.Error(err))
		utils.ResponseUnauthorized(w, "Authentication required")

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, "Not authorized to modify this resource")

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
