package adaptor

import (
	"net/http"

	"movie-review/internal/dto/request"
	"movie-review/internal/usecase"
	"movie-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /api/reviews (protected)
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	// Get user ID from context
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateReviewRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", map[string]string{"body": err.Error()})
		return
	}

	// Validate request
	req.Normalize()
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	review, err := h.service.CreateReview(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create review")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, review)
}

// GetMovieReviews handles GET /api/reviews/{id} (public)
func (h *ReviewHandler) GetMovieReviews(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	reviews, err := h.service.ListByMovie(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "get movie reviews")
		return
	}

	utils.WriteJSON(w, http.StatusOK, reviews)
}

// GetMovieReviewStats handles GET /api/reviews/{id}/stats (public)
func (h *ReviewHandler) GetMovieReviewStats(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	stats, err := h.service.MovieStats(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "get movie review stats")
		return
	}

	utils.WriteJSON(w, http.StatusOK, stats)
}

// GetUserReviews handles GET /api/reviews/user/my-reviews (protected)
func (h *ReviewHandler) GetUserReviews(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	reviews, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get user reviews")
		return
	}

	utils.WriteJSON(w, http.StatusOK, reviews)
}

// DeleteReview handles DELETE /api/reviews/{id} (protected)
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	reviewID := chi.URLParam(r, "id")

	if err := h.service.DeleteReview(r.Context(), userID, reviewID); err != nil {
		h.handleServiceError(w, err, "delete review")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Review deleted"})
}

func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	handleServiceError(h.log, w, err, operation)
}
