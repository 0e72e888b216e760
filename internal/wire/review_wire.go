package wire

import (
	"net/http"

	"movie-review/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	requireAuth func(http.Handler) http.Handler,
) {
	r.Route("/reviews", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		// GET /api/reviews/{id} - Reviews of movie {id}, newest first
		r.Get("/{id}", reviewHandler.GetMovieReviews)

		// GET /api/reviews/{id}/stats - Average rating and count for movie {id}
		r.Get("/{id}/stats", reviewHandler.GetMovieReviewStats)

		// ==================== PROTECTED ROUTES (require auth) ====================
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			// POST /api/reviews - Create new review
			r.Post("/", reviewHandler.CreateReview)

			// GET /api/reviews/user/my-reviews - Caller's own reviews
			r.Get("/user/my-reviews", reviewHandler.GetUserReviews)

			// DELETE /api/reviews/{id} - Delete review (owner only)
			r.Delete("/{id}", reviewHandler.DeleteReview)
		})
	})
}
