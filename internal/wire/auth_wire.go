package wire

import (
	"net/http"

	"movie-review/internal/adaptor"
	"movie-review/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	requireAuth func(http.Handler) http.Handler,
	limiter *middleware.RateLimiter,
) {
	r.Route("/auth", func(r chi.Router) {
		r.Use(limiter.Handler)

		// ==================== PUBLIC ROUTES ====================
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// ==================== PROTECTED ROUTES ====================
		r.With(requireAuth).Get("/me", authHandler.Me)
	})
}
