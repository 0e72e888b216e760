package wire

import (
	"net/http"

	"movie-review/internal/adaptor"
	"movie-review/internal/data/catalog"
	"movie-review/internal/data/repository"
	"movie-review/internal/usecase"
	"movie-review/pkg/middleware"
	"movie-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
	limiter *middleware.RateLimiter
}

// Close releases background resources owned by the router.
func (a *App) Close() {
	a.limiter.Close()
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, movies catalog.Provider, config *utils.Config, logger *zap.Logger) *App {
	// Initialize services dan handlers
	service := usecase.NewService(repo, movies, config, logger)
	handler := adaptor.NewHandler(service, logger)
	limiter := middleware.NewRateLimiter(config.RateLimit, logger)

	router := setupRouter(handler, service, limiter, config, logger)

	return &App{
		Router:  router,
		Service: service,
		limiter: limiter,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	service *usecase.Service,
	limiter *middleware.RateLimiter,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()
	metrics := middleware.NewMetrics("movie_review")
	requireAuth := middleware.Auth(service.Auth, logger)

	// Apply global middleware
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))
	r.Use(metrics.Instrument)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, http.StatusMethodNotAllowed, false, "method not allowed", nil, nil)
	})

	// Apply routes
	r.Route("/api", func(r chi.Router) {
		wireAuth(r, handler.Auth, requireAuth, limiter)
		wireMovie(r, handler.Movie)
		wireReview(r, handler.Review, requireAuth)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", metrics.Handler())

	return r
}
