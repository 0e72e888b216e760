package middleware

import (
	"net/http"
	"strings"

	"movie-review/pkg/utils"

	"go.uber.org/zap"
)

const (
	msgMissingToken = "Access denied. No token provided."
	msgInvalidToken = "Invalid token"
)

// TokenVerifier resolves a bearer token to the user id it was issued for.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// Auth rejects requests without a valid bearer token and stores the
// verified user id in the request context.
func Auth(verifier TokenVerifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token
			authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
			if authHeader == "" {
				logger.Warn("Unauthenticated request",
					zap.String("reason", "missing_token"),
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, msgMissingToken)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("Unauthenticated request",
					zap.String("reason", "invalid_token"),
					zap.String("detail", "unsupported authorization scheme"),
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, msgInvalidToken)
				return
			}

			token := ""
			if len(parts) == 2 {
				token = strings.TrimSpace(parts[1])
			}
			if token == "" {
				logger.Warn("Unauthenticated request",
					zap.String("reason", "missing_token"),
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, msgMissingToken)
				return
			}

			userID, err := verifier.VerifyToken(token)
			if err != nil {
				logger.Warn("Unauthenticated request",
					zap.String("reason", "invalid_token"),
					zap.String("path", r.URL.Path),
					zap.Error(err))
				utils.ResponseUnauthorized(w, msgInvalidToken)
				return
			}

			// Set context dengan user info
			next.ServeHTTP(w, r.WithContext(utils.SetUserContext(r.Context(), userID)))
		})
	}
}
