package middleware

import (
	"net/http"
	"slices"

	"github.com/rs/cors"
)

// CORS allows the browser client to call the API. A "*" entry (or an empty
// list) allows any origin.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*") {
		allowedOrigins = []string{"*"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	})

	return c.Handler
}
