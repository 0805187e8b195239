package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS builds the cross-origin policy. Credentials are allowed so that the
// session cookie travels with browser requests, which rules out "*".
func CORS(allowedOrigins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           600,
	})
}
