package http

import (
	"net/http"

	"github.com/rs/cors"
)

// withCORS restricts browser access to the configured frontend origins and allows credentials.
// An empty list allows any origin.
func withCORS(handler http.Handler, allowed []string) http.Handler {
	if len(allowed) == 0 {
		allowed = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins:   allowed,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           600,
	}).Handler(handler)
}
