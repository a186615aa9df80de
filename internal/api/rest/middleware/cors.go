package middleware

import (
	"net/http"
	"slices"
)

// CORS answers cross-origin requests for the configured origins.
type CORS struct {
	allowedOrigins []string
}

// NewCORS creates a new CORS middleware. An entry of "*" allows any origin.
func NewCORS(allowedOrigins []string) *CORS {
	return &CORS{allowedOrigins: allowedOrigins}
}

func (c *CORS) originAllowed(origin string) bool {
	return slices.Contains(c.allowedOrigins, "*") || slices.Contains(c.allowedOrigins, origin)
}

// Handle sets CORS headers for allowed origins and short-circuits
// preflight requests.
func (c *CORS) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && c.originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
