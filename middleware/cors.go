package middleware

import (
	"net/http"

	"go.uber.org/zap"
)

// defaultOrigins are allowed when CORS_ALLOWED_ORIGINS is not set.
var defaultOrigins = []string{
	"http://localhost:5173", // Vite development server
	"http://localhost:3000", // Alternative local development
	"http://localhost:8080", // Backend port
}

// CORS handles cross-origin requests to the category API.
type CORS struct {
	origins     []string
	development bool
	logger      *zap.Logger
}

// NewCORS creates the middleware. An empty origins list falls back to the
// local development servers.
func NewCORS(origins []string, development bool, logger *zap.Logger) *CORS {
	if len(origins) == 0 {
		origins = defaultOrigins
	}
	return &CORS{origins: origins, development: development, logger: logger}
}

// Handler wraps next with the CORS headers.
func (c *CORS) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if isAllowedOrigin(origin, c.origins) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else if c.development && origin != "" {
			// In development mode, be more permissive
			c.logger.Debug("Development mode: allowing origin", zap.String("origin", origin))
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", c.origins[0])
		}
		w.Header().Add("Vary", "Origin")

		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Authorization, X-Requested-With, Accept, Origin, HX-Request, HX-Target, HX-Current-URL")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// isAllowedOrigin checks if the provided origin is in the allowed list
func isAllowedOrigin(origin string, allowedOrigins []string) bool {
	if origin == "" {
		return false
	}

	for _, allowed := range allowedOrigins {
		if origin == allowed {
			return true
		}
	}

	return false
}
