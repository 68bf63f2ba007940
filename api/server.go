package api

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/rodrigofez/food-order-admin/dashboard"
	"github.com/rodrigofez/food-order-admin/handlers"
	"github.com/rodrigofez/food-order-admin/middleware"
	"github.com/rodrigofez/food-order-admin/services"
)

// Server represents the HTTP server: the category API and the dashboard.
type Server struct {
	db        *sql.DB
	cache     services.ListCache
	router    *mux.Router
	logger    *zap.Logger
	auth      *middleware.Authenticator
	cors      *middleware.CORS
	dashboard *dashboard.Handler
}

// NewServer creates the server and registers its routes. cache is the
// category list cache shared with the dashboard's category client.
func NewServer(db *sql.DB, cache services.ListCache, dash *dashboard.Handler, auth *middleware.Authenticator, cors *middleware.CORS, logger *zap.Logger) *Server {
	s := &Server{
		db:        db,
		cache:     cache,
		router:    mux.NewRouter(),
		logger:    logger,
		auth:      auth,
		cors:      cors,
		dashboard: dash,
	}
	s.RegisterRoutes()
	return s
}

// RegisterRoutes registers all routes
func (s *Server) RegisterRoutes() {
	s.router.Use(middleware.RequestLogger(s.logger))

	// Public routes (no auth required)
	s.router.HandleFunc("/health", handlers.HealthCheck).Methods(http.MethodGet, http.MethodOptions)

	// Category API
	apiRouter := s.router.PathPrefix("/api").Subrouter()
	apiRouter.Use(s.cors.Handler, s.auth.Handler)
	apiRouter.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handlers.NewCategoryHandler(s.db, s.cache, s.logger).Register(apiRouter)

	// Dashboard pages
	pages := s.router.PathPrefix("").Subrouter()
	pages.Use(s.auth.Handler, forwardToken)
	s.dashboard.Register(pages)

	s.router.Handle("/", http.RedirectHandler("/dashboard/categorias", http.StatusFound)).Methods(http.MethodGet)
}

// Handler returns the HTTP handler for the server
func (s *Server) Handler() http.Handler {
	return s.router
}

// forwardToken hands the caller's ID token to the category client so the
// dashboard calls the API as the signed-in user.
func forwardToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := middleware.GetTokenFromContext(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(services.WithBearerToken(r.Context(), token)))
	})
}
