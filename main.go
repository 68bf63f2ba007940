package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/rodrigofez/food-order-admin/api"
	"github.com/rodrigofez/food-order-admin/config"
	"github.com/rodrigofez/food-order-admin/dashboard"
	"github.com/rodrigofez/food-order-admin/database"
	"github.com/rodrigofez/food-order-admin/logger"
	"github.com/rodrigofez/food-order-admin/middleware"
	"github.com/rodrigofez/food-order-admin/migrations"
	"github.com/rodrigofez/food-order-admin/notifications"
	"github.com/rodrigofez/food-order-admin/security"
	"github.com/rodrigofez/food-order-admin/services"
	"github.com/rodrigofez/food-order-admin/templates"
)

const devEncryptionKey = "default-key-for-development-only"

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "Run migrations and exit")
	flag.Parse()

	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Logger
	appLogger, err := logger.New(cfg.Logger, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	appLogger.Info("Starting food-order admin", zap.String("env", cfg.Server.AppEnv))

	// 3. Database
	db, err := database.Open(cfg.Database)
	if err != nil {
		appLogger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	seed := cfg.Database.Seed || cfg.IsDevelopment()
	if err := migrations.RunMigrations(db, appLogger, seed); err != nil {
		appLogger.Fatal("failed to run migrations", zap.Error(err))
	}
	if *migrateOnly {
		appLogger.Info("Migrations completed, exiting")
		return
	}

	// 4. Notification cookie encryption
	encryptionKey := cfg.Security.EncryptionKey
	if encryptionKey == "" {
		if !cfg.IsDevelopment() {
			appLogger.Fatal("ENCRYPTION_KEY must be set in production")
		}
		appLogger.Warn("ENCRYPTION_KEY not set, using a default key. This is NOT secure for production!")
		encryptionKey = devEncryptionKey
	}
	box, err := security.NewBox(encryptionKey)
	if err != nil {
		appLogger.Fatal("failed to initialize encryption", zap.Error(err))
	}

	ctx := context.Background()

	// 5. Category list cache
	var cache services.ListCache = services.NewMemoryCache()
	if cfg.Redis.Addr != "" {
		rdb, err := services.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Warn("Redis unavailable, using in-memory cache", zap.Error(err))
		} else {
			defer rdb.Close()
			cache = services.NewRedisCache(rdb, "food-order-admin:")
			appLogger.Info("Using Redis category cache", zap.String("addr", cfg.Redis.Addr))
		}
	}

	// 6. Category client
	baseURL := cfg.API.BaseURL
	if baseURL == "" {
		baseURL = "http://127.0.0.1:" + cfg.Server.Port
	}
	client := services.NewCategoryClient(baseURL, &http.Client{Timeout: cfg.API.Timeout}, cache, cfg.API.CacheTTL, appLogger)

	// 7. Dashboard
	renderer, err := templates.New()
	if err != nil {
		appLogger.Fatal("failed to parse templates", zap.Error(err))
	}
	dash := dashboard.NewHandler(client, notifications.NewStore(box), renderer, appLogger)

	// 8. Auth
	authClient, err := middleware.InitializeFirebase(ctx, cfg.Firebase, appLogger)
	if err != nil {
		appLogger.Warn("Failed to initialize Firebase, auth token verification will be disabled", zap.Error(err))
	}
	var verifier middleware.TokenVerifier
	if authClient != nil {
		verifier = authClient
	} else if !cfg.IsDevelopment() {
		appLogger.Fatal("Firebase credentials are required in production")
	}

	// 9. HTTP server
	server := api.NewServer(
		db,
		cache,
		dash,
		middleware.NewAuthenticator(verifier, appLogger),
		middleware.NewCORS(cfg.Server.CORSOrigins, cfg.IsDevelopment(), appLogger),
		appLogger,
	)

	srv := &http.Server{
		Handler:      server.Handler(),
		Addr:         ":" + cfg.Server.Port,
		WriteTimeout: cfg.Server.WriteTimeout,
		ReadTimeout:  cfg.Server.ReadTimeout,
	}

	appLogger.Info("Starting HTTP server", zap.String("port", cfg.Server.Port), zap.String("category_api", baseURL))

	// Graceful Shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server shutdown failed", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
