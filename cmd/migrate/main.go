package main

import (
	"flag"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/rodrigofez/food-order-admin/config"
	"github.com/rodrigofez/food-order-admin/database"
	"github.com/rodrigofez/food-order-admin/logger"
	"github.com/rodrigofez/food-order-admin/migrations"
)

func main() {
	seed := flag.Bool("seed", false, "Seed development categories")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	// Initialize database connection
	db, err := database.Open(cfg.Database)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := migrations.RunMigrations(db, appLogger, *seed || cfg.Database.Seed); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	fmt.Println("Migrations completed successfully!")
}
