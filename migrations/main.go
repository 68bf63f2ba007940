package migrations

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

type migration struct {
	name string
	fn   func(*sql.DB, *zap.Logger) error
}

// schemaMigrations run on every start, in order.
var schemaMigrations = []migration{
	{"base_schema", CreateBaseSchema},
	{"add_categories_active", AddCategoriesActiveColumn},
}

// RunMigrations executes all pending migrations in order. When seed is set
// the development seed runs last.
func RunMigrations(db *sql.DB, logger *zap.Logger, seed bool) error {
	logger.Info("Running migrations")

	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	pending := schemaMigrations
	if seed {
		pending = append(pending[:len(pending):len(pending)], migration{"seed_categories", SeedCategories})
	}

	for _, m := range pending {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM migrations WHERE name = ?", m.name).Scan(&count)
		if err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}

		if count > 0 {
			logger.Debug("Skipping already applied migration", zap.String("migration", m.name))
			continue
		}

		logger.Info("Applying migration", zap.String("migration", m.name))
		if err := m.fn(db, logger); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", m.name, err)
		}

		if _, err := db.Exec("INSERT INTO migrations (name) VALUES (?)", m.name); err != nil {
			return fmt.Errorf("failed to record migration: %w", err)
		}
	}

	logger.Info("All migrations completed successfully")
	return nil
}
