package migrations

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

// CreateBaseSchema creates the categories table.
func CreateBaseSchema(db *sql.DB, logger *zap.Logger) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS categories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create categories table: %w", err)
	}

	logger.Info("Base schema created")
	return nil
}
