package migrations

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

// AddCategoriesActiveColumn adds the active flag to the categories table
func AddCategoriesActiveColumn(db *sql.DB, logger *zap.Logger) error {
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*)
		FROM pragma_table_info('categories')
		WHERE name = 'active'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("error checking for active column: %w", err)
	}

	if count > 0 {
		logger.Info("Active column already exists in categories table")
		return nil
	}

	_, err = db.Exec(`
		ALTER TABLE categories
		ADD COLUMN active BOOLEAN NOT NULL DEFAULT 1
	`)
	if err != nil {
		return fmt.Errorf("error adding active column: %w", err)
	}

	logger.Info("Successfully added active column to categories table")
	return nil
}
