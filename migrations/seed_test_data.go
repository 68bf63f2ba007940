package migrations

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

var seedCategories = []struct {
	name        string
	description string
}{
	{"Hamburguesas", "Hamburguesas de la casa"},
	{"Pizzas", "Pizzas a la piedra"},
	{"Bebidas", "Bebidas frías y calientes"},
	{"Postres", "Postres y helados"},
}

// SeedCategories inserts a handful of categories for development. Existing
// names are left untouched.
func SeedCategories(db *sql.DB, logger *zap.Logger) (err error) {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, c := range seedCategories {
		_, err = tx.Exec(
			"INSERT OR IGNORE INTO categories (name, description) VALUES (?, ?)",
			c.name, c.description,
		)
		if err != nil {
			return fmt.Errorf("failed to seed category %s: %w", c.name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}

	logger.Info("Seeded categories", zap.Int("count", len(seedCategories)))
	return nil
}
