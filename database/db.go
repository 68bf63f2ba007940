package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rodrigofez/food-order-admin/config"

	_ "github.com/mattn/go-sqlite3"
)

// Open connects to the sqlite database described by cfg and applies the
// connection settings used in every environment.
func Open(cfg config.DatabaseConfig) (*sql.DB, error) {
	dbPath := cfg.Path
	if os.Getenv("FLY_APP_NAME") != "" && !filepath.IsAbs(dbPath) {
		// On Fly.io the data volume is mounted at /data
		dbPath = filepath.Join("/data", filepath.Base(dbPath))
	}

	dsn := dbPath + "?_journal=WAL&_timeout=10000&_busy_timeout=10000&_foreign_keys=on"
	if dbPath == ":memory:" {
		dsn = dbPath
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			db.Close()
			return nil, fmt.Errorf("set journal mode: %w", err)
		}
	}

	if _, err := db.Exec("PRAGMA busy_timeout=5000;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}
