package database

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// DB wraps the sql pool together with the driver name, which schema
// creation and error inspection branch on.
type DB struct {
	*sql.DB
	Driver string
}

// Connect opens the catalog database selected by DATABASE_DRIVER
// ("sqlite", the default, or "postgres"). Postgres requires DATABASE_URL;
// sqlite falls back to a local file like the original demo.
func Connect() (*DB, error) {
	driver := os.Getenv("DATABASE_DRIVER")
	if driver == "" {
		driver = "sqlite"
	}

	dsn := os.Getenv("DATABASE_URL")
	switch driver {
	case "postgres":
		if dsn == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable not set")
		}
	case "sqlite":
		if dsn == "" {
			dsn = "persistencia.db"
		}
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", driver)
	}

	return Open(driver, dsn)
}

// Open opens a catalog database on an explicit driver and DSN.
func Open(driver, dsn string) (*DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if driver == "sqlite" {
		// A single connection keeps :memory: databases coherent and
		// serializes writes the way sqlite wants anyway.
		db.SetMaxOpenConns(1)
	} else {
		// Serverless-friendly settings: no idle connections held open.
		db.SetMaxIdleConns(0)
		db.SetMaxOpenConns(10)
	}

	return &DB{DB: db, Driver: driver}, nil
}
