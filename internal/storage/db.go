// Package storage keeps a SQLite history of applied scrambles and their moves.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/SeamusWaldron/cubestate/internal/config"
)

// DBFile is the history database file name inside the data directory.
const DBFile = "cubestate.db"

// pragmas are run once after opening. The pool holds a single connection,
// so they stay in effect for every query.
var pragmas = []string{
	"foreign_keys = ON",
	"journal_mode = WAL",
	"busy_timeout = 5000",
}

// DB is an open history database.
type DB struct {
	*sql.DB
	path string
}

// DefaultDBPath returns ~/.cubestate/cubestate.db.
func DefaultDBPath() (string, error) {
	dir, err := config.DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DBFile), nil
}

// Open opens the database at dbPath, creating the file and its directory
// if needed. An empty dbPath selects DefaultDBPath. The schema is left
// as found; see MigrateUp.
func Open(dbPath string) (*DB, error) {
	if dbPath == "" {
		var err error
		if dbPath, err = DefaultDBPath(); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	for _, p := range pragmas {
		if _, err := sqlDB.Exec("PRAGMA " + p); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("failed to set PRAGMA %s: %w", p, err)
		}
	}

	return &DB{DB: sqlDB, path: dbPath}, nil
}

// OpenHistory opens the database and brings its schema up to date.
func OpenHistory(dbPath string) (*DB, error) {
	db, err := Open(dbPath)
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// MigrateUp applies pending migrations. It is a no-op on an up-to-date
// database.
func (db *DB) MigrateUp() error {
	if err := applyMigrations(db.DB); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", db.path, err)
	}
	return nil
}

// CurrentVersion returns the applied schema version, 0 for a new file.
func (db *DB) CurrentVersion() (int, error) {
	return currentVersion(db.DB)
}

// Transaction runs fn in a transaction, committing if it returns nil.
func (db *DB) Transaction(fn func(*sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
